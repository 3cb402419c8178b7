package models

// ShareLink maps a public random hash to the user whose content it exposes.
// A user has at most one active share link.
type ShareLink struct {
	ID     string `json:"id"`
	Hash   string `json:"hash"`
	UserID string `json:"userID"`
}
