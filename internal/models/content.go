package models

// Supported content types.
const (
	ContentTypeImage   = "image"
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
	ContentTypeAudio   = "audio"
)

// Content represents a saved link owned by a user.
type Content struct {
	ID       string   `json:"id"`
	Link     string   `json:"link"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	UserID   string   `json:"userID"`
	Username string   `json:"username,omitempty"` // Owner reference resolved on read
}
