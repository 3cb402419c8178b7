package models

// Tag is a label attached to content. Titles are unique across the system.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
