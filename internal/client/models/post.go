package models

import "time"

// Post is a blog post as returned by the backend. CreatedAt is assigned
// server-side; Author is a display name, not a resolved user reference.
type Post struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
