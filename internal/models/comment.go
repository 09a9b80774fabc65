package models

import "time"

// Comment — комментарий к посту вместе с данными автора.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post_id"`
	AuthorID       int64     `json:"author_id"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username,omitempty"`
	AuthorName     *string   `json:"author_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
