package models

import "time"

// PostStatus — статус публикации поста.
type PostStatus string

const (
	// PostDraft — черновик, карточку видит только администратор.
	PostDraft PostStatus = "draft"
	// PostPublished — опубликованный пост, виден всем.
	PostPublished PostStatus = "published"
)

// Valid сообщает, является ли статус допустимым.
func (s PostStatus) Valid() bool {
	return s == PostDraft || s == PostPublished
}

// Post — пост блога вместе с данными автора.
type Post struct {
	ID             int64      `json:"id"`
	AuthorID       int64      `json:"author_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	CoverImage     *string    `json:"cover_image"`
	Status         PostStatus `json:"status"`
	AuthorUsername string     `json:"author_username,omitempty"`
	AuthorName     *string    `json:"author_name,omitempty"`
	CommentCount   int        `json:"comment_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PostSummary — элемент публичного списка постов с отрывком текста.
type PostSummary struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Excerpt        string     `json:"excerpt"`
	CoverImage     *string    `json:"cover_image"`
	Status         PostStatus `json:"status"`
	AuthorUsername string     `json:"author_username"`
	AuthorName     *string    `json:"author_name"`
	CommentCount   int        `json:"comment_count"`
	CreatedAt      time.Time  `json:"created_at"`
}

// PostPage — страница публичного списка постов.
type PostPage struct {
	Items []*PostSummary `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// PostPatch — частичное обновление поста. nil означает «оставить как есть».
type PostPatch struct {
	Title      *string
	Content    *string
	CoverImage *string
	Status     *PostStatus
}
