package rabbitmq

import "time"

// Ключи маршрутизации событий блога.
const (
	RoutingPostCreated    = "post.created"
	RoutingCommentCreated = "comment.created"
)

// PostCreated событие о новом посте.
type PostCreated struct {
	PostID     int64     `json:"post_id"`
	AuthorID   int64     `json:"author_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CommentCreated событие о новом комментарии.
type CommentCreated struct {
	CommentID  int64     `json:"comment_id"`
	PostID     int64     `json:"post_id"`
	AuthorID   int64     `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
