package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

const commentSelect = `SELECT c.id, c.post_id, c.author_id, c.content, u.username, u.full_name,
		c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func scanComment(row rowScanner) (*models.Comment, error) {
	var (
		c          models.Comment
		authorName sql.NullString
	)
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.AuthorUsername,
		&authorName, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if authorName.Valid {
		c.AuthorName = &authorName.String
	}
	return &c, nil
}

// ListComments возвращает комментарии поста в порядке создания.
func (s *Storage) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	const op = "storage.ListComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		commentSelect+` WHERE c.post_id = $1 ORDER BY c.created_at ASC, c.id ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateComment добавляет комментарий к посту.
func (s *Storage) CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	const op = "storage.CreateComment"

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO comments (post_id, author_id, content) VALUES ($1, $2, $3) RETURNING id`,
		postID, authorID, content).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.GetComment(ctx, id)
}

// GetComment возвращает комментарий по ID.
func (s *Storage) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "storage.GetComment"

	comment, err := scanComment(s.DB.QueryRowContext(ctx, commentSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return comment, nil
}

// UpdateComment заменяет текст комментария.
func (s *Storage) UpdateComment(ctx context.Context, id int64, content string) error {
	const op = "storage.UpdateComment"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE comments SET content = $1, updated_at = now() WHERE id = $2`, content, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteComment удаляет комментарий.
func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	const op = "storage.DeleteComment"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
