package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// excerptLength — длина отрывка текста в публичном списке постов.
const excerptLength = 300

const postSelect = `SELECT p.id, p.author_id, p.title, p.content, p.cover_image, p.status,
		u.username, u.full_name,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
		p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.id = p.author_id`

func scanPost(row rowScanner) (*models.Post, error) {
	var (
		p          models.Post
		coverImage sql.NullString
		authorName sql.NullString
		status     string
	)
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &coverImage, &status,
		&p.AuthorUsername, &authorName, &p.CommentCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = models.PostStatus(status)
	if coverImage.Valid {
		p.CoverImage = &coverImage.String
	}
	if authorName.Valid {
		p.AuthorName = &authorName.String
	}
	return &p, nil
}

// CreatePost вставляет пост и возвращает его с данными автора.
func (s *Storage) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	const op = "storage.CreatePost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO posts (author_id, title, content, cover_image, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		post.AuthorID, post.Title, post.Content, post.CoverImage, string(post.Status)).Scan(&id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.GetPost(ctx, id)
}

// GetPost возвращает пост по ID вне зависимости от статуса.
func (s *Storage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	const op = "storage.GetPost"

	post, err := scanPost(s.DB.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return post, nil
}

// ListPublishedPosts возвращает страницу опубликованных постов, новые первыми.
func (s *Storage) ListPublishedPosts(ctx context.Context, limit, offset int) ([]*models.PostSummary, error) {
	const op = "storage.ListPublishedPosts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.title, left(p.content, $1), p.cover_image, p.status,
			      u.username, u.full_name,
			      (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
			      p.created_at
			  FROM posts p
			  JOIN users u ON u.id = p.author_id
			  WHERE p.status = 'published'
			  ORDER BY p.created_at DESC, p.id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, excerptLength, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.PostSummary, 0, limit)
	for rows.Next() {
		var (
			item       models.PostSummary
			coverImage sql.NullString
			authorName sql.NullString
			status     string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Excerpt, &coverImage, &status,
			&item.AuthorUsername, &authorName, &item.CommentCount, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Status = models.PostStatus(status)
		if coverImage.Valid {
			item.CoverImage = &coverImage.String
		}
		if authorName.Valid {
			item.AuthorName = &authorName.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountPublishedPosts возвращает число опубликованных постов.
func (s *Storage) CountPublishedPosts(ctx context.Context) (int, error) {
	const op = "storage.CountPublishedPosts"

	var total int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE status = 'published'`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListAllPosts возвращает все посты любого статуса, новые первыми.
func (s *Storage) ListAllPosts(ctx context.Context) ([]*models.Post, error) {
	const op = "storage.ListAllPosts"

	rows, err := s.DB.QueryContext(ctx, postSelect+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePost сохраняет изменяемые поля поста. Автор не меняется.
func (s *Storage) UpdatePost(ctx context.Context, post models.Post) error {
	const op = "storage.UpdatePost"

	query := `UPDATE posts
			  SET title = $1, content = $2, cover_image = $3, status = $4, updated_at = now()
			  WHERE id = $5`
	res, err := s.DB.ExecContext(ctx, query,
		post.Title, post.Content, post.CoverImage, string(post.Status), post.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeletePost удаляет пост вместе с комментариями.
func (s *Storage) DeletePost(ctx context.Context, id int64) error {
	const op = "storage.DeletePost"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
