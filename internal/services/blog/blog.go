// Package blog реализует посты и комментарии: создание, чтение, изменение и удаление
// с проверкой прав через policy. Опубликованные посты кэшируются, о новых постах
// и комментариях публикуются события.
package blog

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/magabrotheeeer/weather-blog/internal/cache"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/policy"
	"github.com/magabrotheeeer/weather-blog/internal/rabbitmq"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Параметры пагинации публичного списка.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Repository описывает контракт хранилища постов и комментариев.
// Отсутствующая запись возвращается как shared.ErrNotFound.
type Repository interface {
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ListPublishedPosts(ctx context.Context, limit, offset int) ([]*models.PostSummary, error)
	CountPublishedPosts(ctx context.Context) (int, error)
	ListAllPosts(ctx context.Context) ([]*models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error

	ListComments(ctx context.Context, postID int64) ([]*models.Comment, error)
	CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error)
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
}

// Cache кэш снимков постов.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// PostInput данные нового поста. Пустой статус означает published.
type PostInput struct {
	Title      string
	Content    string
	CoverImage *string
	Status     models.PostStatus
}

// Service сервис блога.
type Service struct {
	repo   Repository
	cache  Cache
	events Publisher
	log    *slog.Logger
	now    func() time.Time
}

// NewService создает сервис. cache и events могут быть nil.
func NewService(repo Repository, c Cache, events Publisher, log *slog.Logger) *Service {
	if events == nil {
		events = rabbitmq.NoopPublisher{}
	}
	return &Service{
		repo:   repo,
		cache:  c,
		events: events,
		log:    log,
		now:    time.Now,
	}
}

// CreatePost создает пост от имени actor.
func (s *Service) CreatePost(ctx context.Context, actor *models.Account, in PostInput) (*models.Post, error) {
	const op = "blog.CreatePost"

	if actor == nil {
		return nil, shared.ErrForbidden
	}
	title, content := strings.TrimSpace(in.Title), strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%s: title and content are required: %w", op, shared.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.PostPublished
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%s: unknown status %q: %w", op, status, shared.ErrValidation)
	}

	post, err := s.repo.CreatePost(ctx, models.Post{
		AuthorID:   actor.ID,
		Title:      title,
		Content:    content,
		CoverImage: trimmedOrNil(in.CoverImage),
		Status:     status,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("post created", slog.Int64("post_id", post.ID), slog.Int64("author_id", actor.ID))

	s.publish(ctx, rabbitmq.RoutingPostCreated, rabbitmq.PostCreated{
		PostID:     post.ID,
		AuthorID:   post.AuthorID,
		Title:      post.Title,
		Status:     string(post.Status),
		OccurredAt: s.now().UTC(),
	})
	return post, nil
}

// ListPublished возвращает страницу опубликованных постов.
// Некорректные page и limit заменяются значениями по умолчанию, limit ограничен MaxLimit.
func (s *Service) ListPublished(ctx context.Context, page, limit int) (*models.PostPage, error) {
	const op = "blog.ListPublished"

	page, limit = NormalizePage(page, limit)
	items := []*models.PostSummary{}
	if offset, ok := pageOffset(page, limit); ok {
		var err error
		items, err = s.repo.ListPublishedPosts(ctx, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	total, err := s.repo.CountPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.PostPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ListAll возвращает все посты любого статуса. Только для администратора.
func (s *Service) ListAll(ctx context.Context, actor *models.Account) ([]*models.Post, error) {
	const op = "blog.ListAll"

	if !policy.CanListAll(actor) {
		return nil, shared.ErrForbidden
	}
	posts, err := s.repo.ListAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return posts, nil
}

// GetPost возвращает пост. Черновик виден только администратору,
// для остальных он выглядит как несуществующий. actor может быть nil.
func (s *Service) GetPost(ctx context.Context, actor *models.Account, id int64) (*models.Post, error) {
	const op = "blog.GetPost"

	key := cache.PostKey(id)
	if s.cache != nil {
		var cached models.Post
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !policy.CanView(actor, post) {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}

	if s.cache != nil && post.Status == models.PostPublished {
		s.cachePost(ctx, post)
	}
	return post, nil
}

// cachePost кладет снимок в кэш и перечитывает пост. Если пост успел измениться,
// снимок удаляется: параллельный UpdatePost мог сбросить кэш до записи снимка.
func (s *Service) cachePost(ctx context.Context, post *models.Post) {
	key := cache.PostKey(post.ID)
	if err := s.cache.Set(ctx, key, post); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
		return
	}

	fresh, err := s.repo.GetPost(ctx, post.ID)
	if err == nil && sameSnapshot(post, fresh) {
		return
	}
	s.invalidate(ctx, post.ID)
}

// UpdatePost применяет изменения к посту. Пустые поля патча оставляют прежние значения.
func (s *Service) UpdatePost(ctx context.Context, actor *models.Account, id int64, patch models.PostPatch) (*models.Post, error) {
	const op = "blog.UpdatePost"

	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !policy.CanModify(actor, post.AuthorID) {
		return nil, shared.ErrForbidden
	}

	if v := trimmedOrNil(patch.Title); v != nil {
		post.Title = *v
	}
	if v := trimmedOrNil(patch.Content); v != nil {
		post.Content = *v
	}
	if v := trimmedOrNil(patch.CoverImage); v != nil {
		post.CoverImage = v
	}
	if patch.Status != nil && *patch.Status != "" {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%s: unknown status %q: %w", op, *patch.Status, shared.ErrValidation)
		}
		post.Status = *patch.Status
	}

	if err := s.repo.UpdatePost(ctx, *post); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, id)
	s.log.Info("post updated", slog.Int64("post_id", id), slog.Int64("actor_id", actor.ID))

	updated, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// DeletePost удаляет пост вместе с комментариями.
func (s *Service) DeletePost(ctx context.Context, actor *models.Account, id int64) error {
	const op = "blog.DeletePost"

	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !policy.CanModify(actor, post.AuthorID) {
		return shared.ErrForbidden
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, id)
	s.log.Info("post deleted", slog.Int64("post_id", id), slog.Int64("actor_id", actor.ID))
	return nil
}

// ListComments возвращает комментарии поста. Чтение открыто всем независимо
// от статуса поста; несуществующий пост дает shared.ErrNotFound.
func (s *Service) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	const op = "blog.ListComments"

	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return comments, nil
}

// CreateComment добавляет комментарий к существующему посту.
func (s *Service) CreateComment(ctx context.Context, actor *models.Account, postID int64, content string) (*models.Comment, error) {
	const op = "blog.CreateComment"

	if actor == nil {
		return nil, shared.ErrForbidden
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%s: content is required: %w", op, shared.ErrValidation)
	}
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comment, err := s.repo.CreateComment(ctx, postID, actor.ID, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, postID)
	s.log.Info("comment created", slog.Int64("comment_id", comment.ID), slog.Int64("post_id", postID))

	s.publish(ctx, rabbitmq.RoutingCommentCreated, rabbitmq.CommentCreated{
		CommentID:  comment.ID,
		PostID:     postID,
		AuthorID:   actor.ID,
		OccurredAt: s.now().UTC(),
	})
	return comment, nil
}

// UpdateComment заменяет текст комментария. Комментарий должен принадлежать посту postID.
func (s *Service) UpdateComment(ctx context.Context, actor *models.Account, postID, commentID int64, content string) (*models.Comment, error) {
	const op = "blog.UpdateComment"

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%s: content is required: %w", op, shared.ErrValidation)
	}
	comment, err := s.commentOf(ctx, postID, commentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !policy.CanModify(actor, comment.AuthorID) {
		return nil, shared.ErrForbidden
	}
	if err := s.repo.UpdateComment(ctx, commentID, content); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// DeleteComment удаляет комментарий. Комментарий должен принадлежать посту postID.
func (s *Service) DeleteComment(ctx context.Context, actor *models.Account, postID, commentID int64) error {
	const op = "blog.DeleteComment"

	comment, err := s.commentOf(ctx, postID, commentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !policy.CanModify(actor, comment.AuthorID) {
		return shared.ErrForbidden
	}
	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, postID)
	return nil
}

// NormalizePage приводит параметры пагинации к допустимым значениям.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// pageOffset считает смещение страницы. false означает, что смещение не помещается в int
// и такой страницы заведомо нет.
func pageOffset(page, limit int) (int, bool) {
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

func sameSnapshot(cached, fresh *models.Post) bool {
	return fresh.Status == cached.Status &&
		fresh.UpdatedAt.Equal(cached.UpdatedAt) &&
		fresh.CommentCount == cached.CommentCount
}

func (s *Service) commentOf(ctx context.Context, postID, commentID int64) (*models.Comment, error) {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, shared.ErrNotFound
	}
	return comment, nil
}

func (s *Service) invalidate(ctx context.Context, postID int64) {
	if s.cache == nil {
		return
	}
	key := cache.PostKey(postID)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, event any) {
	if err := s.events.Publish(ctx, routingKey, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", routingKey), sl.Err(err))
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
