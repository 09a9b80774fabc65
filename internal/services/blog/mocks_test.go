package blog_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/weather-blog/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *RepoMock) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// копия, чтобы изменения в сервисе не затрагивали фикстуру
	p := *args.Get(0).(*models.Post)
	return &p, args.Error(1)
}

func (m *RepoMock) ListPublishedPosts(ctx context.Context, limit, offset int) ([]*models.PostSummary, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.PostSummary), args.Error(1)
}

func (m *RepoMock) CountPublishedPosts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ListAllPosts(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *RepoMock) UpdatePost(ctx context.Context, post models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *RepoMock) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RepoMock) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *RepoMock) CreateComment(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	args := m.Called(ctx, postID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *RepoMock) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *RepoMock) UpdateComment(ctx context.Context, id int64, content string) error {
	return m.Called(ctx, id, content).Error(0)
}

func (m *RepoMock) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, event any) error {
	return m.Called(ctx, routingKey, event).Error(0)
}
