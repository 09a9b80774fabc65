package create

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/services/blog"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) CreatePost(ctx context.Context, actor *models.Account, in blog.PostInput) (*models.Post, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateHandler(t *testing.T) {
	alice := &models.Account{ID: 1, Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name       string
		actor      *models.Account
		body       string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "draft created",
			actor: alice,
			body:  `{"title":"Rain","content":"It rains","status":"draft"}`,
			setupMock: func(m *ServiceMock) {
				m.On("CreatePost", mock.Anything, alice, blog.PostInput{
					Title: "Rain", Content: "It rains", Status: models.PostDraft,
				}).Return(&models.Post{ID: 7, AuthorID: 1, Title: "Rain", Status: models.PostDraft}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":7`,
		},
		{
			name:       "missing title",
			actor:      alice,
			body:       `{"content":"It rains"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"title"`,
		},
		{
			name:       "unknown status",
			actor:      alice,
			body:       `{"title":"Rain","content":"It rains","status":"archived"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"status"`,
		},
		{
			name:       "broken json",
			actor:      alice,
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "anonymous",
			body:       `{"title":"Rain","content":"It rains"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "storage failure",
			actor: alice,
			body:  `{"title":"Rain","content":"It rains"}`,
			setupMock: func(m *ServiceMock) {
				m.On("CreatePost", mock.Anything, alice, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(tt.body))
			if tt.actor != nil {
				req = req.WithContext(middlewarectx.WithAccount(req.Context(), tt.actor))
			}
			w := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "db down")
			svc.AssertExpectations(t)
		})
	}
}
