package read

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) GetPost(ctx context.Context, actor *models.Account, id int64) (*models.Post, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func TestReadHandler(t *testing.T) {
	alice := &models.Account{ID: 1, Username: "alice"}

	tests := []struct {
		name       string
		url        string
		actor      *models.Account
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "anonymous reads published post",
			url:  "/posts/5",
			setupMock: func(m *ServiceMock) {
				m.On("GetPost", mock.Anything, (*models.Account)(nil), int64(5)).
					Return(&models.Post{ID: 5, Title: "Sun", Status: models.PostPublished}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"title":"Sun"`,
		},
		{
			name:  "author passed to service",
			url:   "/posts/6",
			actor: alice,
			setupMock: func(m *ServiceMock) {
				m.On("GetPost", mock.Anything, alice, int64(6)).
					Return(&models.Post{ID: 6, AuthorID: 1, Status: models.PostDraft}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"draft"`,
		},
		{
			name: "hidden draft",
			url:  "/posts/6",
			setupMock: func(m *ServiceMock) {
				m.On("GetPost", mock.Anything, (*models.Account)(nil), int64(6)).Return(nil, shared.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "resource not found",
		},
		{
			name:       "invalid id",
			url:        "/posts/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid id in url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			r := chi.NewRouter()
			r.Get("/posts/{id}", func(w http.ResponseWriter, req *http.Request) {
				if tt.actor != nil {
					req = req.WithContext(middlewarectx.WithAccount(req.Context(), tt.actor))
				}
				New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).ServeHTTP(w, req)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
