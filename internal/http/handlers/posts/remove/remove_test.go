package remove

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

func (m *ServiceMock) DeletePost(ctx context.Context, actor *models.Account, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	admin := &models.Account{ID: 1, Role: models.RoleAdmin}
	bob := &models.Account{ID: 2, Role: models.RoleUser}

	tests := []struct {
		name       string
		url        string
		actor      *models.Account
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "admin deletes any post",
			url:   "/posts/9",
			actor: admin,
			setupMock: func(m *ServiceMock) {
				m.On("DeletePost", mock.Anything, admin, int64(9)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "post deleted successfully",
		},
		{
			name:  "non-owner forbidden",
			url:   "/posts/9",
			actor: bob,
			setupMock: func(m *ServiceMock) {
				m.On("DeletePost", mock.Anything, bob, int64(9)).Return(shared.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "access denied",
		},
		{
			name:       "invalid id",
			url:        "/posts/-3",
			actor:      bob,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			r := chi.NewRouter()
			r.Delete("/posts/{id}", func(w http.ResponseWriter, req *http.Request) {
				req = req.WithContext(middlewarectx.WithAccount(req.Context(), tt.actor))
				New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).ServeHTTP(w, req)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
