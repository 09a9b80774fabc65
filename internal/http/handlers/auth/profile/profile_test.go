package profile

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/services/auth"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) UpdateProfile(ctx context.Context, actor *models.Account, in auth.ProfileInput) (*models.Account, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func TestProfileHandler(t *testing.T) {
	actor := &models.Account{ID: 3, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "change email",
			body: `{"email":"alice@new.example.com"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateProfile", mock.Anything, actor, auth.ProfileInput{Email: "alice@new.example.com"}).
					Return(&models.Account{ID: 3, Username: "alice", Email: "alice@new.example.com"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "alice@new.example.com",
		},
		{
			name: "email taken",
			body: `{"email":"bob@example.com"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateProfile", mock.Anything, actor, mock.Anything).Return(nil, shared.ErrEmailTaken)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "email already exists",
		},
		{
			name:       "invalid email",
			body:       `{"email":"bob"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"email"`,
		},
		{
			name:       "email longer than column",
			body:       `{"email":"` + strings.Repeat("a", 250) + `@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"email"`,
		},
		{
			name:       "name too short",
			body:       `{"full_name":"A"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"full_name"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/auth/profile", bytes.NewBufferString(tt.body))
			req = req.WithContext(middlewarectx.WithAccount(req.Context(), actor))
			w := httptest.NewRecorder()
			New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
