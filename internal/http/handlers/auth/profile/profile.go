// Package profile реализует HTTP-обработчик изменения профиля.
package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/lib/validation"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/services/auth"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Request — изменяемые поля профиля. Отсутствующие поля не меняются.
type Request struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=100" example:"Alice Liddell"`
	Email    string  `json:"email" validate:"omitempty,max=255,email" example:"alice@example.com"`
}

// Service описывает изменение профиля.
type Service interface {
	UpdateProfile(ctx context.Context, actor *models.Account, in auth.ProfileInput) (*models.Account, error)
}

// Handler обрабатывает изменение профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменение профиля
// @Description Меняет отображаемое имя и email текущего пользователя.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Поля профиля"
// @Success 200 {object} response.Response "Профиль обновлен"
// @Failure 400 {object} response.Response "Некорректные данные или email занят"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Router /auth/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.AccountFrom(r.Context())
	if actor == nil {
		response.Fail(w, r, shared.ErrTokenMissing)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), actor, auth.ProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		log.Warn("profile update failed", slog.Int64("account_id", actor.ID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("profile updated", slog.Int64("account_id", actor.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "profile updated successfully",
		"user":    models.ProfileOf(updated),
	}))
}
