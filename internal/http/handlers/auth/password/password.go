// Package password реализует HTTP-обработчик смены пароля.
package password

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
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Request — текущий и новый пароль.
type Request struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,password_bytes,strong_password"`
}

// Service описывает смену пароля.
type Service interface {
	ChangePassword(ctx context.Context, actor *models.Account, current, next string) error
}

// Handler обрабатывает смену пароля.
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
// @Summary Смена пароля
// @Description Проверяет текущий пароль и сохраняет новый. Выданные ранее токены продолжают действовать.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Пароли"
// @Success 200 {object} response.Response "Пароль изменен"
// @Failure 400 {object} response.Response "Неверный текущий пароль или слабый новый"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Router /auth/change-password [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.password"

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

	if err := h.service.ChangePassword(r.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		log.Warn("password change failed", slog.Int64("account_id", actor.ID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("password changed", slog.Int64("account_id", actor.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "password changed successfully",
	}))
}
