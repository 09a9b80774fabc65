// Package status реализует HTTP-обработчик включения и отключения аккаунта администратором.
package status

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/urlparam"
	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/lib/validation"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Request — новое состояние аккаунта.
type Request struct {
	IsActive *bool `json:"is_active" validate:"required" example:"false"`
}

// Service описывает смену статуса аккаунта.
type Service interface {
	SetAccountStatus(ctx context.Context, actor *models.Account, id int64, active bool) (*models.Account, error)
}

// Handler обрабатывает смену статуса аккаунта.
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
// @Summary Статус аккаунта
// @Description Включает или отключает аккаунт. Токены отключенного аккаунта перестают приниматься.
// @Tags Accounts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID аккаунта"
// @Param request body Request true "Статус"
// @Success 200 {object} response.Response "Статус изменен"
// @Failure 403 {object} response.ErrorResponse "Не администратор"
// @Failure 404 {object} response.ErrorResponse "Аккаунт не найден"
// @Router /accounts/{id}/status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.accounts.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := urlparam.ID(r, "id")
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.BadRequest(w, r, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	account, err := h.service.SetAccountStatus(r.Context(), middlewarectx.AccountFrom(r.Context()), id, *req.IsActive)
	if err != nil {
		log.Warn("failed to change account status", slog.Int64("account_id", id), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("account status changed", slog.Int64("account_id", id), slog.Bool("is_active", account.IsActive))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user":      models.ProfileOf(account),
		"is_active": account.IsActive,
	}))
}
