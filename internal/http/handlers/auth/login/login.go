// Package login реализует HTTP-обработчик входа по имени пользователя или email.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/lib/validation"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Request — структура входных данных для входа.
// Username принимает как имя пользователя, так и email.
type Request struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Secret123"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, identifier, password string) (*models.Account, string, error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Проверяет учетные данные и возвращает токен доступа сроком на 7 дней.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешная авторизация"
// @Failure 400 {object} response.Response "Некорректный JSON или пустые поля"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные или аккаунт отключен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	account, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Warn("login failed", slog.String("username", req.Username), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("login success", slog.Int64("account_id", account.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    models.ProfileOf(account),
	}))
}
