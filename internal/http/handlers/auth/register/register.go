// Package register реализует HTTP-обработчик регистрации аккаунта.
//
// После валидации запроса создается аккаунт с ролью user и сразу выдается токен доступа.
package register

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
	"github.com/magabrotheeeer/weather-blog/internal/services/auth"
)

// Request — входные данные для регистрации
type Request struct {
	Username string  `json:"username" validate:"required,min=3,max=50,username_chars" example:"alice"`
	Email    string  `json:"email" validate:"required,max=255,email" example:"alice@example.com"`
	Password string  `json:"password" validate:"required,min=6,password_bytes,strong_password" example:"Secret123"`
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=100" example:"Alice Liddell"`
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, in auth.RegisterInput) (*models.Account, string, error)
}

// Handler обрабатывает запросы регистрации.
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
// @Summary Регистрация нового пользователя
// @Description Создает аккаунт с ролью user и возвращает токен доступа.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные регистрации"
// @Success 201 {object} response.Response "Аккаунт создан"
// @Failure 400 {object} response.Response "Некорректные данные или имя/email заняты"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	account, token, err := h.service.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		log.Error("registration failed", slog.String("username", req.Username), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("account registered", slog.Int64("account_id", account.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "account created successfully",
		"token":   token,
		"user":    models.ProfileOf(account),
	}))
}
