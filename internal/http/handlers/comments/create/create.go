// Package create реализует HTTP-обработчик добавления комментария к посту.
package create

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
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Request — текст комментария.
type Request struct {
	Content string `json:"content" validate:"required,max=2000" example:"Отличный прогноз!"`
}

// Service описывает создание комментария.
type Service interface {
	CreateComment(ctx context.Context, actor *models.Account, postID int64, content string) (*models.Comment, error)
}

// Handler обрабатывает создание комментария.
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
// @Summary Новый комментарий
// @Tags Comments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID поста"
// @Param request body Request true "Комментарий"
// @Success 201 {object} response.Response "Комментарий создан"
// @Failure 400 {object} response.Response "Некорректные данные"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Router /posts/{id}/comments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comments.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.AccountFrom(r.Context())
	if actor == nil {
		response.Fail(w, r, shared.ErrTokenMissing)
		return
	}

	postID, err := urlparam.ID(r, "id")
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
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
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	comment, err := h.service.CreateComment(r.Context(), actor, postID, req.Content)
	if err != nil {
		log.Warn("failed to create comment", slog.Int64("post_id", postID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "comment created successfully",
		"comment": comment,
	}))
}
