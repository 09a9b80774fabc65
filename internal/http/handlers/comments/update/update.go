// Package update реализует HTTP-обработчик изменения комментария.
package update

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

// Request — новый текст комментария.
type Request struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// Service описывает изменение комментария.
type Service interface {
	UpdateComment(ctx context.Context, actor *models.Account, postID, commentID int64, content string) (*models.Comment, error)
}

// Handler обрабатывает изменение комментария.
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
// @Summary Изменение комментария
// @Tags Comments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID поста"
// @Param commentID path int true "ID комментария"
// @Param request body Request true "Комментарий"
// @Success 200 {object} response.Response "Комментарий изменен"
// @Failure 403 {object} response.ErrorResponse "Не автор и не администратор"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Router /posts/{id}/comments/{commentID} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comments.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	postID, err := urlparam.ID(r, "id")
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}
	commentID, err := urlparam.ID(r, "commentID")
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
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), middlewarectx.AccountFrom(r.Context()), postID, commentID, req.Content)
	if err != nil {
		log.Warn("failed to update comment", slog.Int64("comment_id", commentID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "comment updated successfully",
		"comment": comment,
	}))
}
