// Package remove реализует HTTP-обработчик удаления комментария.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/urlparam"
	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Service описывает удаление комментария.
type Service interface {
	DeleteComment(ctx context.Context, actor *models.Account, postID, commentID int64) error
}

// Handler обрабатывает удаление комментария.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление комментария
// @Tags Comments
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID поста"
// @Param commentID path int true "ID комментария"
// @Success 200 {object} response.Response "Комментарий удален"
// @Failure 403 {object} response.ErrorResponse "Не автор и не администратор"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Router /posts/{id}/comments/{commentID} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comments.remove"

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

	if err := h.service.DeleteComment(r.Context(), middlewarectx.AccountFrom(r.Context()), postID, commentID); err != nil {
		log.Warn("failed to delete comment", slog.Int64("comment_id", commentID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("comment deleted", slog.Int64("comment_id", commentID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "comment deleted successfully",
	}))
}
