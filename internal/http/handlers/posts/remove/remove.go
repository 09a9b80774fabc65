// Package remove реализует HTTP-обработчик удаления поста.
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

// Service описывает удаление поста.
type Service interface {
	DeletePost(ctx context.Context, actor *models.Account, id int64) error
}

// Handler обрабатывает удаление поста.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление поста
// @Description Удаляет пост вместе с комментариями. Доступно автору и администратору.
// @Tags Posts
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID поста"
// @Success 200 {object} response.Response "Пост удален"
// @Failure 403 {object} response.ErrorResponse "Не автор и не администратор"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Router /posts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := urlparam.ID(r, "id")
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.BadRequest(w, r, err.Error())
		return
	}

	if err := h.service.DeletePost(r.Context(), middlewarectx.AccountFrom(r.Context()), id); err != nil {
		log.Warn("failed to delete post", slog.Int64("post_id", id), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("post deleted", slog.Int64("post_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "post deleted successfully",
	}))
}
