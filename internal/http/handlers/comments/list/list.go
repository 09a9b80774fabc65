// Package list реализует HTTP-обработчик списка комментариев поста.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/urlparam"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Service описывает чтение комментариев.
type Service interface {
	ListComments(ctx context.Context, postID int64) ([]*models.Comment, error)
}

// Handler обрабатывает запрос комментариев.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Комментарии поста
// @Description Возвращает комментарии в порядке создания.
// @Tags Comments
// @Produce  json
// @Param id path int true "ID поста"
// @Success 200 {object} response.Response "Комментарии"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Router /posts/{id}/comments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comments.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	postID, err := urlparam.ID(r, "id")
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.BadRequest(w, r, err.Error())
		return
	}

	comments, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		log.Info("failed to list comments", slog.Int64("post_id", postID), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"comments": comments,
	}))
}
