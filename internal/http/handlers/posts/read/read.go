// Package read реализует HTTP-обработчик получения поста по ID.
//
// Маршрут доступен без токена. Черновик виден только автору и
// администратору, остальным отвечает 404.
package read

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

// Service описывает чтение поста.
type Service interface {
	GetPost(ctx context.Context, actor *models.Account, id int64) (*models.Post, error)
}

// Handler обрабатывает запрос поста по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Пост по ID
// @Tags Posts
// @Produce  json
// @Param id path int true "ID поста"
// @Success 200 {object} response.Response "Пост"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Router /posts/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.read"

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

	post, err := h.service.GetPost(r.Context(), middlewarectx.AccountFrom(r.Context()), id)
	if err != nil {
		log.Info("failed to read post", slog.Int64("post_id", id), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"post": post,
	}))
}
