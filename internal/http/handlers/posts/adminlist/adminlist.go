// Package adminlist реализует HTTP-обработчик списка всех постов для администратора.
package adminlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Service описывает чтение всех постов.
type Service interface {
	ListAll(ctx context.Context, actor *models.Account) ([]*models.Post, error)
}

// Handler обрабатывает запрос списка всех постов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Все посты
// @Description Возвращает посты в любом статусе. Только для администратора.
// @Tags Posts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Посты"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /posts/admin [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.adminlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.AccountFrom(r.Context())
	posts, err := h.service.ListAll(r.Context(), actor)
	if err != nil {
		log.Warn("failed to list all posts", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"posts": posts,
	}))
}
