// Package list реализует HTTP-обработчик публичного списка опубликованных постов.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// Service описывает постраничное чтение опубликованных постов.
type Service interface {
	ListPublished(ctx context.Context, page, limit int) (*models.PostPage, error)
}

// Handler обрабатывает запрос списка постов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список постов
// @Description Возвращает страницу опубликованных постов, новые первыми.
// @Tags Posts
// @Produce  json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы, не больше 100" default(10)
// @Success 200 {object} response.Response "Страница постов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	res, err := h.service.ListPublished(r.Context(), page, limit)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Debug("posts listed", slog.Int("count", len(res.Items)), slog.Int("page", res.Page))
	render.JSON(w, r, response.StatusOKWithData(res))
}

// queryInt возвращает числовой параметр запроса или 0, если он отсутствует или некорректен.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
