// Package update реализует HTTP-обработчик частичного обновления поста.
//
// Отсутствующие и пустые поля запроса оставляют прежние значения.
// Изменять пост может автор или администратор.
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

// Request — изменяемые поля поста.
type Request struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Content    *string `json:"content"`
	CoverImage *string `json:"cover_image" validate:"omitempty,max=500"`
	Status     *string `json:"status" validate:"omitempty,oneof=draft published"`
}

// Patch переводит запрос в models.PostPatch.
func (req Request) Patch() models.PostPatch {
	patch := models.PostPatch{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	}
	if req.Status != nil && *req.Status != "" {
		s := models.PostStatus(*req.Status)
		patch.Status = &s
	}
	return patch
}

// Service описывает обновление поста.
type Service interface {
	UpdatePost(ctx context.Context, actor *models.Account, id int64, patch models.PostPatch) (*models.Post, error)
}

// Handler обрабатывает обновление поста.
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
// @Summary Обновление поста
// @Tags Posts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID поста"
// @Param request body Request true "Изменения"
// @Success 200 {object} response.Response "Пост обновлен"
// @Failure 400 {object} response.Response "Некорректные данные"
// @Failure 403 {object} response.ErrorResponse "Не автор и не администратор"
// @Failure 404 {object} response.ErrorResponse "Пост не найден"
// @Router /posts/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.update"

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

	post, err := h.service.UpdatePost(r.Context(), middlewarectx.AccountFrom(r.Context()), id, req.Patch())
	if err != nil {
		log.Warn("failed to update post", slog.Int64("post_id", id), sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("post updated", slog.Int64("post_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "post updated successfully",
		"post":    post,
	}))
}
