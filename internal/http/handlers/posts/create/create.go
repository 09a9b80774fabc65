// Package create реализует HTTP-обработчик создания поста.
//
// Handler декодирует JSON, проверяет его и создает пост от имени
// аутентифицированного пользователя. Пустой статус означает published.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/lib/validation"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/services/blog"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Request — данные нового поста.
type Request struct {
	Title      string  `json:"title" validate:"required,max=200" example:"Первый снег"`
	Content    string  `json:"content" validate:"required" example:"Сегодня выпал первый снег."`
	CoverImage *string `json:"cover_image" validate:"omitempty,max=500"`
	Status     string  `json:"status" validate:"omitempty,oneof=draft published" example:"published"`
}

// Service описывает создание поста.
type Service interface {
	CreatePost(ctx context.Context, actor *models.Account, in blog.PostInput) (*models.Post, error)
}

// Handler обрабатывает создание поста.
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
// @Summary Создание поста
// @Description Создает пост от имени текущего пользователя.
// @Tags Posts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Пост"
// @Success 201 {object} response.Response "Пост создан"
// @Failure 400 {object} response.Response "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Router /posts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.posts.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.AccountFrom(r.Context())
	if actor == nil {
		response.Fail(w, r, shared.ErrTokenMissing)
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

	post, err := h.service.CreatePost(r.Context(), actor, blog.PostInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Status:     models.PostStatus(req.Status),
	})
	if err != nil {
		log.Error("failed to create post", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("post created", slog.Int64("post_id", post.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "post created successfully",
		"post":    post,
	}))
}
