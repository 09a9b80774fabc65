// Package me реализует HTTP-обработчик получения текущего аккаунта.
package me

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Handler возвращает аккаунт, прошедший аутентификацию.
type Handler struct{}

// New создает Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Description Возвращает аккаунт владельца токена.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Аккаунт"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 403 {object} response.ErrorResponse "Токен недействителен"
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	account := middlewarectx.AccountFrom(r.Context())
	if account == nil {
		response.Fail(w, r, shared.ErrTokenMissing)
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": account,
	}))
}
