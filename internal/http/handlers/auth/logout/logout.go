// Package logout реализует выход. Токены не хранятся на сервере,
// поэтому клиент просто забывает свой токен.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/http/response"
)

// Handler обрабатывает запрос выхода.
type Handler struct {
	log *slog.Logger
}

// New создает Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход
// @Description Токен остается действительным до истечения срока; клиент должен удалить его.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Выход выполнен"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	if account := middlewarectx.AccountFrom(r.Context()); account != nil {
		h.log.Info("logout",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int64("account_id", account.ID),
		)
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logout successful",
	}))
}
