// Package urlparam разбирает числовые параметры пути chi.
package urlparam

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

// ErrInvalidID некорректный идентификатор в пути.
var ErrInvalidID = errors.New("invalid id in url")

// ID возвращает положительный идентификатор из параметра пути name.
func ID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
