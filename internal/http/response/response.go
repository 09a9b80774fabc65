// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков и сопоставления ошибок
// предметной области со статусами HTTP.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/weather-blog/internal/lib/validation"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Details — нарушения валидации по полям (опционально).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status  string       `json:"status"`
	Error   string       `json:"error,omitempty"`
	Details []FieldError `json:"details,omitempty"`
	Data    any          `json:"data,omitempty"`
}

// FieldError описывает нарушение правила валидации одного поля.
type FieldError struct {
	Field   string `json:"field" example:"username"`
	Message string `json:"message" example:"field username is a required field"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// MsgInternal сообщение клиенту для непредвиденных ошибок.
const MsgInternal = "internal error"

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Каждое нарушение попадает в Details отдельной записью.
func ValidationError(errs validator.ValidationErrors) Response {
	details := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		var msg string
		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", field)
		case "email":
			msg = fmt.Sprintf("field %s must be a valid email", field)
		case "min":
			msg = fmt.Sprintf("field %s must be at least %s characters", field, err.Param())
		case "max":
			msg = fmt.Sprintf("field %s must be at most %s characters", field, err.Param())
		case "username_chars":
			msg = fmt.Sprintf("field %s can contain only letters, numbers and underscore", field)
		case "password_bytes":
			msg = fmt.Sprintf("field %s must be at most %d bytes", field, validation.MaxPasswordBytes)
		case "strong_password":
			msg = fmt.Sprintf("field %s must contain a lowercase letter, an uppercase letter and a digit", field)
		case "oneof":
			msg = fmt.Sprintf("field %s must be one of: %s", field, err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", field)
		}
		details = append(details, FieldError{Field: field, Message: msg})
	}
	return Response{
		Status:  StatusError,
		Error:   "invalid request data",
		Details: details,
	}
}

// StatusFor сопоставляет ошибку со статусом HTTP и сообщением для клиента.
// Неизвестные ошибки дают 500 без подробностей.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrTokenMissing):
		return http.StatusUnauthorized, shared.ErrTokenMissing.Error()
	case errors.Is(err, shared.ErrTokenExpired):
		return http.StatusForbidden, shared.ErrTokenExpired.Error()
	case shared.IsTokenError(err):
		return http.StatusForbidden, "invalid token"
	case errors.Is(err, shared.ErrAccountNotFound):
		return http.StatusUnauthorized, shared.ErrAccountNotFound.Error()
	case errors.Is(err, shared.ErrAccountDisabled):
		return http.StatusUnauthorized, shared.ErrAccountDisabled.Error()
	case errors.Is(err, shared.ErrInvalidCredentials):
		return http.StatusUnauthorized, shared.ErrInvalidCredentials.Error()
	case errors.Is(err, shared.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, shared.ErrIncorrectPassword):
		return http.StatusBadRequest, shared.ErrIncorrectPassword.Error()
	case errors.Is(err, shared.ErrUsernameTaken):
		return http.StatusBadRequest, shared.ErrUsernameTaken.Error()
	case errors.Is(err, shared.ErrEmailTaken):
		return http.StatusBadRequest, shared.ErrEmailTaken.Error()
	case errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest, "invalid request data"
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// Fail пишет ответ с ошибкой, статус которого определяется StatusFor.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := StatusFor(err)
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// BadRequest пишет ответ 400 с сообщением msg.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error(msg))
}
