// Package validation настраивает validator для входящих запросов:
// имена полей берутся из json-тегов, добавлены правила username_chars, strong_password
// и password_bytes.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator"
)

// MaxPasswordBytes предел длины пароля в байтах: bcrypt не принимает пароли длиннее.
const MaxPasswordBytes = 72

// New возвращает валидатор с зарегистрированными правилами.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// ошибки регистрации возможны только при пустом имени тега
	_ = v.RegisterValidation("username_chars", usernameChars)
	_ = v.RegisterValidation("strong_password", strongPassword)
	_ = v.RegisterValidation("password_bytes", passwordBytes)
	return v
}

// usernameChars допускает только латинские буквы, цифры и подчеркивание.
func usernameChars(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// passwordBytes ограничивает длину пароля в байтах, а не в символах.
func passwordBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

// strongPassword требует строчную букву, заглавную букву и цифру.
func strongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
