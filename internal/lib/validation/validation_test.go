package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Username string `json:"username" validate:"required,min=3,max=50,username_chars"`
	Password string `json:"password" validate:"required,min=6,password_bytes,strong_password"`
}

func TestRules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		in        account
		wantField string
		wantTag   string
	}{
		{name: "valid", in: account{Username: "alice_01", Password: "Secret1"}},
		{name: "username with dash", in: account{Username: "alice-01", Password: "Secret1"}, wantField: "username", wantTag: "username_chars"},
		{name: "username with unicode", in: account{Username: "алиса", Password: "Secret1"}, wantField: "username", wantTag: "username_chars"},
		{name: "password without upper", in: account{Username: "alice", Password: "secret1"}, wantField: "password", wantTag: "strong_password"},
		{name: "password without digit", in: account{Username: "alice", Password: "Secrets"}, wantField: "password", wantTag: "strong_password"},
		{name: "password too short", in: account{Username: "alice", Password: "Se1"}, wantField: "password", wantTag: "min"},
		{name: "password at byte limit", in: account{Username: "alice", Password: "Se1" + strings.Repeat("a", MaxPasswordBytes-3)}},
		{name: "password over byte limit", in: account{Username: "alice", Password: "Se1" + strings.Repeat("a", MaxPasswordBytes-2)}, wantField: "password", wantTag: "password_bytes"},
		// 40 символов, но 77 байт
		{name: "multibyte password over byte limit", in: account{Username: "alice", Password: "Se1" + strings.Repeat("ж", 37)}, wantField: "password", wantTag: "password_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs := err.(validator.ValidationErrors)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field())
			assert.Equal(t, tt.wantTag, errs[0].Tag())
		})
	}
}
