package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(apiKey, userID, password string) http.Header {
	h := http.Header{}
	if apiKey != "" {
		h.Set(HeaderAPIKey, apiKey)
	}
	if userID != "" {
		h.Set(HeaderUserID, userID)
	}
	if password != "" {
		h.Set(HeaderPassword, password)
	}
	return h
}

func TestSecrets_Check(t *testing.T) {
	s := NewSecrets("token", "user", "pass")

	tests := []struct {
		name string
		h    http.Header
		want error
	}{
		{name: "all correct", h: headers("token", "user", "pass"), want: nil},
		{name: "missing api key", h: headers("", "user", "pass"), want: ErrMissingHeaders},
		{name: "missing user id", h: headers("token", "", "pass"), want: ErrMissingHeaders},
		{name: "missing password", h: headers("token", "user", ""), want: ErrMissingHeaders},
		{name: "wrong api key", h: headers("nope", "user", "pass"), want: ErrUnauthorized},
		{name: "wrong password", h: headers("token", "user", "nope"), want: ErrUnauthorized},
		{name: "swapped values", h: headers("user", "token", "pass"), want: ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Check(tt.h)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSecrets_CheckBcryptSecret(t *testing.T) {
	hash, err := HashPassword("pass")
	require.NoError(t, err)
	s := NewSecrets("token", "user", hash)

	assert.NoError(t, s.Check(headers("token", "user", "pass")))
	assert.ErrorIs(t, s.Check(headers("token", "user", hash)), ErrUnauthorized)
}
