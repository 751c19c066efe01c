package auth

import (
	"errors"
	"net/http"
)

// Header names carrying the caller's credentials.
const (
	HeaderAPIKey   = "x-api-key"
	HeaderUserID   = "x-user-id"
	HeaderPassword = "x-password"
)

var RequiredHeaders = []string{HeaderAPIKey, HeaderUserID, HeaderPassword}

var (
	ErrMissingHeaders = errors.New("missing auth headers")
	ErrUnauthorized   = errors.New("unauthorized")
)

// Secrets are the values the three headers must carry. Built once at
// startup and never modified.
type Secrets struct {
	tokenID    string
	userID     string
	passwordID string
}

func NewSecrets(tokenID, userID, passwordID string) Secrets {
	return Secrets{tokenID: tokenID, userID: userID, passwordID: passwordID}
}

// Check returns ErrMissingHeaders when any header is absent or empty and
// ErrUnauthorized when a value does not match its secret.
func (s Secrets) Check(h http.Header) error {
	for _, name := range RequiredHeaders {
		if h.Get(name) == "" {
			return ErrMissingHeaders
		}
	}
	// all three are always compared
	okToken := matches(h.Get(HeaderAPIKey), s.tokenID)
	okUser := matches(h.Get(HeaderUserID), s.userID)
	okPass := matches(h.Get(HeaderPassword), s.passwordID)
	if !okToken || !okUser || !okPass {
		return ErrUnauthorized
	}
	return nil
}
