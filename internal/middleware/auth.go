package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/txn-intake/internal/api/httpx"
	"github.com/baharkarakas/txn-intake/internal/auth"
	"github.com/baharkarakas/txn-intake/internal/metrics"
)

// HeaderAuth rejects requests whose credential headers are absent (400) or
// do not match the configured secrets (403).
func HeaderAuth(s auth.Secrets) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := s.Check(r.Header)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, auth.ErrMissingHeaders):
				metrics.AuthFailures.WithLabelValues("missing").Inc()
				httpx.WriteMessage(w, http.StatusBadRequest, httpx.MsgMissingHeaders)
			default:
				metrics.AuthFailures.WithLabelValues("mismatch").Inc()
				slog.Warn("auth rejected", "request_id", RequestIDFrom(r.Context()), "remote", r.RemoteAddr)
				httpx.WriteMessage(w, http.StatusForbidden, httpx.MsgUnauthorized)
			}
		})
	}
}
