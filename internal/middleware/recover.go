package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/txn-intake/internal/api/httpx"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "request_id", RequestIDFrom(r.Context()))
				httpx.WriteMessage(w, http.StatusInternalServerError, httpx.MsgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
