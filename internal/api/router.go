package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/baharkarakas/txn-intake/internal/auth"
	"github.com/baharkarakas/txn-intake/internal/metrics"
	"github.com/baharkarakas/txn-intake/internal/middleware"
	"github.com/baharkarakas/txn-intake/internal/services"
)

type RouterDeps struct {
	Secrets auth.Secrets
	TxnSvc  *services.TransactionService
	// Limiter may be nil to disable rate limiting.
	Limiter middleware.Limiter
	// Registerer receives the HTTP latency histogram; nil skips registration.
	Registerer prometheus.Registerer
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: append([]string{"Content-Type", middleware.HeaderRequestID}, auth.RequiredHeaders...),
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}))
	r.Use(middleware.HTTPMetrics(d.Registerer), middleware.RateLimit(d.Limiter))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	h := NewTransactionHandler(d.TxnSvc)
	r.Group(func(r chi.Router) {
		r.Use(middleware.HeaderAuth(d.Secrets))
		// every method reaches the handler so non-POST gets the 400 body
		r.HandleFunc("/saveTransaction", h.Save)
		r.HandleFunc("/api/v1/transactions", h.Save)
	})

	return r
}
