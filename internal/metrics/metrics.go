package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_saved_total",
			Help: "Transactions accepted and stored",
		},
		[]string{"type"}, // CARD|DEPOSITS|ALECREDITS
	)
	TransactionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_rejected_total",
			Help: "Submissions rejected before reaching the store",
		},
		[]string{"field"},
	)
	TransactionsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_store_errors_total",
			Help: "Store failures while saving a transaction",
		},
	)
	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Requests rejected by the header authenticator",
		},
		[]string{"reason"}, // missing|mismatch
	)
)

// /metrics endpoint'i için handler
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(TransactionsTotal)
	prometheus.MustRegister(TransactionsRejected)
	prometheus.MustRegister(TransactionsFailed)
	prometheus.MustRegister(AuthFailures)
}
