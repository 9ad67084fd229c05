package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lsbets_bets_placed_total",
		Help: "Bets accepted and charged against a bankroll.",
	})

	DepositsCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lsbets_deposits_credited_total",
		Help: "Gateway-confirmed deposits credited to a bankroll.",
	})

	WithdrawalsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lsbets_withdrawals_resolved_total",
		Help: "Withdraw requests adjudicated by an admin.",
	}, []string{"outcome"})

	// ReconciliationAlerts counts deposits the gateway confirmed but the
	// ledger failed to credit. Every increment is real money waiting on
	// manual reconciliation; alert on any non-zero rate.
	ReconciliationAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lsbets_ledger_reconciliation_alerts_total",
		Help: "Confirmed payments that failed to credit the ledger.",
	})
)

type HealthFunc func(ctx context.Context) error

// StartServer runs a small HTTP server for /metrics and /healthz next to the
// main listener. Caller shuts it down alongside the main server.
func StartServer(port string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := healthFn(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
