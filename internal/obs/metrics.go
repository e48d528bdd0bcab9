package obs

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// LedgerAppends counts audit ledger appends by action and outcome.
	LedgerAppends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_ledger_appends_total",
			Help: "Audit ledger append attempts by action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	// LoginAttempts counts login attempts by outcome (success, failed, blocked).
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// RiskFreezes counts program freeze transitions fired by the risk engine.
	RiskFreezes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "risk_freezes_total",
			Help: "Program freezes triggered by risk score crossings.",
		},
	)

	// AutomationActions counts executed automation actions by type and outcome.
	AutomationActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automation_actions_total",
			Help: "Automation actions executed by action type and outcome.",
		},
		[]string{"action", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers all metrics with the default registry. Safe to call more
// than once (tests construct services repeatedly).
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			LedgerAppends,
			LoginAttempts,
			RiskFreezes,
			AutomationActions,
		)
	})
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records request counts and latencies for every route.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
