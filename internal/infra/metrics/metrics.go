// Package metrics exposes Prometheus collectors for the Walletive API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Session event labels.
const (
	SessionStarted   = "started"
	SessionAnswered  = "answered"
	SessionBack      = "back"
	SessionDiscarded = "discarded"
	SessionCompleted = "completed"
)

// Submission outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// SurveySubmissions counts persisted survey submissions by outcome.
var SurveySubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "walletive",
	Subsystem: "survey",
	Name:      "submissions_total",
	Help:      "Survey submissions by outcome.",
}, []string{"outcome"})

// ValidationFailures counts rejected answers by error code.
var ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "walletive",
	Subsystem: "survey",
	Name:      "validation_failures_total",
	Help:      "Answers rejected by validation, by error code.",
}, []string{"code"})

// SessionEvents counts survey session lifecycle events.
var SessionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "walletive",
	Subsystem: "survey",
	Name:      "session_events_total",
	Help:      "Survey session events by type.",
}, []string{"event"})

// RequestDuration observes HTTP request latency by route and status.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "walletive",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// Middleware records RequestDuration for every request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
