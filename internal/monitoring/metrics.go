package monitoring

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)
)

var (
	VisitRegistrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_registrations_total",
			Help: "Visit registrations by outcome",
		},
		[]string{"outcome"},
	)

	ChangeEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_events_published_total",
			Help: "Change events handed to the queue, by entity and result",
		},
		[]string{"entity", "result"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(VisitRegistrations)
		prometheus.MustRegister(ChangeEventsPublished)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
