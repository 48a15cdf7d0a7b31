// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "event_scoring"

// Registry owns a private Prometheus registry. All methods are safe on a nil
// receiver so callers can run without metrics.
type Registry struct {
	reg *prometheus.Registry

	scoreSubmissions *prometheus.CounterVec
	resultsPublished *prometheus.CounterVec
	leaderboardSize  *prometheus.GaugeVec
	notifications    *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		scoreSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_submissions_total",
			Help:      "Score submissions by outcome.",
		}, []string{"outcome"}),
		resultsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_published_total",
			Help:      "Published result upserts by visibility and outcome.",
		}, []string{"visibility", "outcome"}),
		leaderboardSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_participants",
			Help:      "Participants ranked in the last computed leaderboard per event.",
		}, []string{"event_id"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Outbound emails by kind and delivery status.",
		}, []string{"kind", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

func (r *Registry) ScoreSubmitted(err error) {
	if r == nil {
		return
	}
	r.scoreSubmissions.WithLabelValues(outcome(err)).Inc()
}

func (r *Registry) ResultPublished(isPublished bool, err error) {
	if r == nil {
		return
	}
	visibility := "draft"
	if isPublished {
		visibility = "public"
	}
	r.resultsPublished.WithLabelValues(visibility, outcome(err)).Inc()
}

func (r *Registry) LeaderboardComputed(eventID string, participants int) {
	if r == nil {
		return
	}
	r.leaderboardSize.WithLabelValues(eventID).Set(float64(participants))
}

func (r *Registry) NotificationDelivered(kind, status string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(kind, status).Inc()
}

func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
