package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"trivia-service/internal/app"
)

// Recorder holds the service's Prometheus collectors.
type Recorder struct {
	selectionAttempts *prometheus.HistogramVec
	exhausted         *prometheus.CounterVec
	responses         *prometheus.CounterVec
}

var _ app.SelectionObserver = (*Recorder)(nil)

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		selectionAttempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trivia",
			Name:      "quiz_selection_attempts",
			Help:      "Sampling attempts needed to pick a quiz question.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 50},
		}, []string{"scope"}),
		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Name:      "quiz_exhausted_total",
			Help:      "Quiz selections that served a repeat because every candidate was used.",
		}, []string{"scope"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Name:      "http_responses_total",
			Help:      "HTTP responses by route and status code.",
		}, []string{"method", "route", "code"}),
	}
	reg.MustRegister(r.selectionAttempts, r.exhausted, r.responses)
	return r
}

func (r *Recorder) ObserveSelection(categoryID int, sel app.Selection) {
	scope := scopeLabel(categoryID)
	r.selectionAttempts.WithLabelValues(scope).Observe(float64(sel.Attempts))
	if sel.Repeat {
		r.exhausted.WithLabelValues(scope).Inc()
	}
}

// ObserveResponse counts one HTTP response.
func (r *Recorder) ObserveResponse(method, route string, code int) {
	r.responses.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

func scopeLabel(categoryID int) string {
	if categoryID == 0 {
		return "all"
	}
	return "category"
}
