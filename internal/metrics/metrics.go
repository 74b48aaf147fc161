package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chronicler"

const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"

	VerdictCorrect    = "correct"
	VerdictIncorrect  = "incorrect"
	VerdictUnparsable = "unparsable"
)

// Recorder owns the application counters. A nil *Recorder records nothing.
type Recorder struct {
	chatResponses   *prometheus.CounterVec
	missionVerdicts *prometheus.CounterVec
	expeditions     prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		chatResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_responses_total",
			Help:      "Assistant replies by matched keyword and outcome",
		}, []string{"keyword", "outcome"}),
		missionVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mission_verdicts_total",
			Help:      "Evaluated mission answers by mission and verdict",
		}, []string{"mission", "verdict"}),
		expeditions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expeditions_created_total",
			Help:      "Expeditions started",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{r.chatResponses, r.missionVerdicts, r.expeditions, r.httpRequests, r.httpDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RecordChatResponse counts one assistant reply. keyword is empty on fallback.
func (r *Recorder) RecordChatResponse(keyword string) {
	if r == nil {
		return
	}
	outcome := OutcomeMatched
	if keyword == "" {
		keyword = "none"
		outcome = OutcomeFallback
	}
	r.chatResponses.WithLabelValues(keyword, outcome).Inc()
}

func (r *Recorder) RecordMissionVerdict(missionID, verdict string) {
	if r == nil {
		return
	}
	r.missionVerdicts.WithLabelValues(missionID, verdict).Inc()
}

func (r *Recorder) RecordExpeditionCreated() {
	if r == nil {
		return
	}
	r.expeditions.Inc()
}

// ObserveHTTP records a finished request. route is the route template, not the raw path.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
