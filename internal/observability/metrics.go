package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	httpDurationHistogram *prometheus.HistogramVec
	quoteCounter          *prometheus.CounterVec
	guardRejectionCounter *prometheus.CounterVec
	transitionCounter     *prometheus.CounterVec
	submissionCounter     *prometheus.CounterVec
	activeSessionsGauge   prometheus.Gauge
	workerRunCounter      *prometheus.CounterVec
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"})

		quoteCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_quotes_total",
			Help: "Quote computations by target currency and outcome",
		}, []string{"target", "result"})

		guardRejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workflow_guard_rejections_total",
			Help: "Workflow transitions blocked by a guard",
		}, []string{"from", "reason"})

		transitionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workflow_transitions_total",
			Help: "Workflow step transitions",
		}, []string{"from", "to"})

		submissionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transfer_submissions_total",
			Help: "Submission collaborator outcomes",
		}, []string{"result"})

		activeSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "transfer_sessions_active",
			Help: "Transfer drafts currently held in memory",
		})

		workerRunCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_runs_total",
			Help: "Background worker run outcomes",
		}, []string{"worker", "result"})

		prometheus.MustRegister(
			httpDurationHistogram,
			quoteCounter,
			guardRejectionCounter,
			transitionCounter,
			submissionCounter,
			activeSessionsGauge,
			workerRunCounter,
		)
	})
}

func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if httpDurationHistogram == nil {
		return
	}
	httpDurationHistogram.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

func IncrementQuote(target, result string) {
	if quoteCounter == nil {
		return
	}
	quoteCounter.WithLabelValues(target, result).Inc()
}

func IncrementGuardRejection(from, reason string) {
	if guardRejectionCounter == nil {
		return
	}
	guardRejectionCounter.WithLabelValues(from, reason).Inc()
}

func IncrementTransition(from, to string) {
	if transitionCounter == nil {
		return
	}
	transitionCounter.WithLabelValues(from, to).Inc()
}

func IncrementSubmission(result string) {
	if submissionCounter == nil {
		return
	}
	submissionCounter.WithLabelValues(result).Inc()
}

func SetActiveSessions(n int) {
	if activeSessionsGauge == nil {
		return
	}
	activeSessionsGauge.Set(float64(n))
}

func IncrementWorkerRun(worker, result string) {
	if workerRunCounter == nil {
		return
	}
	workerRunCounter.WithLabelValues(worker, result).Inc()
}
