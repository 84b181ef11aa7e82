package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for assessments and the job queue.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentLatency  prometheus.Histogram
	ActionsMatched     prometheus.Histogram
	RedFlagsRaised     *prometheus.CounterVec
	JobsTotal          *prometheus.CounterVec
	ReportCacheLookups *prometheus.CounterVec
}

// New registers and returns collectors on the default registry. Call once
// per process.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers collectors on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AssessmentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustscore_assessments_total",
			Help: "Assessments run, labeled by outcome",
		}, []string{"outcome"}),
		AssessmentLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustscore_assessment_latency_seconds",
			Help:    "Latency of a full assessment run including record loading and persistence",
			Buckets: prometheus.DefBuckets,
		}),
		ActionsMatched: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "trustscore_actions_matched",
			Help:    "Number of next best actions matched per assessment",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		RedFlagsRaised: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustscore_red_flags_total",
			Help: "Red flags raised, labeled by severity",
		}, []string{"severity"}),
		JobsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustscore_jobs_total",
			Help: "Assessment jobs by final status",
		}, []string{"status"}),
		ReportCacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustscore_report_cache_lookups_total",
			Help: "Latest-report cache lookups, labeled hit or miss",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementAssessments(outcome string) {
	m.AssessmentsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAssessmentLatency(d time.Duration) {
	m.AssessmentLatency.Observe(d.Seconds())
}

func (m *Metrics) ObserveActionsMatched(n int) {
	m.ActionsMatched.Observe(float64(n))
}

func (m *Metrics) IncrementRedFlags(severity string) {
	m.RedFlagsRaised.WithLabelValues(severity).Inc()
}

func (m *Metrics) IncrementJobs(status string) {
	m.JobsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ReportCacheLookups.WithLabelValues(result).Inc()
}
