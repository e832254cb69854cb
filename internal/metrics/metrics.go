package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
}

type Counters struct {
	HTTPRequests Counter

	LongRunningQueries Counter

	LogEntriesParsed Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newCounterVec(name, help, labels)
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(v float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(v)
}

const (
	httpRequestsName = "dashboard_requests_total"
	httpRequestsHelp = "Number of dashboard API requests"

	longRunningName = "long_running_queries_total"
	longRunningHelp = "Number of active sessions flagged by the long running query thresholds"

	logEntriesName = "log_entries_parsed_total"
	logEntriesHelp = "Number of server log entries returned to clients"
)

var (
	httpRequestsLabels = []string{"endpoint", "status"}
	longRunningLabels  = []string{"sid", "row_type"}
	logEntriesLabels   = []string{"format"}
)

func New() *Counters {
	return &Counters{
		HTTPRequests:       NewPrometheusCounter(httpRequestsName, httpRequestsHelp, httpRequestsLabels),
		LongRunningQueries: NewPrometheusCounter(longRunningName, longRunningHelp, longRunningLabels),
		LogEntriesParsed:   NewPrometheusCounter(logEntriesName, logEntriesHelp, logEntriesLabels),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	httpRequests := newCounterVec(httpRequestsName, httpRequestsHelp, httpRequestsLabels)
	longRunning := newCounterVec(longRunningName, longRunningHelp, longRunningLabels)
	logEntries := newCounterVec(logEntriesName, logEntriesHelp, logEntriesLabels)

	reg.MustRegister(httpRequests.counter)
	reg.MustRegister(longRunning.counter)
	reg.MustRegister(logEntries.counter)

	return &Counters{
		HTTPRequests:       httpRequests,
		LongRunningQueries: longRunning,
		LogEntriesParsed:   logEntries,
	}
}
