package observability

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	demoRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patternctl",
			Subsystem: "demo",
			Name:      "runs_total",
			Help:      "Total pattern demo executions.",
		},
		[]string{"family", "pattern", "outcome"},
	)
	demoDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "patternctl",
			Subsystem: "demo",
			Name:      "duration_seconds",
			Help:      "Pattern demo execution duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"family", "pattern"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(demoRuns, demoDuration)
	})
}

// RecordDemo tracks one demo execution.
func RecordDemo(family, pattern string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	demoRuns.WithLabelValues(family, pattern, outcome).Inc()
	demoDuration.WithLabelValues(family, pattern).Observe(duration.Seconds())
}

// Summary gathers the run counters into a printable report.
func Summary() (string, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return "", fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if mf.GetName() != "patternctl_demo_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s/%s %s=%d",
				labels["family"], labels["pattern"], labels["outcome"],
				int64(m.GetCounter().GetValue())))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}
