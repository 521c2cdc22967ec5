package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/flexrate/core/metrics"
)

// PromSink records batch results in Prometheus metrics and writes them to a
// textfile-collector file on Flush.
type PromSink struct {
	path     string
	gatherer prometheus.Gatherer
	files    *prometheus.CounterVec
	rows     *prometheus.CounterVec
	unpriced prometheus.Counter
	duration prometheus.Histogram
	lastRun  prometheus.Gauge
}

// New returns a PromSink when cfg.Textfile is set and a NopSink otherwise.
func New(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	if cfg.Textfile == "" {
		return coremetrics.NopSink{}, nil
	}
	sink, err := NewPromSinkWithRegistry(cfg, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	return sink, nil
}

// NewPromSinkWithRegistry registers the batch metrics on reg.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg *prometheus.Registry) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &PromSink{
		path:     cfg.Textfile,
		gatherer: reg,
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flexrate_files_total",
			Help: "Primary exports processed, by outcome",
		}, []string{"status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flexrate_rows_total",
			Help: "Export rows by pipeline stage",
		}, []string{"stage"}),
		unpriced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flexrate_unpriced_rows_total",
			Help: "Written rows whose price could not be matched",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "flexrate_file_duration_seconds",
			Help:    "Time spent processing one primary export",
			Buckets: prometheus.DefBuckets,
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flexrate_last_file_timestamp_seconds",
			Help: "Unix time of the last processed export",
		}),
	}
	for _, c := range []prometheus.Collector{s.files, s.rows, s.unpriced, s.duration, s.lastRun} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RecordFile updates the counters for one processed export.
func (s *PromSink) RecordFile(ev coremetrics.FileEvent) error {
	status := "ok"
	if ev.Failed {
		status = "failed"
	}
	s.files.WithLabelValues(status).Inc()
	s.rows.WithLabelValues("read").Add(float64(ev.RowsRead))
	s.rows.WithLabelValues("dropped").Add(float64(ev.RowsDropped))
	s.rows.WithLabelValues("written").Add(float64(ev.RowsWritten))
	s.unpriced.Add(float64(ev.Unpriced))
	s.duration.Observe(ev.Duration.Seconds())
	if !ev.Time.IsZero() {
		s.lastRun.Set(float64(ev.Time.Unix()))
	}
	return nil
}

// Flush writes all gathered metrics to the configured textfile.
func (s *PromSink) Flush() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("metrics dir: %w", err)
		}
	}
	return prometheus.WriteToTextfile(s.path, s.gatherer)
}
