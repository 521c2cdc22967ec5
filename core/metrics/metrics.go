package metrics

import "time"

// Config controls batch metrics export.
type Config struct {
	// Textfile is the path of a Prometheus textfile-collector file written
	// after each batch. Empty disables metrics.
	Textfile string `json:"textfile"`
}

// FileEvent summarizes the processing of one primary export.
type FileEvent struct {
	File        string
	RowsRead    int
	RowsDropped int
	RowsWritten int
	// Unpriced counts written rows whose price was not numeric.
	Unpriced int
	Duration time.Duration
	Failed   bool
	Time     time.Time
}

// MetricsSink records batch processing results.
type MetricsSink interface {
	RecordFile(ev FileEvent) error
	// Flush persists the recorded metrics.
	Flush() error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordFile(FileEvent) error { return nil }
func (NopSink) Flush() error               { return nil }
