// Package metrics defines the sink interface used to record batch results.
// The Prometheus implementation lives in infra/metrics; NopSink is used when
// metrics are disabled.
package metrics
