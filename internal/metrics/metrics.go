// Package metrics records probe task outcomes as prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess       = "success"
	ResultMissingConfig = "missing_config"
	ResultInvalid       = "invalid_argument"
	ResultError         = "error"
)

// Recorder holds the task metrics. A nil *Recorder records nothing.
type Recorder struct {
	runsTotal      *prometheus.CounterVec
	uploadDuration *prometheus.HistogramVec
	missingKeys    *prometheus.CounterVec
	lastSuccess    *prometheus.GaugeVec
}

// NewRecorder creates the task metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "roleprobe",
				Subsystem: "task",
				Name:      "runs_total",
				Help:      "Total number of probe runs by variant and result",
			},
			[]string{"variant", "result"},
		),
		uploadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "roleprobe",
				Subsystem: "task",
				Name:      "upload_duration_seconds",
				Help:      "Duration of the put-object call in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
			},
			[]string{"variant"},
		),
		missingKeys: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "roleprobe",
				Subsystem: "task",
				Name:      "missing_keys_total",
				Help:      "Total number of required arguments or credential fields found missing",
			},
			[]string{"key"},
		),
		lastSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "roleprobe",
				Subsystem: "task",
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful upload",
			},
			[]string{"bucket"},
		),
	}

	for _, c := range []prometheus.Collector{r.runsTotal, r.uploadDuration, r.missingKeys, r.lastSuccess} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return r, nil
}

// RecordRun records the outcome of one invocation.
func (r *Recorder) RecordRun(variant, result string) {
	if r == nil {
		return
	}
	r.runsTotal.WithLabelValues(variant, result).Inc()
}

// RecordUpload records the duration of a put-object call.
func (r *Recorder) RecordUpload(variant string, d time.Duration) {
	if r == nil {
		return
	}
	r.uploadDuration.WithLabelValues(variant).Observe(d.Seconds())
}

// RecordMissing counts each missing key.
func (r *Recorder) RecordMissing(keys []string) {
	if r == nil {
		return
	}
	for _, k := range keys {
		r.missingKeys.WithLabelValues(k).Inc()
	}
}

// RecordSuccess stamps the time of a successful upload to bucket.
func (r *Recorder) RecordSuccess(bucket string, at time.Time) {
	if r == nil {
		return
	}
	r.lastSuccess.WithLabelValues(bucket).Set(float64(at.Unix()))
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
