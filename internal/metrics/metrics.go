// Package metrics records section loads and export outcomes for Prometheus.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bmcanvas"

// Recorder holds the service's collectors on its own registry.
type Recorder struct {
	reg            *prom.Registry
	loads          *prom.CounterVec
	sectionsLoaded prom.Gauge
	exports        *prom.CounterVec
	exportDuration *prom.HistogramVec
	exportBytes    *prom.HistogramVec
}

// NewRecorder registers the collectors on reg, or on a fresh registry when reg is nil.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "section_loads_total",
			Help:      "Section directory reads by outcome",
		}, []string{"result"}),
		sectionsLoaded: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sections_loaded",
			Help:      "Number of sections returned by the most recent load",
		}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export requests by format and outcome",
		}, []string{"format", "result"}),
		exportDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Time spent rendering an export",
			Buckets:   prom.DefBuckets,
		}, []string{"format"}),
		exportBytes: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "export_size_bytes",
			Help:      "Size of rendered exports",
			Buckets:   prom.ExponentialBuckets(1024, 4, 8),
		}, []string{"format"}),
	}
	reg.MustRegister(r.loads, r.sectionsLoaded, r.exports, r.exportDuration, r.exportBytes)
	return r
}

// ObserveLoad records one directory read.
func (r *Recorder) ObserveLoad(count int, err error) {
	if err != nil {
		r.loads.WithLabelValues("error").Inc()
		return
	}
	r.loads.WithLabelValues("ok").Inc()
	r.sectionsLoaded.Set(float64(count))
}

// ObserveExport records one export attempt.
func (r *Recorder) ObserveExport(format string, size int, d time.Duration, err error) {
	if err != nil {
		r.exports.WithLabelValues(format, "error").Inc()
		return
	}
	r.exports.WithLabelValues(format, "ok").Inc()
	r.exportDuration.WithLabelValues(format).Observe(d.Seconds())
	r.exportBytes.WithLabelValues(format).Observe(float64(size))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
