// Package metrics exports a finished health report in the Prometheus text
// format, for pickup by the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/ports"
)

const namespace = "vmhealth"

// TextfileExporter writes one report snapshot to a .prom file.
type TextfileExporter struct {
	path string
}

// NewTextfileExporter builds an exporter writing to path.
func NewTextfileExporter(path string) *TextfileExporter {
	return &TextfileExporter{path: path}
}

// Export implements ports.ReportExporter. The file is replaced atomically.
func (e *TextfileExporter) Export(report domain.HealthReport) error {
	reg, err := NewRegistry(report)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(e.path, reg); err != nil {
		return fmt.Errorf("write textfile %s: %w", e.path, err)
	}
	return nil
}

// NewRegistry returns a registry holding the gauges for report.
func NewRegistry(report domain.HealthReport) (*prometheus.Registry, error) {
	usage := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "usage_percent",
		Help:      "Sampled utilization of a host resource in percent.",
	}, []string{"metric"})
	threshold := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "threshold_percent",
		Help:      "Utilization above which a resource is unhealthy.",
	})
	healthy := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthy",
		Help:      "1 when no resource exceeded the threshold, 0 otherwise.",
	})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{usage, threshold, healthy} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	for _, m := range domain.Metrics {
		usage.WithLabelValues(string(m)).Set(report.Samples.Value(m))
	}
	threshold.Set(domain.Threshold)
	if report.Healthy() {
		healthy.Set(1)
	}
	return reg, nil
}

var _ ports.ReportExporter = (*TextfileExporter)(nil)
