package domain

import "fmt"

// Threshold is the utilization percentage above which a metric is unhealthy.
const Threshold = 60.0

// HealthStatus is the overall verdict of a run.
type HealthStatus string

const (
	HealthHealthy    HealthStatus = "healthy"
	HealthNotHealthy HealthStatus = "not_healthy"
)

// Label renders the status the way it appears on the status line.
func (s HealthStatus) Label() string {
	if s == HealthNotHealthy {
		return "not healthy"
	}
	return string(s)
}

// Metric identifies one of the sampled resources.
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "memory"
	MetricDisk   Metric = "disk"
)

// Metrics lists the sampled resources in reporting order.
var Metrics = []Metric{MetricCPU, MetricMemory, MetricDisk}

// DisplayName is the human readable name used in reasons and explanations.
func (m Metric) DisplayName() string {
	switch m {
	case MetricCPU:
		return "CPU"
	case MetricMemory:
		return "Memory"
	case MetricDisk:
		return "Disk"
	default:
		return string(m)
	}
}

// Samples holds one utilization percentage per metric. Values are not clamped.
type Samples struct {
	CPU    float64
	Memory float64
	Disk   float64
}

// Value returns the sample for m.
func (s Samples) Value(m Metric) float64 {
	switch m {
	case MetricCPU:
		return s.CPU
	case MetricMemory:
		return s.Memory
	case MetricDisk:
		return s.Disk
	default:
		return 0
	}
}

// HealthReport is the outcome of evaluating one set of samples.
type HealthReport struct {
	Status  HealthStatus
	Samples Samples
	Reasons []string
}

// Healthy reports whether no metric exceeded the threshold.
func (r HealthReport) Healthy() bool {
	return r.Status == HealthHealthy
}

// Evaluate applies Threshold to the three samples. A value equal to the
// threshold is healthy. Reasons are ordered CPU, memory, disk.
func Evaluate(cpu, mem, disk float64) HealthReport {
	samples := Samples{CPU: cpu, Memory: mem, Disk: disk}
	reasons := []string{}
	for _, m := range Metrics {
		if v := samples.Value(m); v > Threshold {
			reasons = append(reasons, reason(m, v))
		}
	}

	status := HealthHealthy
	if len(reasons) > 0 {
		status = HealthNotHealthy
	}
	return HealthReport{Status: status, Samples: samples, Reasons: reasons}
}

func reason(m Metric, value float64) string {
	return fmt.Sprintf("%s usage is above %g%% (%.2f%%).", m.DisplayName(), Threshold, value)
}
