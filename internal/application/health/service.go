package health

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/ports"
)

// Service samples the host once and evaluates the result.
type Service struct {
	CPU      ports.CPUSource
	Memory   ports.MemorySource
	Disk     ports.DiskSource
	Exporter ports.ReportExporter
	Logger   ports.Logger
}

// Run samples CPU, memory and disk in that order and returns the evaluated
// report. The first sampling failure aborts the run; no partial report is
// produced.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	if s.CPU == nil || s.Memory == nil || s.Disk == nil {
		return domain.HealthReport{}, errors.New("health service: sources not configured")
	}

	cpu, err := s.sample(ctx, domain.MetricCPU, s.CPU.CPUPercent)
	if err != nil {
		return domain.HealthReport{}, err
	}
	mem, err := s.sample(ctx, domain.MetricMemory, s.Memory.MemoryPercent)
	if err != nil {
		return domain.HealthReport{}, err
	}
	disk, err := s.sample(ctx, domain.MetricDisk, s.Disk.DiskPercent)
	if err != nil {
		return domain.HealthReport{}, err
	}

	report := domain.Evaluate(cpu, mem, disk)
	s.logger().Info("health evaluated", map[string]interface{}{
		"status":  string(report.Status),
		"reasons": len(report.Reasons),
	})

	if s.Exporter != nil {
		if err := s.Exporter.Export(report); err != nil {
			s.logger().Debug("export failed", map[string]interface{}{"error": err.Error()})
			return report, err
		}
	}
	return report, nil
}

func (s *Service) sample(ctx context.Context, m domain.Metric, read func(context.Context) (float64, error)) (float64, error) {
	start := time.Now()
	v, err := read(ctx)
	fields := map[string]interface{}{
		"metric":      string(m),
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		// The caller reports the error itself.
		fields["error"] = err.Error()
		s.logger().Debug("sampling failed", fields)
		return 0, err
	}
	fields["percent"] = v
	s.logger().Debug("sampled", fields)
	return v, nil
}

func (s *Service) logger() ports.Logger {
	if s.Logger == nil {
		return nopLogger{}
	}
	return s.Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
