// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The health service depends only on these contracts. Adapters in the
// infrastructure layer read live OS state (by running top, free and df, or
// through gopsutil), load configuration and write logs.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., CPUSource, CommandRunner)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/vmhealth/internal/domain"
)

// ConfigProvider loads the effective configuration.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CPUSource reports system-wide CPU utilization in percent.
type CPUSource interface {
	CPUPercent(context.Context) (float64, error)
}

// MemorySource reports memory utilization in percent.
type MemorySource interface {
	MemoryPercent(context.Context) (float64, error)
}

// DiskSource reports utilization of the sampled filesystem in percent.
type DiskSource interface {
	DiskPercent(context.Context) (float64, error)
}

// CommandRunner runs an external utility and captures its output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (domain.ExecutionResult, error)
}

// ReportExporter publishes a finished report somewhere other than stdout.
type ReportExporter interface {
	Export(domain.HealthReport) error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
