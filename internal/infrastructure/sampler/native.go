package sampler

import (
	"context"
	"errors"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/ports"
)

const nativeSource = "gopsutil"

// Replaced in tests.
var (
	cpuPercent    = cpu.PercentWithContext
	virtualMemory = mem.VirtualMemoryWithContext
	diskUsage     = disk.UsageWithContext
)

// NativeSource reads all three metrics from kernel counters via gopsutil.
type NativeSource struct {
	Interval time.Duration
	Path     string
}

// NewNativeSource builds a NativeSource sampling CPU over interval and disk
// usage of path.
func NewNativeSource(interval time.Duration, path string) *NativeSource {
	if interval <= 0 {
		interval = domain.DefaultCPUInterval
	}
	if path == "" {
		path = domain.DefaultDiskPath
	}
	return &NativeSource{Interval: interval, Path: path}
}

// CPUPercent implements ports.CPUSource. It blocks for Interval.
func (s *NativeSource) CPUPercent(ctx context.Context) (float64, error) {
	pcts, err := cpuPercent(ctx, s.Interval, false)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricCPU, nativeSource, err)
	}
	if len(pcts) == 0 {
		return 0, domain.NewSamplingError(domain.MetricCPU, nativeSource, errors.New("no cpu times reported"))
	}
	return pcts[0], nil
}

// MemoryPercent implements ports.MemorySource.
func (s *NativeSource) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricMemory, nativeSource, err)
	}
	if vm == nil || vm.Total == 0 {
		return 0, nil
	}
	return float64(vm.Used) * 100.0 / float64(vm.Total), nil
}

// DiskPercent implements ports.DiskSource.
func (s *NativeSource) DiskPercent(ctx context.Context) (float64, error) {
	du, err := diskUsage(ctx, s.Path)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricDisk, nativeSource, err)
	}
	if du == nil {
		return 0, nil
	}
	return du.UsedPercent, nil
}

var (
	_ ports.CPUSource    = (*NativeSource)(nil)
	_ ports.MemorySource = (*NativeSource)(nil)
	_ ports.DiskSource   = (*NativeSource)(nil)
)
