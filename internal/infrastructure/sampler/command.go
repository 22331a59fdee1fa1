// Package sampler implements the CPU, memory and disk sources.
//
// The command sources run top, free and df and parse their text output with
// the Parse* functions. The native sources read the same figures through
// gopsutil for hosts without procps.
package sampler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/ports"
)

// TopSource samples CPU utilization with two batch-mode top iterations.
type TopSource struct {
	Runner   ports.CommandRunner
	Binary   string
	Interval time.Duration
}

// NewTopSource builds a TopSource. An empty binary defaults to "top".
func NewTopSource(runner ports.CommandRunner, binary string, interval time.Duration) *TopSource {
	if binary == "" {
		binary = "top"
	}
	if interval <= 0 {
		interval = domain.DefaultCPUInterval
	}
	return &TopSource{Runner: runner, Binary: binary, Interval: interval}
}

// CPUPercent implements ports.CPUSource.
func (s *TopSource) CPUPercent(ctx context.Context) (float64, error) {
	delay := strconv.FormatFloat(s.Interval.Seconds(), 'f', -1, 64)
	res, err := s.Runner.Run(ctx, s.Binary, "-b", "-n", "2", "-d", delay)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricCPU, s.Binary, err)
	}
	v, err := ParseTopCPU(res.Stdout)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricCPU, s.Binary, err)
	}
	return v, nil
}

// FreeSource samples memory utilization from free.
type FreeSource struct {
	Runner ports.CommandRunner
	Binary string
}

// NewFreeSource builds a FreeSource. An empty binary defaults to "free".
func NewFreeSource(runner ports.CommandRunner, binary string) *FreeSource {
	if binary == "" {
		binary = "free"
	}
	return &FreeSource{Runner: runner, Binary: binary}
}

// MemoryPercent implements ports.MemorySource.
func (s *FreeSource) MemoryPercent(ctx context.Context) (float64, error) {
	res, err := s.Runner.Run(ctx, s.Binary)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricMemory, s.Binary, err)
	}
	v, err := ParseFreeMemory(res.Stdout)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricMemory, s.Binary, err)
	}
	return v, nil
}

// DFSource samples filesystem utilization from df in POSIX format.
type DFSource struct {
	Runner ports.CommandRunner
	Binary string
	Path   string
}

// NewDFSource builds a DFSource for path. Empty values fall back to "df" and "/".
func NewDFSource(runner ports.CommandRunner, binary, path string) *DFSource {
	if binary == "" {
		binary = "df"
	}
	if path == "" {
		path = domain.DefaultDiskPath
	}
	return &DFSource{Runner: runner, Binary: binary, Path: path}
}

// DiskPercent implements ports.DiskSource.
func (s *DFSource) DiskPercent(ctx context.Context) (float64, error) {
	res, err := s.Runner.Run(ctx, s.Binary, "-P", s.Path)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricDisk, s.Binary, err)
	}
	v, err := ParseDFUsage(res.Stdout)
	if err != nil {
		return 0, domain.NewSamplingError(domain.MetricDisk, s.Binary, fmt.Errorf("%s: %w", s.Path, err))
	}
	return v, nil
}

var (
	_ ports.CPUSource    = (*TopSource)(nil)
	_ ports.MemorySource = (*FreeSource)(nil)
	_ ports.DiskSource   = (*DFSource)(nil)
)
