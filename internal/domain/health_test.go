package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/vmhealth/internal/domain"
)

// TestEvaluate covers the documented scenarios and the threshold boundary.
func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		cpu         float64
		mem         float64
		disk        float64
		wantStatus  domain.HealthStatus
		wantReasons []string
	}{
		{
			name:       "all low is healthy",
			cpu:        10,
			mem:        20,
			disk:       30,
			wantStatus: domain.HealthHealthy,
		},
		{
			name:        "cpu only",
			cpu:         75.5,
			mem:         10,
			disk:        10,
			wantStatus:  domain.HealthNotHealthy,
			wantReasons: []string{"CPU usage is above 60% (75.50%)."},
		},
		{
			name:       "all high",
			cpu:        99.99,
			mem:        99.99,
			disk:       99.99,
			wantStatus: domain.HealthNotHealthy,
			wantReasons: []string{
				"CPU usage is above 60% (99.99%).",
				"Memory usage is above 60% (99.99%).",
				"Disk usage is above 60% (99.99%).",
			},
		},
		{
			name:       "exactly at threshold is healthy",
			cpu:        60.0,
			mem:        60.0,
			disk:       60.0,
			wantStatus: domain.HealthHealthy,
		},
		{
			name:        "just above threshold",
			cpu:         0,
			mem:         0,
			disk:        60.01,
			wantStatus:  domain.HealthNotHealthy,
			wantReasons: []string{"Disk usage is above 60% (60.01%)."},
		},
		{
			name:       "memory and disk keep order",
			cpu:        5,
			mem:        65.1,
			disk:       80,
			wantStatus: domain.HealthNotHealthy,
			wantReasons: []string{
				"Memory usage is above 60% (65.10%).",
				"Disk usage is above 60% (80.00%).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := domain.Evaluate(tt.cpu, tt.mem, tt.disk)
			if report.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", report.Status, tt.wantStatus)
			}
			if strings.Join(report.Reasons, "|") != strings.Join(tt.wantReasons, "|") {
				t.Errorf("Reasons = %q, want %q", report.Reasons, tt.wantReasons)
			}
			if report.Samples.CPU != tt.cpu || report.Samples.Memory != tt.mem || report.Samples.Disk != tt.disk {
				t.Errorf("Samples = %+v, want %v/%v/%v", report.Samples, tt.cpu, tt.mem, tt.disk)
			}
		})
	}
}

func TestHealthStatusLabel(t *testing.T) {
	if got := domain.HealthHealthy.Label(); got != "healthy" {
		t.Errorf("healthy label = %q", got)
	}
	if got := domain.HealthNotHealthy.Label(); got != "not healthy" {
		t.Errorf("not healthy label = %q", got)
	}
}

func TestSamplingErrorUnwrap(t *testing.T) {
	cause := errors.New("exec: \"top\": executable file not found in $PATH")
	err := domain.NewSamplingError(domain.MetricCPU, "top", cause)

	if !errors.Is(err, cause) {
		t.Fatal("SamplingError should unwrap to its cause")
	}
	var samplingErr *domain.SamplingError
	if !errors.As(err, &samplingErr) {
		t.Fatal("errors.As should find *SamplingError")
	}
	if want := "sample cpu via top: " + cause.Error(); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
