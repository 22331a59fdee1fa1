package sampler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/vmhealth/internal/domain"
)

type stubRunner struct {
	stdout string
	err    error

	name string
	args []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) (domain.ExecutionResult, error) {
	s.name = name
	s.args = args
	return domain.ExecutionResult{Stdout: s.stdout}, s.err
}

func TestTopSourceRunsTwoIterations(t *testing.T) {
	runner := &stubRunner{stdout: "%Cpu(s): 10.0 us,  5.0 sy,  0.0 ni, 85.0 id\n"}
	src := NewTopSource(runner, "", 500*time.Millisecond)

	got, err := src.CPUPercent(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, 1e-9)
	assert.Equal(t, "top", runner.name)
	assert.Equal(t, []string{"-b", "-n", "2", "-d", "0.5"}, runner.args)
}

func TestTopSourceParseFailureIsSamplingError(t *testing.T) {
	src := NewTopSource(&stubRunner{stdout: "garbage"}, "", 0)

	_, err := src.CPUPercent(context.Background())
	var samplingErr *domain.SamplingError
	require.ErrorAs(t, err, &samplingErr)
	assert.Equal(t, domain.MetricCPU, samplingErr.Metric)
	assert.ErrorIs(t, err, domain.ErrMalformedOutput)
}

func TestFreeSource(t *testing.T) {
	runner := &stubRunner{stdout: "  total used free\nMem: 200 50 150\n"}
	src := NewFreeSource(runner, "/usr/bin/free")

	got, err := src.MemoryPercent(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got, 1e-9)
	assert.Equal(t, "/usr/bin/free", runner.name)
	assert.Empty(t, runner.args)
}

func TestFreeSourceZeroTotal(t *testing.T) {
	src := NewFreeSource(&stubRunner{stdout: "Mem: 0 0 0\n"}, "")

	got, err := src.MemoryPercent(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDFSource(t *testing.T) {
	runner := &stubRunner{stdout: "Filesystem 1024-blocks Used Available Capacity Mounted on\n/dev/vda1 100 63 37 63% /\n"}
	src := NewDFSource(runner, "", "")

	got, err := src.DiskPercent(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 63.0, got, 1e-9)
	assert.Equal(t, "df", runner.name)
	assert.Equal(t, []string{"-P", "/"}, runner.args)
}

func TestDFSourceHeaderOnly(t *testing.T) {
	src := NewDFSource(&stubRunner{stdout: "Filesystem 1024-blocks Used Available Capacity Mounted on\n"}, "", "/")

	got, err := src.DiskPercent(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCommandFailureIsSamplingError(t *testing.T) {
	boom := errors.New("executable file not found in $PATH")
	runner := &stubRunner{err: boom}

	tests := []struct {
		name   string
		metric domain.Metric
		sample func() error
	}{
		{"cpu", domain.MetricCPU, func() error {
			_, err := NewTopSource(runner, "", time.Second).CPUPercent(context.Background())
			return err
		}},
		{"memory", domain.MetricMemory, func() error {
			_, err := NewFreeSource(runner, "").MemoryPercent(context.Background())
			return err
		}},
		{"disk", domain.MetricDisk, func() error {
			_, err := NewDFSource(runner, "", "/").DiskPercent(context.Background())
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sample()
			var samplingErr *domain.SamplingError
			require.ErrorAs(t, err, &samplingErr)
			assert.Equal(t, tt.metric, samplingErr.Metric)
			assert.ErrorIs(t, err, boom)
		})
	}
}
