package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/ports"
)

const waitDelay = time.Second

// LocalExecutor runs utilities directly on the host, without a shell.
type LocalExecutor struct {
	timeout time.Duration
	env     []string
}

// NewLocalExecutor builds a new executor. A zero timeout uses
// domain.DefaultCommandTimeout. The C locale keeps numeric output stable.
func NewLocalExecutor(timeout time.Duration) *LocalExecutor {
	if timeout <= 0 {
		timeout = domain.DefaultCommandTimeout
	}
	env := append(os.Environ(), "LC_ALL=C", "LANG=C")
	return &LocalExecutor{timeout: timeout, env: env}
}

// Run implements ports.CommandRunner.
func (e *LocalExecutor) Run(ctx context.Context, name string, args ...string) (domain.ExecutionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, name, args...)
	c.Env = e.env
	// Children of a killed utility may keep the output pipes open.
	c.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if err == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("%s: %w", name, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if msg := strings.TrimSpace(result.Stderr); msg != "" {
			return result, fmt.Errorf("%s exited with code %d: %s", name, result.ExitCode, msg)
		}
		return result, fmt.Errorf("%s exited with code %d", name, result.ExitCode)
	}
	return result, err
}

var _ ports.CommandRunner = (*LocalExecutor)(nil)
