package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/vmhealth/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vmhealth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := NewFileLoader("").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
source: Native
cpu_interval: 250ms
commands:
  df: /bin/df
`)

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceNative, cfg.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.CPUInterval)
	assert.Equal(t, domain.DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, "/", cfg.DiskPath)
	assert.Equal(t, domain.Commands{Top: "top", Free: "free", DF: "/bin/df"}, cfg.Commands)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	path := writeConfig(t, "source: snmp\n")

	_, err := NewFileLoader(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "source: [command\n")

	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*domain.Config) {}},
		{name: "negative interval", mutate: func(c *domain.Config) { c.CPUInterval = -time.Second }, wantErr: true},
		{name: "interval longer than timeout", mutate: func(c *domain.Config) {
			c.CPUInterval = 5 * time.Second
			c.CommandTimeout = 2 * time.Second
		}, wantErr: true},
		{name: "empty source", mutate: func(c *domain.Config) { c.Source = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNegativeDurations(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CommandTimeout = -time.Second
	assert.ErrorContains(t, Validate(cfg), "command_timeout must not be negative")

	cfg = domain.DefaultConfig()
	cfg.CPUInterval = -time.Second
	assert.ErrorContains(t, Validate(cfg), "cpu_interval must not be negative")
}
