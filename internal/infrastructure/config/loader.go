package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/pkg/filesystem"
	"github.com/doeshing/vmhealth/internal/ports"
)

// FileLoader loads YAML configuration from an explicit path. Without a path
// it returns the built-in defaults and touches no file.
type FileLoader struct {
	path string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	if l.path == "" {
		return domain.DefaultConfig(), nil
	}

	path := filesystem.ExpandPath(l.path)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg = hydrateDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the samplers cannot honour.
func Validate(cfg domain.Config) error {
	switch cfg.Source {
	case domain.SourceCommand, domain.SourceNative:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source)
	}
	if cfg.CPUInterval < 0 {
		return fmt.Errorf("cpu_interval must not be negative, got %s", cfg.CPUInterval)
	}
	if cfg.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative, got %s", cfg.CommandTimeout)
	}
	if cfg.CommandTimeout > 0 && cfg.CPUInterval >= cfg.CommandTimeout {
		return fmt.Errorf("cpu_interval %s must be shorter than command_timeout %s", cfg.CPUInterval, cfg.CommandTimeout)
	}
	return nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := domain.DefaultConfig()
	if cfg.Source == "" {
		cfg.Source = def.Source
	}
	cfg.Source = domain.SourceKind(strings.ToLower(string(cfg.Source)))
	if cfg.CPUInterval == 0 {
		cfg.CPUInterval = def.CPUInterval
	}
	if cfg.CommandTimeout == 0 {
		cfg.CommandTimeout = def.CommandTimeout
	}
	if cfg.DiskPath == "" {
		cfg.DiskPath = def.DiskPath
	}
	if cfg.Commands.Top == "" {
		cfg.Commands.Top = def.Commands.Top
	}
	if cfg.Commands.Free == "" {
		cfg.Commands.Free = def.Commands.Free
	}
	if cfg.Commands.DF == "" {
		cfg.Commands.DF = def.Commands.DF
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
