package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/vmhealth/internal/application/health"
	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/infrastructure/config"
	"github.com/doeshing/vmhealth/internal/infrastructure/executor"
	"github.com/doeshing/vmhealth/internal/infrastructure/metrics"
	"github.com/doeshing/vmhealth/internal/infrastructure/sampler"
	"github.com/doeshing/vmhealth/internal/pkg/logger"
	"github.com/doeshing/vmhealth/internal/ports"
)

// Options carries the command line settings that shape the container.
// Zero values leave the configuration file (or the defaults) in charge.
type Options struct {
	ConfigPath  string
	Source      string
	CPUInterval time.Duration
	Textfile    string
	Verbose     bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	Logger        ports.Logger
	HealthService *health.Service
}

// LoadConfig reads the configuration and applies flag overrides.
func LoadConfig(ctx context.Context, opts Options) (domain.Config, error) {
	cfg, err := config.NewFileLoader(opts.ConfigPath).Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if opts.Source != "" {
		cfg.Source = domain.SourceKind(strings.ToLower(opts.Source))
	}
	if opts.CPUInterval != 0 {
		cfg.CPUInterval = opts.CPUInterval
	}
	if err := config.Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	log := logger.NewStderr(opts.Verbose)
	svc := &health.Service{Logger: log}

	switch cfg.Source {
	case domain.SourceNative:
		native := sampler.NewNativeSource(cfg.CPUInterval, cfg.DiskPath)
		svc.CPU, svc.Memory, svc.Disk = native, native, native
	case domain.SourceCommand:
		runner := executor.NewLocalExecutor(cfg.CommandTimeout)
		svc.CPU = sampler.NewTopSource(runner, cfg.Commands.Top, cfg.CPUInterval)
		svc.Memory = sampler.NewFreeSource(runner, cfg.Commands.Free)
		svc.Disk = sampler.NewDFSource(runner, cfg.Commands.DF, cfg.DiskPath)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source)
	}

	if opts.Textfile != "" {
		svc.Exporter = metrics.NewTextfileExporter(opts.Textfile)
	}

	log.Debug("container built", map[string]interface{}{
		"source":       string(cfg.Source),
		"cpu_interval": cfg.CPUInterval.String(),
		"disk_path":    cfg.DiskPath,
	})

	return &Container{
		Config:        cfg,
		Logger:        log,
		HealthService: svc,
	}, nil
}
