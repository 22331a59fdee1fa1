package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/vmhealth/internal/app"
	"github.com/doeshing/vmhealth/internal/domain"
	"github.com/doeshing/vmhealth/internal/infrastructure/cli/commands"
)

// explainArg is the positional form of --explain kept for existing scripts.
const explainArg = "explain"

// Builder constructs the container once flags are parsed.
type Builder func(context.Context, app.Options) (*app.Container, error)

// Options holds CLI-level configuration.
type Options struct {
	// Build defaults to app.BuildContainer.
	Build Builder
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	build := opts.Build
	if build == nil {
		build = app.BuildContainer
	}

	var (
		appOpts app.Options
		explain bool
	)

	root := &cobra.Command{
		Use:   "vmhealth [explain]",
		Short: "Report whether this machine is healthy",
		Long: "vmhealth samples CPU, memory and root filesystem utilization once and reports\n" +
			"the machine as not healthy when any of them is above 60%.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == explainArg {
				explain = true
			}
			return runCheck(cmd, build, appOpts, explain)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&appOpts.ConfigPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&appOpts.Source, "source", "", "Sampling source: command or native (default from config)")
	flags.DurationVar(&appOpts.CPUInterval, "cpu-interval", 0, "Delay between the two CPU readings (default from config)")
	flags.BoolVarP(&appOpts.Verbose, "verbose", "v", false, "Log sampling details to stderr")

	root.Flags().BoolVarP(&explain, "explain", "e", false, "Explain the status and print each measured value")
	root.Flags().StringVar(&appOpts.Textfile, "textfile", "", "Also write the samples as Prometheus metrics to this file")

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewConfigCommand(func(ctx context.Context) (domain.Config, error) {
		return app.LoadConfig(ctx, appOpts)
	}))
	return root
}

func runCheck(cmd *cobra.Command, build Builder, opts app.Options, explain bool) error {
	ctx := cmd.Context()
	container, err := build(ctx, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := container.HealthService.Run(ctx)
	if report.Status != "" {
		RenderReport(cmd.OutOrStdout(), report, explain)
	}
	if container.Logger != nil {
		container.Logger.Debug("check finished", map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return err
}
