package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/vmhealth/internal/domain"
)

// ConfigLoader returns the effective configuration, flags applied.
type ConfigLoader func(context.Context) (domain.Config, error)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(load ConfigLoader) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}

	configCmd.AddCommand(
		newConfigValidateCommand(load),
		newConfigDiffCommand(load),
	)

	return configCmd
}

// newConfigValidateCommand creates the 'config validate' subcommand
func newConfigValidateCommand(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := load(cmd.Context()); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
			return nil
		},
	}
}

// newConfigDiffCommand creates the 'config diff' subcommand
func newConfigDiffCommand(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show diff versus default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigurationDiff(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}
}

// showConfiguration prints the effective configuration as YAML
func showConfiguration(ctx context.Context, out io.Writer, load ConfigLoader) error {
	cfg, err := load(ctx)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(raw)
	return err
}

// showConfigurationDiff prints what differs from the built-in defaults
func showConfigurationDiff(ctx context.Context, out io.Writer, load ConfigLoader) error {
	cfg, err := load(ctx)
	if err != nil {
		return err
	}
	diff := cmp.Diff(domain.DefaultConfig(), cfg)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}
	fmt.Fprintln(out, "--- default")
	fmt.Fprintln(out, "+++ current")
	fmt.Fprint(out, diff)
	return nil
}
