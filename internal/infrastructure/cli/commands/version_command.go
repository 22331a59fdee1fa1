package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/vmhealth/internal/version"
)

// NewVersionCommand prints the build summary of the binary.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show vmhealth version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			return err
		},
	}
}
