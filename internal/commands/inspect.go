package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/keyconv/internal/config"
	"github.com/idelchi/keyconv/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
func NewInspectCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect [flags] files...",
		Aliases: []string{"ins"},
		Short:   "Report the detected format and key type of key files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunInspect(cfg)
		},
	}
}
