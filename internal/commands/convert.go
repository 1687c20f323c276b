package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/keyconv/internal/config"
	"github.com/idelchi/keyconv/internal/logic"
)

// NewConvertCommand creates a new cobra command for the convert subcommand.
func NewConvertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [flags]",
		Aliases: []string{"conv"},
		Short:   "Convert a key between JWK and PEM",
		Long: `Convert a key file to the complementary format: JWK input produces PEM
output, PEM input (encrypted or not) produces JWK output. The output
path defaults to the input path with its extension swapped.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("input", "i", "", "Path to the key file to convert")
	cmd.Flags().StringP("output", "o", "", "Path for the converted key, defaults to the input path with the extension swapped")
	cmd.Flags().StringP("passphrase", "p", "", "Passphrase for encrypted keys, prompted for when omitted")

	cmd.MarkFlagRequired("input") //nolint:errcheck // flag is registered above

	return cmd
}
