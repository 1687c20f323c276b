package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/keyconv/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "keyconv [flags] command [flags]"
	root.Short = "Key format conversion utility"
	root.Long = `A utility that detects a key file's encoding (JWK, PEM, or encrypted PEM),
decrypts it if necessary, and converts it to the complementary format.`

	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers for inspect, defaults to number of CPUs")

	root.AddCommand(NewConvertCommand(cfg), NewInspectCommand(cfg))

	return root
}
