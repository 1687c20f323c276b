// Package logic implements the core business logic for the conversion pipeline:
// detect the input format once, load (decrypting when required), convert to the
// complementary format, and write the result atomically.
package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/keyconv/internal/config"
	"github.com/idelchi/keyconv/internal/fileutil"
	"github.com/idelchi/keyconv/internal/keyfmt"
	"github.com/idelchi/keyconv/internal/keys"
)

const ownerReadWrite = 0o600

// Run converts the configured input file to the complementary format.
func Run(cfg *config.Config) error {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading %q: %w", cfg.Input, err)
	}

	// The format is derived exactly once and threaded explicitly from
	// here on.
	format, err := keyfmt.Detect(data)
	if err != nil {
		return fmt.Errorf("detecting format of %q: %w", cfg.Input, err)
	}

	target := format.Complement()
	outPath := OutputPath(cfg.Input, cfg.Output, target)

	key, err := keys.Load(cfg.Input, data, format, keys.Passphrase(cfg.Passphrase))
	if err != nil {
		return err
	}

	converted, err := keys.Convert(key, target)
	if err != nil {
		return fmt.Errorf("converting %q: %w", cfg.Input, err)
	}

	if err := fileutil.WriteAtomic(outPath, converted, ownerReadWrite); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}

	if !cfg.Quiet {
		fmt.Printf("Converted %q to %q.\n", cfg.Input, outPath) //nolint:forbidigo
	}

	return nil
}

// OutputPath resolves the output file path. An explicit output wins;
// otherwise the input path's extension is swapped for the target
// format's canonical one.
func OutputPath(input, output string, target keyfmt.Format) string {
	if output != "" {
		return output
	}

	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + target.Ext()
}
