// Package config holds the runtime configuration for the keyconv tool.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries all flag and positional-argument values for a run.
type Config struct {
	// Common flags
	Quiet    bool
	Parallel int `validate:"min=1"`

	// convert flags
	Input      string
	Output     string
	Passphrase string

	// Positional arguments (inspect)
	Files []string
}

// Display reports whether the configuration should be printed and the
// program exited; keyconv defines no show flag, so it always returns false.
func (c Config) Display() bool {
	return false
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate(_ any) error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
