// Package main is the entry point for the keyconv tool.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/keyconv/internal/commands"
	"github.com/idelchi/keyconv/internal/config"
)

// version is set at build time through -ldflags.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		os.Exit(1)
	}
}
