package logic

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/keyconv/internal/config"
	"github.com/idelchi/keyconv/internal/keyfmt"
	"github.com/idelchi/keyconv/internal/keys"
)

// inspection is the outcome of inspecting a single file.
type inspection struct {
	path        string
	format      keyfmt.Format
	description string
	size        int64
	err         error
}

// RunInspect reports the detected format and key type for each
// configured file. Files are inspected concurrently; the command fails
// if any file could not be inspected.
func RunInspect(cfg *config.Config) error {
	results := make(chan inspection, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	done := make(chan struct{})

	var errored int

	go func() {
		defer close(done)

		for res := range results {
			if res.err != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error inspecting %q: %v\n", res.path, res.err)

				continue
			}

			if !cfg.Quiet {
				fmt.Printf("%s: %s, %s, %s\n", //nolint:forbidigo
					res.path, res.format, res.description, humanize.Bytes(uint64(res.size))) //nolint:gosec
			}
		}
	}()

	for _, file := range cfg.Files {
		group.Go(func() error {
			res := inspectFile(file)

			results <- res

			return res.err
		})
	}

	err := group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return fmt.Errorf("%d file(s) could not be inspected", errored)
	}

	return nil
}

// inspectFile reads, detects, and describes a single key file.
func inspectFile(path string) inspection {
	res := inspection{path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.err = fmt.Errorf("stat %q: %w", path, err)

		return res
	}

	res.size = info.Size()

	data, err := os.ReadFile(path)
	if err != nil {
		res.err = fmt.Errorf("reading %q: %w", path, err)

		return res
	}

	res.format, err = keyfmt.Detect(data)
	if err != nil {
		res.err = err

		return res
	}

	res.description, res.err = keys.Describe(path, data, res.format)

	return res
}
