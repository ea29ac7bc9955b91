package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/openvr-tools/actiongen/internal/codegen/generator"
	"github.com/openvr-tools/actiongen/manifest"
)

// Generate compiles an action manifest and a prelude source file into the
// generated typed input surface.
type Generate struct {
	Manifest string `arg:"" help:"Path to the action manifest JSON" type:"path"`
	Prelude  string `arg:"" help:"Path to the prelude source file" type:"path"`
	Output   string `arg:"" help:"Path the generated unit is written to" type:"path"`

	AllowMissingLocalization bool `help:"Treat incomplete localization coverage as a warning instead of an error" env:"ACTIONGEN_ALLOW_MISSING_LOCALIZATION"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Generating input bindings", "manifest", g.Manifest, "output", g.Output)

	opts := manifest.Options{AllowMissingLocalization: g.AllowMissingLocalization}
	m, err := manifest.ValidateManifest(g.Manifest, opts, logger)
	if err != nil {
		return err
	}

	prelude, err := os.ReadFile(g.Prelude)
	if err != nil {
		return fmt.Errorf("read prelude: %w", err)
	}

	// The whole unit is produced in memory first, so a failure anywhere
	// above leaves the output file untouched.
	out, err := generator.Generate(m, string(prelude))
	if err != nil {
		return err
	}

	if err := os.WriteFile(g.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.Output, err)
	}

	logger.Info("Generated input bindings", "file", g.Output, "bytes", len(out))
	return nil
}
