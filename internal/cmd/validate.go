package cmd

import (
	"fmt"
	"log/slog"

	"github.com/openvr-tools/actiongen/manifest"
)

// Validate checks an action manifest and every binding file it references
// without generating anything.
type Validate struct {
	Manifest string `arg:"" help:"Path to the action manifest JSON" type:"path"`

	AllowMissingLocalization bool `help:"Treat incomplete localization coverage as a warning instead of an error" env:"ACTIONGEN_ALLOW_MISSING_LOCALIZATION"`
}

// Run is called by Kong when the validate command is executed.
func (v *Validate) Run(logger *slog.Logger) error {
	opts := manifest.Options{AllowMissingLocalization: v.AllowMissingLocalization}
	if _, err := manifest.ValidateManifest(v.Manifest, opts, logger); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", v.Manifest)
	return nil
}

// ValidateBinding checks a single controller binding file standalone,
// outside the context of any manifest.
type ValidateBinding struct {
	Binding string `arg:"" help:"Path to the controller binding JSON" type:"path"`
}

// Run is called by Kong when the validate-binding command is executed.
func (v *ValidateBinding) Run(logger *slog.Logger) error {
	if _, err := manifest.ValidateBindingFile(v.Binding, logger); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", v.Binding)
	return nil
}
