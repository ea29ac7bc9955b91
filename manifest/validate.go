package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Options controls validation strictness.
type Options struct {
	// AllowMissingLocalization downgrades incomplete localization coverage
	// from a fatal ConsistencyError to a warning.
	AllowMissingLocalization bool
}

// ValidateManifest reads, parses and validates the manifest at path,
// including every binding file it references. Validation stops at the first
// failing step; diagnostics for the failure are written to logger and the
// returned error carries the failure kind.
func ValidateManifest(path string, opts Options, logger *slog.Logger) (*ActionManifest, error) {
	var m ActionManifest
	if err := parseChecked(path, checkManifest, &m, logger); err != nil {
		return nil, err
	}

	for _, loc := range m.Localization {
		missing := loc.MissingActions(m.Actions)
		if len(missing) == 0 {
			continue
		}
		for _, name := range missing {
			logger.Warn("localization entry has no display name for action",
				"language", loc.Language(), "action", name)
		}
		if !opts.AllowMissingLocalization {
			return nil, &ConsistencyError{Language: loc.Language(), Missing: missing}
		}
	}

	bindings := make([]*BindingFile, 0, len(m.DefaultBindings))
	for _, db := range m.DefaultBindings {
		resolved := filepath.Join(filepath.Dir(path), db.BindingURL)
		logger.Debug("Validating default binding", "controller", db.ControllerType, "file", resolved)
		bf, err := ValidateBindingFile(resolved, logger)
		if err != nil {
			return nil, &BindingError{ControllerType: db.ControllerType, Path: resolved, Err: err}
		}
		bindings = append(bindings, bf)
	}
	if err := checkDefaultBindingCoverage(&m, bindings); err != nil {
		return nil, err
	}

	logger.Info("Manifest is valid",
		"actions", len(m.Actions), "action_sets", len(m.ActionSets), "bindings", len(m.DefaultBindings))
	return &m, nil
}

// ValidateBindingFile reads, parses and validates a single binding file.
// It is used both for the bindings referenced by a manifest and standalone.
func ValidateBindingFile(path string, logger *slog.Logger) (*BindingFile, error) {
	var bf BindingFile
	if err := parseChecked(path, checkBindingFile, &bf, logger); err != nil {
		return nil, err
	}
	return &bf, nil
}

// parseChecked reads a JSON document, runs the schema checker over its
// generic form and, if clean, decodes it into the typed model.
func parseChecked(path string, check func(any) []string, out any, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read document", "file", path, "error", err)
		return &ParseError{Path: path, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Error("Document is not valid JSON", "file", path, "error", err)
		return &ParseError{Path: path, Err: err}
	}

	if violations := check(doc); len(violations) > 0 {
		for _, violation := range violations {
			logger.Error("Schema violation", "file", path, "violation", violation)
		}
		return &SchemaError{Path: path, Violations: violations}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Path: path, Err: fmt.Errorf("decode typed model: %w", err)}
	}
	return nil
}

// checkDefaultBindingCoverage would verify that every declared action is
// bound by at least one binding file. The runtime's own binding UI owns
// per-controller coverage, so the check stays disabled.
func checkDefaultBindingCoverage(*ActionManifest, []*BindingFile) error {
	return nil
}
