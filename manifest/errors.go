package manifest

import (
	"fmt"
	"strings"
)

// ParseError means a document could not be read or was not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means a document parsed but does not match its schema. It
// carries every field-level violation found in that document.
type SchemaError struct {
	Path       string
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema check failed for %s: %s", e.Path, strings.Join(e.Violations, "; "))
}

// ConsistencyError means a localization entry does not cover every declared
// action name.
type ConsistencyError struct {
	Language string
	Missing  []string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("localization %q is missing actions: %s", e.Language, strings.Join(e.Missing, ", "))
}

// BindingError means a referenced binding file failed validation. It wraps
// the parse or schema failure of the binding document itself.
type BindingError struct {
	ControllerType string
	Path           string
	Err            error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("default binding for %q (%s): %v", e.ControllerType, e.Path, e.Err)
}

func (e *BindingError) Unwrap() error { return e.Err }
