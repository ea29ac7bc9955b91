// Package manifest defines the action manifest and controller binding
// document model and validates instances of both against it.
//
// An action manifest declares the actions and action sets an application
// exposes to the VR input runtime, plus per-language display names and a
// list of default controller bindings. Binding files are separate documents,
// one per controller type, referenced from the manifest by relative path.
package manifest

import "encoding/json"

// ActionManifest is the root document handed to the input runtime.
type ActionManifest struct {
	DefaultBindings []DefaultBinding `json:"default_bindings"`
	Actions         []Action         `json:"actions"`
	ActionSets      []ActionSet      `json:"action_sets"`
	Localization    []Localization   `json:"localization"`
}

// Action declares a single named input or output capability.
type Action struct {
	Name        string      `json:"name"`
	Requirement Requirement `json:"requirement,omitempty"`
	Type        ActionType  `json:"type"`
	Skeleton    string      `json:"skeleton,omitempty"`
}

// ActionSet declares a named group of actions that is activated and
// deactivated as a unit.
type ActionSet struct {
	Name  string `json:"name"`
	Usage Usage  `json:"usage"`
}

// DefaultBinding points at a binding file for one controller type. The URL
// is a path relative to the directory containing the manifest.
type DefaultBinding struct {
	ControllerType string `json:"controller_type"`
	BindingURL     string `json:"binding_url"`
}

// LanguageTagKey is the one fixed key of a Localization entry; every other
// key is an action name mapped to its localized display string.
const LanguageTagKey = "language_tag"

// Localization maps action names to display strings for one language.
type Localization map[string]string

// Language returns the entry's language tag, or "" if it has none.
func (l Localization) Language() string {
	return l[LanguageTagKey]
}

// MissingActions returns the names in actions that have no display string
// in this entry, in declaration order.
func (l Localization) MissingActions(actions []Action) []string {
	var missing []string
	for _, a := range actions {
		if _, ok := l[a.Name]; !ok {
			missing = append(missing, a.Name)
		}
	}
	return missing
}

// BindingFile is a per-controller-type document mapping action sets to
// physical input sources.
type BindingFile struct {
	Bindings       map[string]ActionBinding `json:"bindings"`
	ControllerType string                   `json:"controller_type"`
	Description    string                   `json:"description"`
	Name           string                   `json:"name"`
}

// ActionBinding holds the bindings of one action set. Chords carry no
// schema in the binding format and are kept as raw JSON.
type ActionBinding struct {
	Sources  []Source            `json:"sources,omitempty"`
	Chords   []json.RawMessage   `json:"chords,omitempty"`
	Haptics  []OutputPathMapping `json:"haptics,omitempty"`
	Poses    []OutputPathMapping `json:"poses,omitempty"`
	Skeleton []OutputPathMapping `json:"skeleton,omitempty"`
}

// Source binds a physical input (trigger, trackpad, ...) to action outputs.
type Source struct {
	Inputs     map[string]SourceInput `json:"inputs"`
	Mode       string                 `json:"mode"`
	Path       string                 `json:"path"`
	Parameters map[string]string      `json:"parameters,omitempty"`
}

// SourceInput names the action an input component feeds.
type SourceInput struct {
	Output string `json:"output"`
}

// OutputPathMapping routes an output action to a device path.
type OutputPathMapping struct {
	Output string `json:"output"`
	Path   string `json:"path"`
}
