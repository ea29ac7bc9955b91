// Package generator turns a validated action manifest and a prelude source
// file into one generated Go source unit: a handle lookup for every action
// and action set, typed accessor methods for input actions, and an
// activate/deactivate pair per action set, all methods of the prelude's
// Input type backed by a trailing generatedFields struct.
package generator

import (
	"fmt"
	"strings"

	"github.com/openvr-tools/actiongen/internal/codegen/common"
	"github.com/openvr-tools/actiongen/manifest"
)

// StubMarker separates the prelude's real implementation from the stub
// declarations that only exist to keep the package compiling before
// generation. Everything from the marker through end of file is discarded.
const StubMarker = "// STUB_FOLLOWS"

const generatedHeader = "// Code generated by actiongen. DO NOT EDIT."

// CodegenError means the manifest cannot be turned into source code even
// though it validated structurally.
type CodegenError struct {
	Reason string
}

func (e *CodegenError) Error() string { return "codegen: " + e.Reason }

// Generate compiles a validated manifest against the prelude and returns the
// complete generated unit. It is deterministic: identical inputs yield
// byte-identical output. On error no partial output is returned.
func Generate(m *manifest.ActionManifest, prelude string) (string, error) {
	body, err := cutPrelude(prelude)
	if err != nil {
		return "", err
	}

	u, err := buildUnit(m)
	if err != nil {
		return "", err
	}

	return normalize(generatedHeader + "\n" + body + "\n" + u.serialize()), nil
}

// cutPrelude strips the stub region: the marker and everything after it.
func cutPrelude(prelude string) (string, error) {
	idx := strings.Index(prelude, StubMarker)
	if idx < 0 {
		return "", &CodegenError{Reason: fmt.Sprintf("prelude has no %q marker", StubMarker)}
	}
	return prelude[:idx], nil
}

func buildUnit(m *manifest.ActionManifest) (*unit, error) {
	if err := checkCanonicalCollisions(m); err != nil {
		return nil, err
	}

	var u unit
	for _, action := range m.Actions {
		canon := common.Canonicalize(action.Name)
		u.fields = append(u.fields, handleField{
			name:   "action_handle_" + canon,
			typ:    "ActionHandle",
			lookup: "getActionHandle",
			path:   action.Name,
		})

		accessor, err := accessorFor(action, canon)
		if err != nil {
			return nil, err
		}
		if accessor != nil {
			u.methods = append(u.methods, *accessor)
		}
	}

	for _, set := range m.ActionSets {
		canon := common.Canonicalize(set.Name)
		field := "action_set_handle_" + canon
		u.fields = append(u.fields, handleField{
			name:   field,
			typ:    "ActionSetHandle",
			lookup: "getActionSetHandle",
			path:   set.Name,
		})
		u.methods = append(u.methods,
			method{
				name: "activate_" + canon,
				body: []string{"in.activateActionSet(in.generated." + field + ")"},
			},
			method{
				name: "deactivate_" + canon,
				body: []string{"in.deactivateActionSet(in.generated." + field + ")"},
			},
		)
	}

	return &u, nil
}

// accessorFor returns the typed accessor for an action, or nil for output
// actions, which get a handle field but are driven rather than read.
func accessorFor(action manifest.Action, canon string) (*method, error) {
	handle := "in.generated.action_handle_" + canon

	switch action.Type {
	case manifest.TypeBoolean:
		return &method{
			name:    canon,
			results: "(BooleanInput, error)",
			body:    []string{"return in.getDigitalActionData(" + handle + ")"},
		}, nil
	case manifest.TypeVector1:
		return &method{
			name:    canon,
			results: "(Vector1Input, error)",
			body:    []string{"return in.getVector1ActionData(" + handle + ")"},
		}, nil
	case manifest.TypeVector2:
		return &method{
			name:    canon,
			results: "(Vector2Input, error)",
			body:    []string{"return in.getVector2ActionData(" + handle + ")"},
		}, nil
	case manifest.TypeVector3:
		return &method{
			name:    canon,
			results: "(Vector3Input, error)",
			body:    []string{"return in.getVector3ActionData(" + handle + ")"},
		}, nil
	case manifest.TypePose:
		return &method{
			name:    canon,
			params:  "origin TrackingUniverseOrigin",
			results: "(PoseInput, error)",
			body:    []string{"return in.getPoseActionData(origin, " + handle + ")"},
		}, nil
	case manifest.TypeSkeleton:
		// Skeletal input has no runtime support yet; the accessor exists so
		// callers get an explicit failure instead of a silent zero value.
		return &method{
			name:    canon,
			results: "(SkeletonInput, error)",
			body:    []string{fmt.Sprintf("return SkeletonInput{}, errors.New(\"not implemented: skeleton action %s\")", action.Name)},
		}, nil
	case manifest.TypeVibration:
		return nil, nil
	default:
		return nil, &CodegenError{Reason: fmt.Sprintf("action %q has unknown type %q", action.Name, action.Type)}
	}
}

// checkCanonicalCollisions rejects manifests where two distinct names map to
// the same generated identifier, which would silently emit one declaration
// on top of the other.
func checkCanonicalCollisions(m *manifest.ActionManifest) error {
	actions := map[string]string{}
	for _, action := range m.Actions {
		canon := common.Canonicalize(action.Name)
		if prev, ok := actions[canon]; ok && prev != action.Name {
			return &CodegenError{Reason: fmt.Sprintf("actions %q and %q both canonicalize to %q", prev, action.Name, canon)}
		}
		actions[canon] = action.Name
	}

	sets := map[string]string{}
	for _, set := range m.ActionSets {
		canon := common.Canonicalize(set.Name)
		if prev, ok := sets[canon]; ok && prev != set.Name {
			return &CodegenError{Reason: fmt.Sprintf("action sets %q and %q both canonicalize to %q", prev, set.Name, canon)}
		}
		sets[canon] = set.Name
	}
	return nil
}
