package manifest

import "fmt"

// The schema checkers walk a generically decoded JSON document and collect
// every field-level violation instead of stopping at the first, so a
// SchemaError can report the whole document at once. They accept exactly the
// shapes the typed model can hold; unknown extra keys are ignored.

type violations []string

func (v *violations) addf(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func checkManifest(doc any) []string {
	var v violations

	root, ok := doc.(map[string]any)
	if !ok {
		v.addf("document: expected a JSON object")
		return v
	}

	for _, entry := range objectArray(&v, root, "default_bindings", true) {
		requireString(&v, entry.obj, entry.path, "controller_type")
		requireString(&v, entry.obj, entry.path, "binding_url")
	}

	seenActions := map[string]bool{}
	for _, entry := range objectArray(&v, root, "actions", true) {
		if name, ok := requireString(&v, entry.obj, entry.path, "name"); ok {
			if seenActions[name] {
				v.addf("%s.name: duplicate action name %q", entry.path, name)
			}
			seenActions[name] = true
		}
		if typ, ok := requireString(&v, entry.obj, entry.path, "type"); ok {
			if !ActionType(typ).Valid() {
				v.addf("%s.type: unknown action type %q", entry.path, typ)
			}
		}
		if req, ok := optionalString(&v, entry.obj, entry.path, "requirement"); ok {
			if !Requirement(req).Valid() {
				v.addf("%s.requirement: unknown requirement %q", entry.path, req)
			}
		}
		optionalString(&v, entry.obj, entry.path, "skeleton")
	}

	seenSets := map[string]bool{}
	for _, entry := range objectArray(&v, root, "action_sets", true) {
		if name, ok := requireString(&v, entry.obj, entry.path, "name"); ok {
			if seenSets[name] {
				v.addf("%s.name: duplicate action set name %q", entry.path, name)
			}
			seenSets[name] = true
		}
		if usage, ok := requireString(&v, entry.obj, entry.path, "usage"); ok {
			if !Usage(usage).Valid() {
				v.addf("%s.usage: unknown usage %q", entry.path, usage)
			}
		}
	}

	for _, entry := range objectArray(&v, root, "localization", false) {
		if _, ok := entry.obj[LanguageTagKey]; !ok {
			v.addf("%s: missing %q", entry.path, LanguageTagKey)
		}
		for key, val := range entry.obj {
			if _, ok := val.(string); !ok {
				v.addf("%s.%s: expected a string", entry.path, key)
			}
		}
	}

	return v
}

func checkBindingFile(doc any) []string {
	var v violations

	root, ok := doc.(map[string]any)
	if !ok {
		v.addf("document: expected a JSON object")
		return v
	}

	requireString(&v, root, "", "controller_type")
	requireString(&v, root, "", "description")
	requireString(&v, root, "", "name")

	bindings, ok := root["bindings"]
	if !ok {
		v.addf("bindings: missing")
		return v
	}
	bySet, ok := bindings.(map[string]any)
	if !ok {
		v.addf("bindings: expected an object keyed by action set name")
		return v
	}
	for setName, raw := range bySet {
		path := fmt.Sprintf("bindings[%q]", setName)
		binding, ok := raw.(map[string]any)
		if !ok {
			v.addf("%s: expected an object", path)
			continue
		}
		checkActionBinding(&v, path, binding)
	}

	return v
}

func checkActionBinding(v *violations, path string, binding map[string]any) {
	for _, entry := range objectArrayIn(v, binding, path, "sources", false) {
		checkSource(v, entry.path, entry.obj)
	}

	// chords have no schema in the binding format; any JSON is accepted.

	for _, key := range []string{"haptics", "poses", "skeleton"} {
		for _, entry := range objectArrayIn(v, binding, path, key, false) {
			requireString(v, entry.obj, entry.path, "output")
			requireString(v, entry.obj, entry.path, "path")
		}
	}
}

func checkSource(v *violations, path string, source map[string]any) {
	requireString(v, source, path, "mode")
	requireString(v, source, path, "path")

	inputs, ok := source["inputs"]
	if !ok {
		v.addf("%s.inputs: missing", path)
		return
	}
	byInput, ok := inputs.(map[string]any)
	if !ok {
		v.addf("%s.inputs: expected an object keyed by input name", path)
		return
	}
	for inputName, raw := range byInput {
		inputPath := fmt.Sprintf("%s.inputs[%q]", path, inputName)
		input, ok := raw.(map[string]any)
		if !ok {
			v.addf("%s: expected an object", inputPath)
			continue
		}
		requireString(v, input, inputPath, "output")
	}

	if params, ok := source["parameters"]; ok {
		byName, ok := params.(map[string]any)
		if !ok {
			v.addf("%s.parameters: expected an object", path)
			return
		}
		for name, val := range byName {
			if _, ok := val.(string); !ok {
				v.addf("%s.parameters[%q]: expected a string", path, name)
			}
		}
	}
}

type arrayEntry struct {
	path string
	obj  map[string]any
}

// objectArray fetches root[key] as an array of objects, recording violations
// for a missing required key, a non-array value, or non-object elements.
func objectArray(v *violations, root map[string]any, key string, required bool) []arrayEntry {
	return objectArrayIn(v, root, "", key, required)
}

func objectArrayIn(v *violations, owner map[string]any, ownerPath, key string, required bool) []arrayEntry {
	full := joinPath(ownerPath, key)
	raw, ok := owner[key]
	if !ok {
		if required {
			v.addf("%s: missing", full)
		}
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		v.addf("%s: expected an array", full)
		return nil
	}
	entries := make([]arrayEntry, 0, len(arr))
	for i, elem := range arr {
		path := fmt.Sprintf("%s[%d]", full, i)
		obj, ok := elem.(map[string]any)
		if !ok {
			v.addf("%s: expected an object", path)
			continue
		}
		entries = append(entries, arrayEntry{path: path, obj: obj})
	}
	return entries
}

func requireString(v *violations, obj map[string]any, ownerPath, key string) (string, bool) {
	full := joinPath(ownerPath, key)
	raw, ok := obj[key]
	if !ok {
		v.addf("%s: missing", full)
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		v.addf("%s: expected a string", full)
		return "", false
	}
	return s, true
}

func optionalString(v *violations, obj map[string]any, ownerPath, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		v.addf("%s: expected a string", joinPath(ownerPath, key))
		return "", false
	}
	return s, true
}

func joinPath(owner, key string) string {
	if owner == "" {
		return key
	}
	return owner + "." + key
}
