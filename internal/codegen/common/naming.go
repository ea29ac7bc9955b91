package common

import "strings"

// Canonicalize maps a slash-delimited manifest name to a generated source
// identifier: every "/" becomes "_", then at most one leading "_" is
// stripped. "/actions/main/in/Jump" becomes "actions_main_in_Jump".
//
// Declaration sites and reference sites must both go through this function
// so one manifest name always yields one identifier in the generated unit.
func Canonicalize(name string) string {
	id := strings.ReplaceAll(name, "/", "_")
	return strings.TrimPrefix(id, "_")
}
