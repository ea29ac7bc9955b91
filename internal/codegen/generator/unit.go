package generator

import "strings"

// unit is the structured form of the generated block: every handle field and
// every method, in emission order. Serialization is a single pass over it,
// so identical manifests always produce identical text.
type unit struct {
	fields  []handleField
	methods []method
}

// handleField is one stored native handle: a field of the generatedFields
// struct plus the lookup that fills it during generateFields.
type handleField struct {
	name   string // generated field identifier
	typ    string // ActionHandle or ActionSetHandle
	lookup string // prelude helper that fetches the handle
	path   string // full manifest name passed to the lookup
}

// method is one generated method on the Input surface.
type method struct {
	name    string
	params  string
	results string
	body    []string
}

func (u *unit) serialize() string {
	var b strings.Builder

	b.WriteString("func (in *Input) generateFields() error {\n")
	if len(u.fields) > 0 {
		b.WriteString("var err error\n")
	}
	for _, f := range u.fields {
		b.WriteString("if in.generated." + f.name + ", err = in." + f.lookup + "(\"" + f.path + "\"); err != nil {\n")
		b.WriteString("return err\n")
		b.WriteString("}\n")
	}
	b.WriteString("return nil\n")
	b.WriteString("}\n")

	for _, m := range u.methods {
		sig := "func (in *Input) " + m.name + "(" + m.params + ")"
		if m.results != "" {
			sig += " " + m.results
		}
		b.WriteString(sig + " {\n")
		for _, line := range m.body {
			b.WriteString(line + "\n")
		}
		b.WriteString("}\n")
	}

	b.WriteString("type generatedFields struct {\n")
	for _, f := range u.fields {
		b.WriteString(f.name + " " + f.typ + "\n")
	}
	b.WriteString("}\n")

	return b.String()
}

// normalize applies the output formatting contract: trim every line, drop
// lines that become empty, rejoin with newlines. Indentation is not
// reconstructed; readable output comes from running gofmt downstream.
func normalize(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}
