package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openvr-tools/actiongen/internal/cmd"
	"github.com/openvr-tools/actiongen/internal/codegen/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateEndToEnd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "generated.go")
	g := &cmd.Generate{
		Manifest: filepath.Join("testdata", "actions.json"),
		Prelude:  filepath.Join("testdata", "prelude.go.txt"),
		Output:   output,
	}
	require.NoError(t, g.Run(discardLogger()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, len(text) > 0)
	assert.Contains(t, text, "// Code generated by actiongen. DO NOT EDIT.")
	assert.NotContains(t, text, generator.StubMarker)

	// One accessor per input action, handle field only for the output one.
	assert.Contains(t, text, "func (in *Input) actions_main_in_Jump() (BooleanInput, error)")
	assert.Contains(t, text, "func (in *Input) actions_main_in_Move() (Vector2Input, error)")
	assert.Contains(t, text, "func (in *Input) actions_main_in_Head(origin TrackingUniverseOrigin) (PoseInput, error)")
	assert.Contains(t, text, "func (in *Input) actions_main_in_LeftHand() (SkeletonInput, error)")
	assert.NotContains(t, text, "func (in *Input) actions_main_out_Haptic(")
	assert.Contains(t, text, "action_handle_actions_main_out_Haptic ActionHandle")

	assert.Contains(t, text, "func (in *Input) activate_actions_main()")
	assert.Contains(t, text, "func (in *Input) deactivate_actions_main()")

	// Whitespace normalization leaves no blank or indented lines.
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		assert.Equal(t, strings.TrimSpace(line), line)
		assert.NotEmpty(t, line)
	}
}

func TestGenerateWritesNothingOnValidationFailure(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "actions.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte("{not json"), 0o644))

	output := filepath.Join(dir, "generated.go")
	g := &cmd.Generate{
		Manifest: manifestPath,
		Prelude:  filepath.Join("testdata", "prelude.go.txt"),
		Output:   output,
	}
	require.Error(t, g.Run(discardLogger()))

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "output must not be touched when validation fails")
}

func TestGenerateWritesNothingOnCodegenFailure(t *testing.T) {
	dir := t.TempDir()
	preludePath := filepath.Join(dir, "prelude.go.txt")
	require.NoError(t, os.WriteFile(preludePath, []byte("package vrinput\n"), 0o644))

	output := filepath.Join(dir, "generated.go")
	g := &cmd.Generate{
		Manifest: filepath.Join("testdata", "actions.json"),
		Prelude:  preludePath,
		Output:   output,
	}
	err := g.Run(discardLogger())
	var cerr *generator.CodegenError
	require.ErrorAs(t, err, &cerr)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestValidateEndToEnd(t *testing.T) {
	v := &cmd.Validate{Manifest: filepath.Join("testdata", "actions.json")}
	assert.NoError(t, v.Run(discardLogger()))
}

func TestValidateBindingEndToEnd(t *testing.T) {
	v := &cmd.ValidateBinding{Binding: filepath.Join("testdata", "bindings_knuckles.json")}
	assert.NoError(t, v.Run(discardLogger()))
}
