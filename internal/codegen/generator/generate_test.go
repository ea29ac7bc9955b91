package generator_test

import (
	"strings"
	"testing"

	"github.com/openvr-tools/actiongen/internal/codegen/generator"
	"github.com/openvr-tools/actiongen/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrelude = `package vrinput

// prelude helper surface

// STUB_FOLLOWS

func (in *Input) generateFields() error { panic("stub") }
`

func testManifest() *manifest.ActionManifest {
	return &manifest.ActionManifest{
		Actions: []manifest.Action{
			{Name: "/actions/main/in/Jump", Type: manifest.TypeBoolean},
			{Name: "/actions/main/in/Trigger", Type: manifest.TypeVector1},
			{Name: "/actions/main/in/Move", Type: manifest.TypeVector2},
			{Name: "/actions/main/in/Wand", Type: manifest.TypeVector3},
			{Name: "/actions/main/in/Head", Type: manifest.TypePose},
			{Name: "/actions/main/in/LeftHand", Type: manifest.TypeSkeleton},
			{Name: "/actions/main/out/Haptic", Type: manifest.TypeVibration},
		},
		ActionSets: []manifest.ActionSet{
			{Name: "/actions/main", Usage: manifest.UsageSingle},
		},
	}
}

const wantUnit = `// Code generated by actiongen. DO NOT EDIT.
package vrinput
// prelude helper surface
func (in *Input) generateFields() error {
var err error
if in.generated.action_handle_actions_main_in_Jump, err = in.getActionHandle("/actions/main/in/Jump"); err != nil {
return err
}
if in.generated.action_handle_actions_main_in_Trigger, err = in.getActionHandle("/actions/main/in/Trigger"); err != nil {
return err
}
if in.generated.action_handle_actions_main_in_Move, err = in.getActionHandle("/actions/main/in/Move"); err != nil {
return err
}
if in.generated.action_handle_actions_main_in_Wand, err = in.getActionHandle("/actions/main/in/Wand"); err != nil {
return err
}
if in.generated.action_handle_actions_main_in_Head, err = in.getActionHandle("/actions/main/in/Head"); err != nil {
return err
}
if in.generated.action_handle_actions_main_in_LeftHand, err = in.getActionHandle("/actions/main/in/LeftHand"); err != nil {
return err
}
if in.generated.action_handle_actions_main_out_Haptic, err = in.getActionHandle("/actions/main/out/Haptic"); err != nil {
return err
}
if in.generated.action_set_handle_actions_main, err = in.getActionSetHandle("/actions/main"); err != nil {
return err
}
return nil
}
func (in *Input) actions_main_in_Jump() (BooleanInput, error) {
return in.getDigitalActionData(in.generated.action_handle_actions_main_in_Jump)
}
func (in *Input) actions_main_in_Trigger() (Vector1Input, error) {
return in.getVector1ActionData(in.generated.action_handle_actions_main_in_Trigger)
}
func (in *Input) actions_main_in_Move() (Vector2Input, error) {
return in.getVector2ActionData(in.generated.action_handle_actions_main_in_Move)
}
func (in *Input) actions_main_in_Wand() (Vector3Input, error) {
return in.getVector3ActionData(in.generated.action_handle_actions_main_in_Wand)
}
func (in *Input) actions_main_in_Head(origin TrackingUniverseOrigin) (PoseInput, error) {
return in.getPoseActionData(origin, in.generated.action_handle_actions_main_in_Head)
}
func (in *Input) actions_main_in_LeftHand() (SkeletonInput, error) {
return SkeletonInput{}, errors.New("not implemented: skeleton action /actions/main/in/LeftHand")
}
func (in *Input) activate_actions_main() {
in.activateActionSet(in.generated.action_set_handle_actions_main)
}
func (in *Input) deactivate_actions_main() {
in.deactivateActionSet(in.generated.action_set_handle_actions_main)
}
type generatedFields struct {
action_handle_actions_main_in_Jump ActionHandle
action_handle_actions_main_in_Trigger ActionHandle
action_handle_actions_main_in_Move ActionHandle
action_handle_actions_main_in_Wand ActionHandle
action_handle_actions_main_in_Head ActionHandle
action_handle_actions_main_in_LeftHand ActionHandle
action_handle_actions_main_out_Haptic ActionHandle
action_set_handle_actions_main ActionSetHandle
}
`

func TestGenerateFullUnit(t *testing.T) {
	out, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)
	assert.Equal(t, wantUnit, out)
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)
	second, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateStripsStubRegion(t *testing.T) {
	out, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)
	assert.NotContains(t, out, "panic(\"stub\")")
	assert.NotContains(t, out, generator.StubMarker)
}

func TestGenerateVibrationHasNoAccessor(t *testing.T) {
	out, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)

	// The handle field exists, the accessor method does not.
	assert.Contains(t, out, "action_handle_actions_main_out_Haptic ActionHandle")
	assert.NotContains(t, out, "func (in *Input) actions_main_out_Haptic(")
}

func TestGenerateActionSetControls(t *testing.T) {
	out, err := generator.Generate(testManifest(), testPrelude)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "func (in *Input) activate_actions_main()"))
	assert.Equal(t, 1, strings.Count(out, "func (in *Input) deactivate_actions_main()"))
}

func TestGenerateUnknownTypeFails(t *testing.T) {
	m := &manifest.ActionManifest{
		Actions: []manifest.Action{
			{Name: "/actions/main/in/Twist", Type: manifest.ActionType("quaternion")},
		},
	}

	out, err := generator.Generate(m, testPrelude)
	assert.Empty(t, out)
	var cerr *generator.CodegenError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "quaternion")
}

func TestGenerateCanonicalCollisionFails(t *testing.T) {
	m := &manifest.ActionManifest{
		Actions: []manifest.Action{
			{Name: "/foo", Type: manifest.TypeBoolean},
			{Name: "foo", Type: manifest.TypeBoolean},
		},
	}

	out, err := generator.Generate(m, testPrelude)
	assert.Empty(t, out)
	var cerr *generator.CodegenError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "canonicalize")
}

func TestGenerateMissingMarkerFails(t *testing.T) {
	_, err := generator.Generate(testManifest(), "package vrinput\n")
	var cerr *generator.CodegenError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "marker")
}
