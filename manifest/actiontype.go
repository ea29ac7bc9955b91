package manifest

// ActionType is the closed set of action type tags the input runtime knows.
// Code generation dispatches exhaustively over it; a value outside this set
// never survives validation.
type ActionType string

const (
	TypeBoolean   ActionType = "boolean"
	TypeVibration ActionType = "vibration"
	TypeVector1   ActionType = "vector1"
	TypeVector2   ActionType = "vector2"
	TypeVector3   ActionType = "vector3"
	TypePose      ActionType = "pose"
	TypeSkeleton  ActionType = "skeleton"
)

// ActionTypes lists every valid ActionType in a fixed order.
var ActionTypes = []ActionType{
	TypeBoolean,
	TypeVibration,
	TypeVector1,
	TypeVector2,
	TypeVector3,
	TypePose,
	TypeSkeleton,
}

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	for _, known := range ActionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsInput reports whether actions of this type are read by the application.
// Vibration is the only output type; it is driven, never read.
func (t ActionType) IsInput() bool {
	return t != TypeVibration
}

// Requirement marks how strongly a binding for the action is expected.
type Requirement string

const (
	RequirementMandatory Requirement = "mandatory"
	RequirementOptional  Requirement = "optional"
	RequirementSuggested Requirement = "suggested"
)

// Valid reports whether r is a known requirement level. The empty string is
// valid because the field is optional in the manifest.
func (r Requirement) Valid() bool {
	switch r {
	case "", RequirementMandatory, RequirementOptional, RequirementSuggested:
		return true
	}
	return false
}

// Usage marks whether an action set is mirrored per hand or shared.
type Usage string

const (
	UsageLeftRight Usage = "leftright"
	UsageSingle    Usage = "single"
)

// Valid reports whether u is a known action set usage.
func (u Usage) Valid() bool {
	return u == UsageLeftRight || u == UsageSingle
}
