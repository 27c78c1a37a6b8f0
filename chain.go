package xrt

import "github.com/google/uuid"

// ChainedOutput is an optional output structure appended to a query. The
// runtime consults StructureType to decide whether it recognizes the element;
// unrecognized elements are left untouched.
type ChainedOutput interface {
	StructureType() StructureType
}

// SystemEyeGazeInteractionProperties reports eye gaze input support.
type SystemEyeGazeInteractionProperties struct {
	Type                       StructureType
	SupportsEyeGazeInteraction bool
}

// StructureType implements ChainedOutput.
func (p *SystemEyeGazeInteractionProperties) StructureType() StructureType {
	if p == nil {
		return TypeUnknown
	}
	return p.Type
}

// SystemHeadsetIDProperties reports the headset identifier.
type SystemHeadsetIDProperties struct {
	Type StructureType
	ID   uuid.UUID
}

// StructureType implements ChainedOutput.
func (p *SystemHeadsetIDProperties) StructureType() StructureType {
	if p == nil {
		return TypeUnknown
	}
	return p.Type
}

// UnknownOutput is a chain element of a kind this runtime does not fill.
// Applications built against newer headers may pass these.
type UnknownOutput struct {
	Type StructureType
}

// StructureType implements ChainedOutput.
func (p *UnknownOutput) StructureType() StructureType {
	if p == nil {
		return TypeUnknown
	}
	return p.Type
}

// findOutput returns the first element of next tagged with kind whose
// concrete type is T. Elements tagged with kind but of another concrete type
// are skipped rather than reinterpreted.
func findOutput[T ChainedOutput](next []ChainedOutput, kind StructureType) (T, bool) {
	var zero T
	for _, out := range next {
		if out == nil || out.StructureType() != kind {
			continue
		}
		if typed, ok := out.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
