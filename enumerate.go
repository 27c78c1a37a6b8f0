package xrt

import (
	"context"

	"github.com/zoobzio/capitan"
)

// enumerate implements the two-call pattern over items.
//
// A zero capacity asks for the count only and out is ignored. A capacity
// below the count fails with ErrorSizeInsufficient and reports the count. A
// nil out with sufficient capacity reports the count without writing. A
// non-nil out shorter than the count it must receive is a validation
// failure. check, when set, validates every destination element before any
// is written, so a rejected call leaves out untouched.
func enumerate[S, D any](items []S, capacity uint32, out []D, check func(*D) error, fill func(S, *D)) (uint32, error) {
	count := uint32(len(items))
	if capacity == 0 {
		return count, nil
	}
	if capacity < count {
		return count, ErrorSizeInsufficient
	}
	if out == nil {
		return count, nil
	}
	if uint32(len(out)) < count {
		return 0, ErrorValidationFailure
	}

	if check != nil {
		for i := range items {
			if err := check(&out[i]); err != nil {
				return 0, err
			}
		}
	}
	for i, item := range items {
		fill(item, &out[i])
	}
	return count, nil
}

// supportedBlendModes is the fixed list reported for the stereo view
// configuration. Only immersive rendering is supported.
var supportedBlendModes = []EnvironmentBlendMode{BlendModeOpaque}

// EnumerateEnvironmentBlendModes lists the blend modes supported for the
// given view configuration using the two-call pattern.
func (r *Runtime) EnumerateEnvironmentBlendModes(
	ctx context.Context,
	instance Instance,
	system SystemID,
	viewConfig ViewConfigurationType,
	capacity uint32,
	out []EnvironmentBlendMode,
) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInstance(instance); err != nil {
		return 0, err
	}
	if err := r.checkSystem(system); err != nil {
		return 0, err
	}
	if viewConfig != ViewConfigurationPrimaryStereo {
		return 0, ErrorViewConfigurationTypeUnsupported
	}

	count, err := enumerate(supportedBlendModes, capacity, out, nil,
		func(mode EnvironmentBlendMode, dst *EnvironmentBlendMode) { *dst = mode })
	if err != nil {
		return count, err
	}

	capitan.Emit(ctx, BlendModesEnumerated,
		KeyViewConfig.Field(viewConfig.String()),
		KeyCapacity.Field(int(capacity)),
		KeyCount.Field(int(count)),
	)
	return count, nil
}
