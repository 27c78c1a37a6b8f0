package xrt

import (
	"context"

	"github.com/zoobzio/capitan"
)

// EyeTrackingMode is the source of eye gaze data.
type EyeTrackingMode int

const (
	// EyeTrackingNone means no eye gaze data is available.
	EyeTrackingNone EyeTrackingMode = iota

	// EyeTrackingSharedMemory reads gaze data the primary service publishes
	// in shared memory.
	EyeTrackingSharedMemory

	// EyeTrackingSimulated synthesizes gaze data.
	EyeTrackingSimulated
)

// String returns the string representation of the mode.
func (m EyeTrackingMode) String() string {
	switch m {
	case EyeTrackingNone:
		return "none"
	case EyeTrackingSharedMemory:
		return "shared_memory"
	case EyeTrackingSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// resolveEyeTracking picks the eye tracking source. Simulation wins when
// configured; otherwise the shared memory source is used if it opens.
func (r *Runtime) resolveEyeTracking(ctx context.Context) EyeTrackingMode {
	mode := EyeTrackingNone
	switch {
	case settingBool(r.deps.Settings, SettingSimulateEyeTracking, false):
		mode = EyeTrackingSimulated
	case r.deps.EyeTracking != nil:
		if err := r.deps.EyeTracking.Open(); err != nil {
			Logger().Debug("eye tracking source unavailable", "error", err)
		} else {
			mode = EyeTrackingSharedMemory
		}
	}
	capitan.Emit(ctx, EyeTrackingResolved, KeyEyeTracking.Field(mode.String()))
	return mode
}
