package xrt

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// Graphics limits reported for every system.
const (
	// MaxBackendLayerCount is the backend compositor's layer limit.
	MaxBackendLayerCount = 16

	// MaxSwapchainImageSize is the static swapchain dimension ceiling.
	MaxSwapchainImageSize = 16384

	// MaxSystemNameSize is the size of the system name buffer, including
	// the terminator.
	MaxSystemNameSize = 256
)

// headsetID is reported for XR_META_headset_id. It is a fixed value, not
// derived from the attached hardware.
var headsetID = uuid.UUID{82, 80, 120, 165, 90, 171, 77, 201, 184, 2, 30, 189, 108, 124, 255, 244}

// GetSystemProperties fills props from the cached device state. Recognized
// structures in props.Next are populated when their extension is enabled;
// unrecognized ones are left untouched.
func (r *Runtime) GetSystemProperties(ctx context.Context, instance Instance, system SystemID, props *SystemProperties) error {
	if props == nil {
		return ErrorValidationFailure
	}
	if err := checkType(props.Type, TypeSystemProperties); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInstance(instance); err != nil {
		return err
	}
	if err := r.checkSystem(system); err != nil {
		return err
	}

	eyeGaze, hasEyeGaze := findOutput[*SystemEyeGazeInteractionProperties](props.Next, TypeSystemEyeGazeInteractionPropertiesEXT)
	headset, hasHeadset := findOutput[*SystemHeadsetIDProperties](props.Next, TypeSystemHeadsetIDPropertiesMETA)

	props.VendorID = r.device.Identity.VendorID
	props.SystemName = truncate(r.device.Identity.ProductName, MaxSystemNameSize-1)
	props.SystemID = system
	props.TrackingProperties = SystemTrackingProperties{
		OrientationTracking: true,
		PositionTracking:    true,
	}
	props.GraphicsProperties = SystemGraphicsProperties{
		MaxSwapchainImageHeight: MaxSwapchainImageSize,
		MaxSwapchainImageWidth:  MaxSwapchainImageSize,
		MaxLayerCount:           MaxBackendLayerCount,
	}

	if hasEyeGaze && r.extensionEnabled(ExtensionEyeGazeInteraction) {
		eyeGaze.SupportsEyeGazeInteraction = r.device.EyeTracking != EyeTrackingNone
	}
	if hasHeadset && r.extensionEnabled(ExtensionHeadsetID) {
		headset.ID = headsetID
	}

	capitan.Emit(ctx, SystemPropertiesQueried,
		KeySystemID.Field(int(system)),
		KeyVendorID.Field(int(props.VendorID)),
		KeySystemName.Field(props.SystemName),
	)
	return nil
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
