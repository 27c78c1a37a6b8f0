package xrt

import (
	"context"
	"fmt"
	"math"

	"github.com/zoobzio/capitan"
)

// Fov is a field of view in radians. Left and down are negative.
type Fov struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// String formats the field of view for trace output.
func (f Fov) String() string {
	return fmt.Sprintf("(l:%.3f, r:%.3f, u:%.3f, d:%.3f)", f.AngleLeft, f.AngleRight, f.AngleUp, f.AngleDown)
}

// fovFromTangents converts half-angle tangents to signed angles.
func fovFromTangents(p FovPort) Fov {
	return Fov{
		AngleDown:  float32(-math.Atan(float64(p.DownTan))),
		AngleUp:    float32(math.Atan(float64(p.UpTan))),
		AngleLeft:  float32(-math.Atan(float64(p.LeftTan))),
		AngleRight: float32(math.Atan(float64(p.RightTan))),
	}
}

// DeviceState is the cached description of the current headset.
type DeviceState struct {
	Identity    DeviceIdentity
	EyeInfo     [EyeCount]EyeRenderDesc
	EyeFov      [EyeCount]Fov
	EyeTracking EyeTrackingMode
	EyeHeight   float32

	DisplayRefreshRate     float32
	IdealFrameDuration     float64
	PredictedFrameDuration float64
}

// cacheDevice reads the headset identity from session and returns the device
// state to cache. Derived state is recomputed only when the serial number
// differs from cached; otherwise cached is returned as is. The tracking
// origin is reset on every call.
func (r *Runtime) cacheDevice(ctx context.Context, session Session, cached DeviceState) (DeviceState, error) {
	identity := session.Identity()
	capitan.Emit(ctx, DeviceQueried,
		KeyVendorID.Field(int(identity.VendorID)),
		KeyProductID.Field(int(identity.ProductID)),
		KeyManufacturer.Field(identity.Manufacturer),
		KeyProductName.Field(identity.ProductName),
		KeySerialNumber.Field(identity.SerialNumber),
		KeyFirmware.Field(fmt.Sprintf("%d.%d", identity.FirmwareMajor, identity.FirmwareMinor)),
		KeyResolution.Field(fmt.Sprintf("%dx%d", identity.Resolution.Width, identity.Resolution.Height)),
		KeyRefreshRate.Field(identity.DisplayRefreshRate),
	)

	state := cached
	if identity.SerialNumber != cached.Identity.SerialNumber {
		state = r.deriveDevice(ctx, session, identity, cached.DisplayRefreshRate)
	}

	if res := session.SetTrackingOriginType(TrackingOriginEyeLevel); res.Failed() {
		return DeviceState{}, &BackendError{Op: "SetTrackingOriginType", Code: res}
	}
	return state, nil
}

func (r *Runtime) deriveDevice(ctx context.Context, session Session, identity DeviceIdentity, previousRate float32) DeviceState {
	Logger().Info("device changed", "product", identity.ProductName, "serial", identity.SerialNumber)
	capitan.Emit(ctx, DeviceChanged,
		KeyProductName.Field(identity.ProductName),
		KeySerialNumber.Field(identity.SerialNumber),
	)

	state := DeviceState{
		Identity:    identity,
		EyeTracking: r.resolveEyeTracking(ctx),
	}

	state.DisplayRefreshRate = refreshRate(identity, previousRate)
	state.IdealFrameDuration = 1.0 / float64(state.DisplayRefreshRate)
	state.PredictedFrameDuration = state.IdealFrameDuration

	for eye := EyeLeft; eye < EyeCount; eye++ {
		state.EyeInfo[eye] = session.RenderDesc(eye, identity.DefaultEyeFov[eye])
		state.EyeFov[eye] = fovFromTangents(state.EyeInfo[eye].Fov)
		capitan.Emit(ctx, EyeRenderInfoCached,
			KeyEye.Field(eye.String()),
			KeyEyePose.Field(state.EyeInfo[eye].HmdToEyePose.String()),
			KeyFov.Field(state.EyeFov[eye].String()),
		)
	}

	state.EyeHeight = session.Float(PropertyEyeHeight, DefaultEyeHeight)
	capitan.Emit(ctx, EyeHeightCached, KeyEyeHeight.Field(state.EyeHeight))

	return state
}

// refreshRate returns the reported display rate, or the previous rate (then
// DefaultRefreshRate) when the backend reports none.
func refreshRate(identity DeviceIdentity, previous float32) float32 {
	if identity.DisplayRefreshRate > 0 {
		return identity.DisplayRefreshRate
	}
	rate := previous
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	Logger().Warn("backend reported no refresh rate",
		"product", identity.ProductName,
		"reported", identity.DisplayRefreshRate,
		"using", rate,
	)
	return rate
}
