package xrt

import "fmt"

// BackendKind selects which vendor backend serves the runtime.
type BackendKind int

const (
	// BackendPrimary is the primary service's backend, loaded from the
	// library path the service installs.
	BackendPrimary BackendKind = iota

	// BackendFallback is the fallback service's backend, resolved by the
	// backend SDK's default search.
	BackendFallback
)

// String returns the string representation of the backend kind.
func (k BackendKind) String() string {
	switch k {
	case BackendPrimary:
		return "primary"
	case BackendFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// BackendResult is a status code reported by the backend SDK.
type BackendResult int32

// Backend status codes the bring-up sequence distinguishes.
const (
	BackendSuccess                  BackendResult = 0
	BackendErrorInitialize          BackendResult = -3000
	BackendErrorLibLoad             BackendResult = -3001
	BackendErrorServiceConnection   BackendResult = -3003
	BackendErrorRemoteSession       BackendResult = -3018
	BackendErrorInvalidSession      BackendResult = -1002
	BackendErrorInvalidParameter    BackendResult = -1005
	BackendErrorNoHmd               BackendResult = -6000
	BackendErrorDisplayLost         BackendResult = -6001
	BackendErrorTrackingOriginFault BackendResult = -6002
)

// Failed reports whether r is a failure code.
func (r BackendResult) Failed() bool {
	return r < 0
}

// InitFlags are passed to Backend.Initialize.
type InitFlags uint32

const (
	// InitRequestVersion asks the backend to honor RequestedMinorVersion.
	InitRequestVersion InitFlags = 0x00000004

	// InitFocusAware opts in to input focus notifications.
	InitFocusAware InitFlags = 0x00000020
)

// BackendMinorVersion is the backend SDK minor version this runtime targets.
const BackendMinorVersion = 83

// InitParams configures Backend.Initialize.
type InitParams struct {
	Flags                 InitFlags
	RequestedMinorVersion uint32

	// OverrideLibraryPath is the path prefix of the backend library to load.
	// Empty selects the SDK's default resolution.
	OverrideLibraryPath string
}

// Backend is the device-access SDK. The primary and fallback services each
// provide one; the runtime picks between them at bring-up.
type Backend interface {
	// Initialize loads and starts the SDK.
	Initialize(params InitParams) BackendResult

	// Shutdown releases everything Initialize acquired.
	Shutdown()

	// VersionString describes the loaded SDK.
	VersionString() string

	// Create opens a device session.
	Create() (Session, BackendResult)
}

// Session is a live device connection.
type Session interface {
	// Destroy closes the session.
	Destroy()

	// TimeInSeconds reads the backend clock.
	TimeInSeconds() float64

	// Identity describes the attached headset.
	Identity() DeviceIdentity

	// RenderDesc returns per-eye render parameters for the given field of view.
	RenderDesc(eye Eye, fov FovPort) EyeRenderDesc

	// SetBool writes a boolean session property.
	SetBool(key string, value bool) BackendResult

	// Float reads a float session property, returning def when unset.
	Float(key string, def float32) float32

	// SetTrackingOriginType selects the origin of tracked poses.
	SetTrackingOriginType(origin TrackingOrigin) BackendResult
}

// TrackingOrigin is the reference point of tracked poses.
type TrackingOrigin int

const (
	TrackingOriginEyeLevel   TrackingOrigin = 0
	TrackingOriginFloorLevel TrackingOrigin = 1
)

// Session properties.
const (
	PropertyEyeHeight = "EyeHeight"
	DefaultEyeHeight  = float32(1.675)
)

// DefaultRefreshRate is used when a device reports no display refresh rate.
const DefaultRefreshRate = float32(90)

// Eye indexes per-eye data.
type Eye int

const (
	EyeLeft Eye = iota
	EyeRight
	EyeCount
)

// String returns the string representation of the eye.
func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "Left"
	case EyeRight:
		return "Right"
	default:
		return fmt.Sprintf("Eye(%d)", int(e))
	}
}

// Vector3 is a position in meters.
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is an orientation.
type Quaternion struct {
	X, Y, Z, W float32
}

// Pose is an orientation plus position.
type Pose struct {
	Orientation Quaternion
	Position    Vector3
}

// String formats the pose for trace output.
func (p Pose) String() string {
	return fmt.Sprintf("p: (%.3f, %.3f, %.3f), o:(%.3f, %.3f, %.3f, %.3f)",
		p.Position.X, p.Position.Y, p.Position.Z,
		p.Orientation.X, p.Orientation.Y, p.Orientation.Z, p.Orientation.W)
}

// FovPort is a field of view expressed as tangents of the half angles.
type FovPort struct {
	UpTan    float32
	DownTan  float32
	LeftTan  float32
	RightTan float32
}

// Sizei is a size in pixels.
type Sizei struct {
	Width, Height int
}

// DeviceIdentity is the backend's description of the attached headset.
// Two identities name the same device when their serial numbers match.
type DeviceIdentity struct {
	VendorID           uint32
	ProductID          uint32
	Manufacturer       string
	ProductName        string
	SerialNumber       string
	FirmwareMajor      int
	FirmwareMinor      int
	Resolution         Sizei
	DisplayRefreshRate float32
	DefaultEyeFov      [EyeCount]FovPort
}

// EyeRenderDesc is the backend's per-eye render description.
type EyeRenderDesc struct {
	Eye          Eye
	Fov          FovPort
	HmdToEyePose Pose
}
