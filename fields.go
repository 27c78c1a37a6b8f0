package xrt

import "github.com/zoobzio/capitan"

// Field keys for runtime state events.
var (
	// KeyState is the current state.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyResult is the result code returned to the application.
	KeyResult = capitan.NewStringKey("result")

	// KeyDuration is how long an operation took.
	KeyDuration = capitan.NewDurationKey("duration")
)

// Field keys for instance events.
var (
	KeyApplication = capitan.NewStringKey("application")
	KeyEngine      = capitan.NewStringKey("engine")
	KeyAPIVersion  = capitan.NewStringKey("api_version")
	KeyExtension   = capitan.NewStringKey("extension")
)

// Field keys for bring-up events.
var (
	// KeyBackend is the selected backend kind.
	KeyBackend = capitan.NewStringKey("backend")

	// KeyStage is the bring-up stage an event refers to.
	KeyStage = capitan.NewStringKey("stage")

	// KeyVersion is the backend version string.
	KeyVersion = capitan.NewStringKey("version")

	// KeyLibraryPath is the backend library override path.
	KeyLibraryPath = capitan.NewStringKey("library_path")

	// KeyFormFactor is the requested form factor.
	KeyFormFactor = capitan.NewStringKey("form_factor")

	// KeySystemID is the acquired system handle.
	KeySystemID = capitan.NewIntKey("system_id")

	// KeyOffset is the measured clock offset in seconds.
	KeyOffset = capitan.NewFloat64Key("offset")

	// KeyFrequency is the host counter frequency.
	KeyFrequency = capitan.NewIntKey("frequency")

	// KeyRounds is the number of calibration rounds.
	KeyRounds = capitan.NewIntKey("rounds")
)

// Field keys for device events.
var (
	KeyVendorID     = capitan.NewIntKey("vendor_id")
	KeyProductID    = capitan.NewIntKey("product_id")
	KeyManufacturer = capitan.NewStringKey("manufacturer")
	KeyProductName  = capitan.NewStringKey("product_name")
	KeySerialNumber = capitan.NewStringKey("serial_number")
	KeyFirmware     = capitan.NewStringKey("firmware")
	KeyResolution   = capitan.NewStringKey("resolution")
	KeyRefreshRate  = capitan.NewFloat32Key("refresh_rate")
	KeyEye          = capitan.NewStringKey("eye")
	KeyEyePose      = capitan.NewStringKey("eye_pose")
	KeyFov          = capitan.NewStringKey("fov")
	KeyEyeHeight    = capitan.NewFloat32Key("eye_height")
	KeyEyeTracking  = capitan.NewStringKey("eye_tracking")
)

// Field keys for query events.
var (
	KeySystemName = capitan.NewStringKey("system_name")
	KeyViewConfig = capitan.NewStringKey("view_configuration")
	KeyCount      = capitan.NewIntKey("count")
	KeyCapacity   = capitan.NewIntKey("capacity")
)

// Field keys for settings events.
var (
	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyWatcherType is the type name of the watcher implementation.
	KeyWatcherType = capitan.NewStringKey("watcher_type")
)
