package xrt

import "github.com/zoobzio/capitan"

// Instance lifecycle signals.
var (
	// InstanceCreated is emitted when an application creates the instance.
	InstanceCreated = capitan.NewSignal(
		"xrt.instance.created",
		"Instance created",
	)

	// InstanceDestroyed is emitted when the instance is destroyed.
	InstanceDestroyed = capitan.NewSignal(
		"xrt.instance.destroyed",
		"Instance destroyed",
	)

	// ExtensionRequested is emitted for each extension enabled at instance creation.
	ExtensionRequested = capitan.NewSignal(
		"xrt.instance.extension.requested",
		"Extension requested",
	)
)

// Bring-up signals.
var (
	// BackendSelected is emitted once the bring-up picks a backend.
	BackendSelected = capitan.NewSignal(
		"xrt.backend.selected",
		"Backend selected",
	)

	// BackendInitialized is emitted when a backend loads successfully.
	BackendInitialized = capitan.NewSignal(
		"xrt.backend.initialized",
		"Backend initialized",
	)

	// BackendShutdown is emitted when a loaded backend is released.
	BackendShutdown = capitan.NewSignal(
		"xrt.backend.shutdown",
		"Backend shut down",
	)

	// SessionCreated is emitted when a backend session opens.
	SessionCreated = capitan.NewSignal(
		"xrt.session.created",
		"Backend session created",
	)

	// SessionDestroyed is emitted when a backend session is released.
	SessionDestroyed = capitan.NewSignal(
		"xrt.session.destroyed",
		"Backend session destroyed",
	)

	// ClockCalibrated is emitted after the backend clock offset is measured.
	ClockCalibrated = capitan.NewSignal(
		"xrt.clock.calibrated",
		"Clock calibrated",
	)

	// SystemAcquired is emitted when a system becomes available.
	SystemAcquired = capitan.NewSignal(
		"xrt.system.acquired",
		"System acquired",
	)

	// SystemUnavailable is emitted when bring-up ends in a retryable failure.
	SystemUnavailable = capitan.NewSignal(
		"xrt.system.unavailable",
		"System unavailable",
	)

	// BringUpFailed is emitted when bring-up ends in a fatal failure.
	BringUpFailed = capitan.NewSignal(
		"xrt.bringup.failed",
		"Bring-up failed",
	)

	// StateChanged is emitted when the runtime transitions between states.
	StateChanged = capitan.NewSignal(
		"xrt.state.changed",
		"Runtime state transition",
	)
)

// Device signals.
var (
	// DeviceQueried is emitted with the identity reported on every bring-up.
	DeviceQueried = capitan.NewSignal(
		"xrt.device.queried",
		"Device identity queried",
	)

	// DeviceChanged is emitted when a new serial number is observed.
	DeviceChanged = capitan.NewSignal(
		"xrt.device.changed",
		"Device changed",
	)

	// EyeRenderInfoCached is emitted per eye when render parameters are cached.
	EyeRenderInfoCached = capitan.NewSignal(
		"xrt.device.eye.cached",
		"Eye render info cached",
	)

	// EyeHeightCached is emitted when the eye height is cached.
	EyeHeightCached = capitan.NewSignal(
		"xrt.device.eye_height.cached",
		"Eye height cached",
	)

	// EyeTrackingResolved is emitted when the eye tracking source is chosen.
	EyeTrackingResolved = capitan.NewSignal(
		"xrt.device.eye_tracking.resolved",
		"Eye tracking mode resolved",
	)
)

// Query signals.
var (
	// SystemPropertiesQueried is emitted when system properties are reported.
	SystemPropertiesQueried = capitan.NewSignal(
		"xrt.system.properties.queried",
		"System properties queried",
	)

	// BlendModesEnumerated is emitted when blend modes are enumerated.
	BlendModesEnumerated = capitan.NewSignal(
		"xrt.system.blend_modes.enumerated",
		"Environment blend modes enumerated",
	)
)

// Settings store signals.
var (
	// SettingsStarted is emitted when a SettingsStore begins watching.
	SettingsStarted = capitan.NewSignal(
		"xrt.settings.started",
		"Settings watching started",
	)

	// SettingsStopped is emitted when a SettingsStore stops watching.
	SettingsStopped = capitan.NewSignal(
		"xrt.settings.stopped",
		"Settings watching stopped",
	)

	// SettingsStateChanged is emitted when a SettingsStore transitions between states.
	SettingsStateChanged = capitan.NewSignal(
		"xrt.settings.state.changed",
		"Settings state transition",
	)

	// SettingsChangeReceived is emitted when raw data is received from the watcher.
	SettingsChangeReceived = capitan.NewSignal(
		"xrt.settings.change.received",
		"Raw settings received from watcher",
	)

	// SettingsDecodeFailed is emitted when a settings document cannot be decoded.
	SettingsDecodeFailed = capitan.NewSignal(
		"xrt.settings.decode.failed",
		"Settings decode failed",
	)

	// SettingsValidationFailed is emitted when a settings document is rejected.
	SettingsValidationFailed = capitan.NewSignal(
		"xrt.settings.validation.failed",
		"Settings validation failed",
	)

	// SettingsApplyFailed is emitted when the change callback rejects a document.
	SettingsApplyFailed = capitan.NewSignal(
		"xrt.settings.apply.failed",
		"Settings change callback failed",
	)

	// SettingsApplied is emitted when a settings document becomes current.
	SettingsApplied = capitan.NewSignal(
		"xrt.settings.applied",
		"Settings applied",
	)
)
