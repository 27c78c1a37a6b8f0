package xrt

// SettingsProvider looks up integer runtime settings by key.
type SettingsProvider interface {
	Setting(key string) (int, bool)
}

// ServiceProbe reports whether a named service process is running.
type ServiceProbe interface {
	IsServiceRunning(name string) bool
}

// ServiceProbeFunc adapts a function to ServiceProbe.
type ServiceProbeFunc func(name string) bool

// IsServiceRunning implements ServiceProbe.
func (f ServiceProbeFunc) IsServiceRunning(name string) bool { return f(name) }

// RegistryRoot selects a registry hive.
type RegistryRoot int

const (
	RegistryLocalMachine RegistryRoot = iota
	RegistryCurrentUser
)

// String returns the conventional hive abbreviation.
func (r RegistryRoot) String() string {
	switch r {
	case RegistryLocalMachine:
		return "HKLM"
	case RegistryCurrentUser:
		return "HKCU"
	default:
		return "unknown"
	}
}

// RegistryReader reads string values from a registry-style store.
type RegistryReader interface {
	ReadString(root RegistryRoot, subkey, value string) (string, bool)
}

// EyeTrackingSource opens the eye tracking data shared by the primary
// service.
type EyeTrackingSource interface {
	Open() error
}

// EyeTrackingSourceFunc adapts a function to EyeTrackingSource.
type EyeTrackingSourceFunc func() error

// Open implements EyeTrackingSource.
func (f EyeTrackingSourceFunc) Open() error { return f() }

// Dependencies are the collaborators a Runtime delegates to. Nil
// collaborators behave as absent: no settings, no running services, no
// registry values, no eye tracking data.
type Dependencies struct {
	Primary     Backend
	Fallback    Backend
	Settings    SettingsProvider
	Services    ServiceProbe
	Registry    RegistryReader
	EyeTracking EyeTrackingSource
}

// ServiceConfig names the primary service's footprint on the host.
type ServiceConfig struct {
	// ProcessName is probed to decide between the primary and fallback
	// backends.
	ProcessName string

	// InstallKey and InstallValue locate the service's install directory.
	InstallRoot  RegistryRoot
	InstallKey   string
	InstallValue string

	// LibraryPrefix is joined to the install directory to form the backend
	// library override path.
	LibraryPrefix string

	// SessionTag is set on sessions of TaggedBackend so that backend's service
	// can tell this runtime's sessions apart from other clients.
	SessionTag    string
	TaggedBackend BackendKind
}

// DefaultServiceConfig returns the footprint of the Virtual Desktop streamer.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		ProcessName:   "VirtualDesktop.Server.exe",
		InstallRoot:   RegistryLocalMachine,
		InstallKey:    `SOFTWARE\Virtual Desktop, Inc.\Virtual Desktop Streamer`,
		InstallValue:  "Path",
		LibraryPrefix: "VirtualDesktop.",
		SessionTag:    "IsVDXR",
		TaggedBackend: BackendFallback,
	}
}

// Setting keys.
const (
	// SettingAllowFallbackRuntime gates the fallback backend when the
	// primary backend's service is not running. Zero disallows it; any
	// other value, or an absent setting, allows it.
	SettingAllowFallbackRuntime = "allow_oculus_runtime"
	// SettingSimulateEyeTracking enables simulated eye tracking when
	// nonzero. An absent setting leaves it off.
	SettingSimulateEyeTracking = "simulate_eye_tracking"
)

func settingBool(p SettingsProvider, key string, def bool) bool {
	if p == nil {
		return def
	}
	v, ok := p.Setting(key)
	if !ok {
		return def
	}
	return v != 0
}
