package xrt

import "fmt"

// Instance is the handle to the runtime instance.
type Instance uint64

// SystemID identifies an acquired system.
type SystemID uint64

// Handle values. Only one instance and one system type exist, so both
// handles are fixed sentinels.
const (
	NullInstance Instance = 0
	NullSystemID SystemID = 0

	instanceHandle Instance = 1
	systemHandle   SystemID = 1
)

// StructureType tags every input and output structure.
type StructureType int32

// Structure types understood by this runtime.
const (
	TypeUnknown                               StructureType = 0
	TypeAPILayerProperties                    StructureType = 1
	TypeExtensionProperties                   StructureType = 2
	TypeInstanceCreateInfo                    StructureType = 3
	TypeSystemGetInfo                         StructureType = 4
	TypeSystemProperties                      StructureType = 5
	TypeInstanceProperties                    StructureType = 32
	TypeSystemEyeGazeInteractionPropertiesEXT StructureType = 1000030000
	TypeSystemHeadsetIDPropertiesMETA         StructureType = 1000245000
)

var structureTypeNames = map[StructureType]string{
	TypeUnknown:                               "XR_TYPE_UNKNOWN",
	TypeAPILayerProperties:                    "XR_TYPE_API_LAYER_PROPERTIES",
	TypeExtensionProperties:                   "XR_TYPE_EXTENSION_PROPERTIES",
	TypeInstanceCreateInfo:                    "XR_TYPE_INSTANCE_CREATE_INFO",
	TypeSystemGetInfo:                         "XR_TYPE_SYSTEM_GET_INFO",
	TypeSystemProperties:                      "XR_TYPE_SYSTEM_PROPERTIES",
	TypeInstanceProperties:                    "XR_TYPE_INSTANCE_PROPERTIES",
	TypeSystemEyeGazeInteractionPropertiesEXT: "XR_TYPE_SYSTEM_EYE_GAZE_INTERACTION_PROPERTIES_EXT",
	TypeSystemHeadsetIDPropertiesMETA:         "XR_TYPE_SYSTEM_HEADSET_ID_PROPERTIES_META",
}

// String returns the symbolic name of the structure type.
func (t StructureType) String() string {
	if name, ok := structureTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("XR_UNKNOWN_STRUCTURE_TYPE_%d", int32(t))
}

// FormFactor is the kind of device an application asks for.
type FormFactor int32

const (
	FormFactorHeadMountedDisplay FormFactor = 1
	FormFactorHandheldDisplay    FormFactor = 2
)

// String returns the symbolic name of the form factor.
func (f FormFactor) String() string {
	switch f {
	case FormFactorHeadMountedDisplay:
		return "XR_FORM_FACTOR_HEAD_MOUNTED_DISPLAY"
	case FormFactorHandheldDisplay:
		return "XR_FORM_FACTOR_HANDHELD_DISPLAY"
	default:
		return fmt.Sprintf("XR_FORM_FACTOR_UNKNOWN_%d", int32(f))
	}
}

// ViewConfigurationType selects a set of views.
type ViewConfigurationType int32

const (
	ViewConfigurationPrimaryMono   ViewConfigurationType = 1
	ViewConfigurationPrimaryStereo ViewConfigurationType = 2
)

// String returns the symbolic name of the view configuration.
func (v ViewConfigurationType) String() string {
	switch v {
	case ViewConfigurationPrimaryMono:
		return "XR_VIEW_CONFIGURATION_TYPE_PRIMARY_MONO"
	case ViewConfigurationPrimaryStereo:
		return "XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO"
	default:
		return fmt.Sprintf("XR_VIEW_CONFIGURATION_TYPE_UNKNOWN_%d", int32(v))
	}
}

// EnvironmentBlendMode describes how rendered content is combined with the
// real world.
type EnvironmentBlendMode int32

const (
	BlendModeOpaque     EnvironmentBlendMode = 1
	BlendModeAdditive   EnvironmentBlendMode = 2
	BlendModeAlphaBlend EnvironmentBlendMode = 3
)

// String returns the symbolic name of the blend mode.
func (m EnvironmentBlendMode) String() string {
	switch m {
	case BlendModeOpaque:
		return "XR_ENVIRONMENT_BLEND_MODE_OPAQUE"
	case BlendModeAdditive:
		return "XR_ENVIRONMENT_BLEND_MODE_ADDITIVE"
	case BlendModeAlphaBlend:
		return "XR_ENVIRONMENT_BLEND_MODE_ALPHA_BLEND"
	default:
		return fmt.Sprintf("XR_ENVIRONMENT_BLEND_MODE_UNKNOWN_%d", int32(m))
	}
}

// Version packs major.minor.patch as 16.16.32 bits.
type Version uint64

// MakeVersion builds a Version.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(uint64(major&0xffff)<<48 | uint64(minor&0xffff)<<32 | uint64(patch))
}

func (v Version) Major() uint32 { return uint32((v >> 48) & 0xffff) }
func (v Version) Minor() uint32 { return uint32((v >> 32) & 0xffff) }
func (v Version) Patch() uint32 { return uint32(v & 0xffffffff) }

// String formats the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Time is a runtime timestamp in nanoseconds.
type Time int64

// ApplicationInfo describes the calling application.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         Version
}

// InstanceCreateInfo is the input to CreateInstance.
type InstanceCreateInfo struct {
	Type                  StructureType
	ApplicationInfo       ApplicationInfo
	EnabledAPILayerNames  []string
	EnabledExtensionNames []string
}

// InstanceProperties is filled by GetInstanceProperties.
type InstanceProperties struct {
	Type           StructureType
	RuntimeName    string
	RuntimeVersion Version
}

// ExtensionProperties names one supported extension.
type ExtensionProperties struct {
	Type             StructureType
	ExtensionName    string
	ExtensionVersion uint32
}

// SystemGetInfo is the input to AcquireSystem.
type SystemGetInfo struct {
	Type       StructureType
	FormFactor FormFactor
}

// SystemGraphicsProperties carries compositor limits.
type SystemGraphicsProperties struct {
	MaxSwapchainImageHeight uint32
	MaxSwapchainImageWidth  uint32
	MaxLayerCount           uint32
}

// SystemTrackingProperties carries tracking capabilities.
type SystemTrackingProperties struct {
	OrientationTracking bool
	PositionTracking    bool
}

// SystemProperties is filled by GetSystemProperties. Next holds optional
// extension structures the caller wants populated.
type SystemProperties struct {
	Type               StructureType
	Next               []ChainedOutput
	SystemID           SystemID
	VendorID           uint32
	SystemName         string
	GraphicsProperties SystemGraphicsProperties
	TrackingProperties SystemTrackingProperties
}
