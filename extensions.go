package xrt

// Extension names the runtime consults.
const (
	ExtensionConvertPerformanceCounterTime = "XR_KHR_win32_convert_performance_counter_time"
	ExtensionEyeGazeInteraction            = "XR_EXT_eye_gaze_interaction"
	ExtensionHeadsetID                     = "XR_META_headset_id"
)

// Extension is an entry in the runtime's extension table.
type Extension struct {
	Name    string
	Version uint32
}

// DefaultExtensions returns the extensions advertised by the runtime, in
// enumeration order.
func DefaultExtensions() []Extension {
	return []Extension{
		{"XR_KHR_D3D11_enable", 9},
		{"XR_KHR_D3D12_enable", 9},
		{"XR_KHR_vulkan_enable", 8},
		{"XR_KHR_vulkan_enable2", 2},
		{"XR_KHR_opengl_enable", 10},
		{"XR_KHR_composition_layer_depth", 6},
		{"XR_KHR_composition_layer_cylinder", 4},
		{ExtensionConvertPerformanceCounterTime, 1},
		{"XR_EXT_win32_appcontainer_compatible", 1},
		{"XR_KHR_visibility_mask", 2},
		{"XR_FB_display_refresh_rate", 1},
		{"XR_EXT_hand_tracking", 4},
		{"XR_FB_hand_tracking_aim", 2},
		{ExtensionEyeGazeInteraction, 2},
		{"XR_OCULUS_audio_device_guid", 1},
		{"XR_EXT_palm_pose", 3},
		{"XR_MND_headless", 2},
		{"XR_FB_eye_tracking_social", 1},
		{"XR_FB_face_tracking", 1},
		{"XR_FB_face_tracking2", 1},
		{"XR_FB_body_tracking", 1},
		{"XR_META_body_tracking_full_body", 1},
		{"XR_EXT_uuid", 1},
		{ExtensionHeadsetID, 2},
	}
}

func findExtension(table []Extension, name string) bool {
	for _, ext := range table {
		if ext.Name == name {
			return true
		}
	}
	return false
}
