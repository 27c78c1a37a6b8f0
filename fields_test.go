package xrt

import (
	"testing"
	"time"

	"github.com/zoobzio/capitan"
)

func TestFieldKeys(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{KeyState.Field("x").Key().Name(), "state"},
		{KeyOldState.Field("x").Key().Name(), "old_state"},
		{KeyNewState.Field("x").Key().Name(), "new_state"},
		{KeyError.Field("x").Key().Name(), "error"},
		{KeyResult.Field("x").Key().Name(), "result"},
		{KeyDuration.Field(time.Second).Key().Name(), "duration"},
		{KeyApplication.Field("x").Key().Name(), "application"},
		{KeyEngine.Field("x").Key().Name(), "engine"},
		{KeyAPIVersion.Field("x").Key().Name(), "api_version"},
		{KeyExtension.Field("x").Key().Name(), "extension"},
		{KeyBackend.Field("x").Key().Name(), "backend"},
		{KeyStage.Field("x").Key().Name(), "stage"},
		{KeyVersion.Field("x").Key().Name(), "version"},
		{KeyLibraryPath.Field("x").Key().Name(), "library_path"},
		{KeyFormFactor.Field("x").Key().Name(), "form_factor"},
		{KeySystemID.Field(1).Key().Name(), "system_id"},
		{KeyOffset.Field(0.5).Key().Name(), "offset"},
		{KeyFrequency.Field(1).Key().Name(), "frequency"},
		{KeyRounds.Field(1).Key().Name(), "rounds"},
		{KeyVendorID.Field(1).Key().Name(), "vendor_id"},
		{KeyProductID.Field(1).Key().Name(), "product_id"},
		{KeyManufacturer.Field("x").Key().Name(), "manufacturer"},
		{KeyProductName.Field("x").Key().Name(), "product_name"},
		{KeySerialNumber.Field("x").Key().Name(), "serial_number"},
		{KeyFirmware.Field("x").Key().Name(), "firmware"},
		{KeyResolution.Field("x").Key().Name(), "resolution"},
		{KeyRefreshRate.Field(90).Key().Name(), "refresh_rate"},
		{KeyEye.Field("x").Key().Name(), "eye"},
		{KeyEyePose.Field("x").Key().Name(), "eye_pose"},
		{KeyFov.Field("x").Key().Name(), "fov"},
		{KeyEyeHeight.Field(1.6).Key().Name(), "eye_height"},
		{KeyEyeTracking.Field("x").Key().Name(), "eye_tracking"},
		{KeySystemName.Field("x").Key().Name(), "system_name"},
		{KeyViewConfig.Field("x").Key().Name(), "view_configuration"},
		{KeyCount.Field(1).Key().Name(), "count"},
		{KeyCapacity.Field(1).Key().Name(), "capacity"},
		{KeyDebounce.Field(time.Second).Key().Name(), "debounce"},
		{KeyWatcherType.Field("x").Key().Name(), "watcher_type"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected key %q, got %q", tt.want, tt.got)
		}
	}
}

func TestFloatKeys_KeepValues(t *testing.T) {
	fields := []capitan.Field{
		KeyOffset.Field(-1234.5678),
		KeyRefreshRate.Field(float32(72)),
		KeyEyeHeight.Field(DefaultEyeHeight),
	}

	if got := KeyOffset.ExtractFromFields(fields); got != -1234.5678 {
		t.Errorf("offset: expected -1234.5678, got %v", got)
	}
	if got := KeyRefreshRate.ExtractFromFields(fields); got != 72 {
		t.Errorf("refresh_rate: expected 72, got %v", got)
	}
	if got := KeyEyeHeight.ExtractFromFields(fields); got != DefaultEyeHeight {
		t.Errorf("eye_height: expected %v, got %v", DefaultEyeHeight, got)
	}
}
