package xrt

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// Settings is the runtime settings document. Unset fields fall back to the
// runtime's defaults.
//
//	allow_oculus_runtime: 0
//	simulate_eye_tracking: 1
type Settings struct {
	AllowFallbackRuntime *int `json:"allow_oculus_runtime,omitempty" yaml:"allow_oculus_runtime,omitempty" validate:"omitempty,oneof=0 1"`
	SimulateEyeTracking  *int `json:"simulate_eye_tracking,omitempty" yaml:"simulate_eye_tracking,omitempty" validate:"omitempty,oneof=0 1"`
}

// Validate checks field values against their tags.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Setting implements SettingsProvider.
func (s Settings) Setting(key string) (int, bool) {
	var v *int
	switch key {
	case SettingAllowFallbackRuntime:
		v = s.AllowFallbackRuntime
	case SettingSimulateEyeTracking:
		v = s.SimulateEyeTracking
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// StaticSettings is a fixed SettingsProvider.
type StaticSettings map[string]int

// Setting implements SettingsProvider.
func (s StaticSettings) Setting(key string) (int, bool) {
	v, ok := s[key]
	return v, ok
}

var (
	_ SettingsProvider = Settings{}
	_ SettingsProvider = StaticSettings(nil)
	_ SettingsProvider = (*SettingsStore)(nil)
)
