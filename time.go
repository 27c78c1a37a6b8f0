package xrt

import "context"

// ConvertPerformanceCounterToTime converts a host performance counter
// reading to runtime time using the live session's calibration. Requires
// the XR_KHR_win32_convert_performance_counter_time extension.
func (r *Runtime) ConvertPerformanceCounterToTime(_ context.Context, instance Instance, counter int64) (Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkConversion(instance); err != nil {
		return 0, err
	}
	t := timeFromSeconds(r.calibration.BackendSeconds(counter))
	if t <= 0 {
		return 0, ErrorTimeInvalid
	}
	return t, nil
}

// ConvertTimeToPerformanceCounter converts runtime time to a host
// performance counter reading. Requires the
// XR_KHR_win32_convert_performance_counter_time extension.
func (r *Runtime) ConvertTimeToPerformanceCounter(_ context.Context, instance Instance, t Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkConversion(instance); err != nil {
		return 0, err
	}
	if t <= 0 {
		return 0, ErrorTimeInvalid
	}
	return r.calibration.HostCounter(secondsFromTime(t)), nil
}

func (r *Runtime) checkConversion(instance Instance) error {
	if err := r.checkInstance(instance); err != nil {
		return err
	}
	if !r.extensionEnabled(ExtensionConvertPerformanceCounterTime) {
		return ErrorFunctionUnsupported
	}
	if r.session == nil {
		return ErrorCallOrderInvalid
	}
	return nil
}
