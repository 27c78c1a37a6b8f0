package xrt

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on bring-up events.
type MetricsProvider interface {
	// OnStateChange is called when the runtime transitions between states.
	OnStateChange(from, to State)

	// OnBringUpSuccess is called when a system is acquired. Duration covers
	// backend selection through device caching.
	OnBringUpSuccess(backend BackendKind, duration time.Duration)

	// OnBringUpFailure is called when bring-up fails. Stage names the step
	// that failed: "select", "initialize", "create", "tag", "calibrate" or
	// "device".
	OnBringUpFailure(stage string, duration time.Duration)

	// OnCalibration is called with the measured backend clock offset in
	// seconds.
	OnCalibration(offset float64)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                        {}
func (NoOpMetricsProvider) OnBringUpSuccess(_ BackendKind, _ time.Duration) {}
func (NoOpMetricsProvider) OnBringUpFailure(_ string, _ time.Duration)      {}
func (NoOpMetricsProvider) OnCalibration(_ float64)                         {}
