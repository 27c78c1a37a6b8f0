package xrt

import (
	"math"
	"time"

	"github.com/zoobzio/clockz"
)

// calibrationRounds is the number of paired clock reads taken when a session
// is created.
const calibrationRounds = 100

// HostCounter is the host's monotonic performance counter.
type HostCounter interface {
	// Counter returns the current tick count.
	Counter() int64

	// Frequency returns ticks per second.
	Frequency() int64
}

// clockCounter is a nanosecond HostCounter measured from its creation.
type clockCounter struct {
	clock  clockz.Clock
	origin time.Time
}

// NewHostCounter returns a HostCounter reading clock at nanosecond
// resolution. Use clockz.RealClock in production and a fake clock in tests.
func NewHostCounter(clock clockz.Clock) HostCounter {
	return &clockCounter{clock: clock, origin: clock.Now()}
}

func (c *clockCounter) Counter() int64 {
	return int64(c.clock.Since(c.origin))
}

func (c *clockCounter) Frequency() int64 {
	return int64(time.Second)
}

// ClockCalibration maps host counter readings into the backend time domain.
// It is fixed for the lifetime of a backend session.
type ClockCalibration struct {
	// Offset is backend seconds minus host seconds.
	Offset float64

	// Frequency is the host counter frequency read at calibration.
	Frequency int64
}

// calibrate samples the host counter and the backend clock back to back and
// keeps the smallest difference. A delay between the two reads can only
// inflate a sample, so the minimum is the best estimate of the true offset.
func calibrate(counter HostCounter, backendNow func() float64) ClockCalibration {
	freq := counter.Frequency()
	offset := math.Inf(1)
	for i := 0; i < calibrationRounds; i++ {
		host := float64(counter.Counter()) / float64(freq)
		offset = math.Min(offset, backendNow()-host)
	}
	return ClockCalibration{Offset: offset, Frequency: freq}
}

// BackendSeconds converts a host counter reading to backend seconds.
func (c ClockCalibration) BackendSeconds(counter int64) float64 {
	return float64(counter)/float64(c.Frequency) + c.Offset
}

// HostCounter converts backend seconds to a host counter reading.
func (c ClockCalibration) HostCounter(seconds float64) int64 {
	return int64((seconds - c.Offset) * float64(c.Frequency))
}

// timeFromSeconds converts backend seconds to a runtime Time.
func timeFromSeconds(seconds float64) Time {
	return Time(seconds * 1e9)
}

// secondsFromTime converts a runtime Time to backend seconds.
func secondsFromTime(t Time) float64 {
	return float64(t) / 1e9
}
