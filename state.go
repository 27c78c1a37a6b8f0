package xrt

// State represents the bring-up state of a Runtime.
type State int32

const (
	// StateIdle indicates no bring-up has been attempted since the runtime
	// was created or shut down.
	StateIdle State = iota

	// StateReady indicates a backend session is live and device state is
	// cached.
	StateReady

	// StateUnavailable indicates the last bring-up failed because the device
	// or its service was not present. The next acquisition retries.
	StateUnavailable

	// StateFailed indicates the last bring-up hit an unexpected backend
	// failure. The next acquisition retries from scratch.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StoreState represents the current state of a SettingsStore.
type StoreState int32

const (
	// StoreLoading indicates the store has not yet processed any document.
	StoreLoading StoreState = iota

	// StoreHealthy indicates a valid document is current.
	StoreHealthy

	// StoreDegraded indicates the last document was rejected. The previous
	// valid document remains current.
	StoreDegraded

	// StoreEmpty indicates the initial document was rejected and no valid
	// document has ever been obtained. The store keeps watching.
	StoreEmpty
)

// String returns the string representation of the store state.
func (s StoreState) String() string {
	switch s {
	case StoreLoading:
		return "loading"
	case StoreHealthy:
		return "healthy"
	case StoreDegraded:
		return "degraded"
	case StoreEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
