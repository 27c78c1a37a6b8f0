package xrt

import (
	"context"
	"sync"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Runtime owns the instance and system singletons and the backend session
// behind them. All operations are serialized on one mutex.
type Runtime struct {
	deps       Dependencies
	service    ServiceConfig
	extensions []Extension
	clock      clockz.Clock
	counter    HostCounter
	metrics    MetricsProvider

	mu sync.Mutex

	// Instance singleton.
	instance        Instance
	enabled         map[string]bool
	applicationName string

	// System singleton and the backend state behind it.
	system        SystemID
	backend       Backend
	backendKind   BackendKind
	session       Session
	calibration   ClockCalibration
	device        DeviceState
	serviceLogged bool

	state     State
	lastError error
	failures  *failureLog
}

// New creates a Runtime that delegates device access to the backends in
// deps. Instance configuration uses chainable methods before the first
// operation.
//
// Example:
//
//	rt := xrt.New(xrt.Dependencies{
//	    Primary:  primary,
//	    Fallback: fallback,
//	    Settings: settings,
//	    Services: process.New(),
//	    Registry: registry.New("/etc/xrt/registry.yaml"),
//	}).FailureHistory(8)
func New(deps Dependencies) *Runtime {
	return &Runtime{
		deps:       deps,
		service:    DefaultServiceConfig(),
		extensions: DefaultExtensions(),
		clock:      clockz.RealClock,
		counter:    NewHostCounter(clockz.RealClock),
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Clock sets the clock used for bring-up durations and, unless HostCounter
// is also called, for the host counter. Use clockz.FakeClock in tests.
func (r *Runtime) Clock(clock clockz.Clock) *Runtime {
	r.clock = clock
	r.counter = NewHostCounter(clock)
	return r
}

// HostCounter sets the host performance counter calibrated against the
// backend clock.
func (r *Runtime) HostCounter(counter HostCounter) *Runtime {
	r.counter = counter
	return r
}

// Metrics sets a metrics provider for observability integration.
func (r *Runtime) Metrics(provider MetricsProvider) *Runtime {
	r.metrics = provider
	return r
}

// FailureHistory sets the number of failed bring-up attempts to retain.
// Use 0 (default) to only retain the most recent error via LastError().
func (r *Runtime) FailureHistory(n int) *Runtime {
	r.failures = newFailureLog(n)
	return r
}

// ServiceConfig overrides the primary service footprint.
func (r *Runtime) ServiceConfig(cfg ServiceConfig) *Runtime {
	r.service = cfg
	return r
}

// Extensions replaces the advertised extension table.
func (r *Runtime) Extensions(table []Extension) *Runtime {
	r.extensions = table
	return r
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// State returns the current bring-up state.
func (r *Runtime) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LastError returns the error of the last failed bring-up, or nil once a
// bring-up succeeds.
func (r *Runtime) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

// Failures returns recent failed bring-up attempts, oldest first.
// Returns nil if history is not enabled (see FailureHistory).
func (r *Runtime) Failures() []Failure {
	return r.failures.snapshot()
}

// Backend returns the kind of the loaded backend and true, or false if no
// backend is loaded.
func (r *Runtime) Backend() (BackendKind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backendKind, r.backend != nil
}

// Calibration returns the clock calibration of the live session and true,
// or false if no session is live.
func (r *Runtime) Calibration() (ClockCalibration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calibration, r.session != nil
}

// Device returns the cached device state and true, or false if no session
// is live.
func (r *Runtime) Device() (DeviceState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.device, r.session != nil
}

// Shutdown destroys the instance, closes the backend session and unloads
// the backend. The runtime can be used again afterwards.
func (r *Runtime) Shutdown(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardown(ctx)
}

// ReleaseSession closes the backend session after the device is lost, for
// example when the backend reports the display was disconnected. The backend
// stays loaded and the cached device state is kept, so the next AcquireSystem
// opens a new session and only recomputes device state if the headset
// changed. The system handle is invalidated until then.
func (r *Runtime) ReleaseSession(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return
	}
	r.releaseSession(ctx)
	r.system = NullSystemID
	r.calibration = ClockCalibration{}
	r.transition(ctx, StateIdle)
}

func (r *Runtime) teardown(ctx context.Context) {
	r.releaseSession(ctx)
	if r.backend != nil {
		r.backend.Shutdown()
		capitan.Emit(ctx, BackendShutdown, KeyBackend.Field(r.backendKind.String()))
		r.backend = nil
	}
	if r.instance != NullInstance {
		capitan.Emit(ctx, InstanceDestroyed)
	}
	r.instance = NullInstance
	r.enabled = nil
	r.applicationName = ""
	r.system = NullSystemID
	r.device = DeviceState{}
	r.calibration = ClockCalibration{}
	r.transition(ctx, StateIdle)
}

// releaseSession destroys the live session, if any.
func (r *Runtime) releaseSession(ctx context.Context) {
	if r.session == nil {
		return
	}
	r.session.Destroy()
	r.session = nil
	capitan.Emit(ctx, SessionDestroyed, KeyBackend.Field(r.backendKind.String()))
}

// transition updates the state and emits a state change event if changed.
func (r *Runtime) transition(ctx context.Context, to State) {
	from := r.state
	if from == to {
		return
	}
	r.state = to
	capitan.Emit(ctx, StateChanged,
		KeyOldState.Field(from.String()),
		KeyNewState.Field(to.String()),
	)
	if r.metrics != nil {
		r.metrics.OnStateChange(from, to)
	}
}

// setError records a failed bring-up.
func (r *Runtime) setError(b *bringUp, err error) {
	r.lastError = err
	r.failures.record(Failure{
		Stage:   b.stage,
		Backend: b.kind,
		Class:   Classify(err),
		At:      r.clock.Now(),
		Err:     err,
	})
}

func (r *Runtime) extensionEnabled(name string) bool {
	return r.enabled[name]
}
