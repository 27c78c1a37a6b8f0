package xrt

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// Bring-up stage names, reported in metrics and trace events.
const (
	stageSelect     = "select"
	stageInitialize = "initialize"
	stageCreate     = "create"
	stageTag        = "tag"
	stageCalibrate  = "calibrate"
	stageDevice     = "device"
)

var (
	bringUpID         = pipz.NewIdentity("bringup", "Brings up a backend session for the system")
	stageSelectID     = pipz.NewIdentity(stageSelect, "Picks the backend and its library path")
	stageInitializeID = pipz.NewIdentity(stageInitialize, "Loads the selected backend")
	stageCreateID     = pipz.NewIdentity(stageCreate, "Opens a device session")
	stageTagID        = pipz.NewIdentity(stageTag, "Tags the session for the backend service")
	stageCalibrateID  = pipz.NewIdentity(stageCalibrate, "Measures the backend clock offset")
	stageDeviceID     = pipz.NewIdentity(stageDevice, "Caches the device state")
)

// bringUp carries one bring-up attempt through the stages. Nothing on the
// Runtime changes until every stage succeeds, except that a backend which
// initialized stays loaded.
type bringUp struct {
	kind        BackendKind
	backend     Backend
	loaded      bool
	params      InitParams
	session     Session
	calibration ClockCalibration
	device      DeviceState

	stage string
	err   error
}

// stage wraps fn so that the failing stage and its error are recorded on the
// attempt itself.
func (r *Runtime) stage(id pipz.Identity, fn func(context.Context, *bringUp) error) pipz.Chainable[*bringUp] {
	return pipz.Apply(id, func(ctx context.Context, b *bringUp) (*bringUp, error) {
		b.stage = id.Name()
		if err := fn(ctx, b); err != nil {
			b.err = err
			return b, err
		}
		return b, nil
	})
}

// sequence builds the bring-up pipeline.
func (r *Runtime) sequence() pipz.Chainable[*bringUp] {
	return pipz.NewSequence(bringUpID,
		r.stage(stageSelectID, r.selectBackend),
		r.stage(stageInitializeID, r.initializeBackend),
		r.stage(stageCreateID, r.createSession),
		r.stage(stageTagID, r.tagSession),
		r.stage(stageCalibrateID, r.calibrateClock),
		r.stage(stageDeviceID, r.refreshDevice),
	)
}

// AcquireSystem returns the head-mounted display system, bringing up the
// backend on first use. Repeated calls while a session is live return the
// same system without touching the backend.
func (r *Runtime) AcquireSystem(ctx context.Context, instance Instance, info *SystemGetInfo) (SystemID, error) {
	if info == nil {
		return NullSystemID, ErrorValidationFailure
	}
	if err := checkType(info.Type, TypeSystemGetInfo); err != nil {
		return NullSystemID, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInstance(instance); err != nil {
		return NullSystemID, err
	}
	if info.FormFactor != FormFactorHeadMountedDisplay {
		return NullSystemID, ErrorFormFactorUnsupported
	}

	if err := r.ensureSession(ctx); err != nil {
		r.system = NullSystemID
		return NullSystemID, err
	}

	r.system = systemHandle
	capitan.Emit(ctx, SystemAcquired,
		KeySystemID.Field(int(r.system)),
		KeyFormFactor.Field(info.FormFactor.String()),
	)
	return r.system, nil
}

// ensureSession runs the bring-up sequence unless a session is already live.
// Callers hold r.mu.
func (r *Runtime) ensureSession(ctx context.Context) error {
	if r.session != nil {
		return nil
	}

	start := r.clock.Now()
	b := &bringUp{}
	_, err := r.sequence().Process(ctx, b)
	if err == nil {
		r.commit(ctx, b)
		if r.metrics != nil {
			r.metrics.OnBringUpSuccess(b.kind, r.clock.Since(start))
		}
		return nil
	}

	if b.err != nil {
		err = b.err
	}
	r.abandon(ctx, b)

	if r.metrics != nil {
		r.metrics.OnBringUpFailure(b.stage, r.clock.Since(start))
	}

	if Classify(err) == ClassAvailability {
		r.setError(b, err)
		r.transition(ctx, StateUnavailable)
		capitan.Emit(ctx, SystemUnavailable,
			KeyStage.Field(b.stage),
			KeyResult.Field(ResultOf(err).String()),
		)
		Logger().Warn("system unavailable", "stage", b.stage, "error", err)
		return err
	}

	err = fmt.Errorf("bring-up %s failed: %w", b.stage, err)
	r.setError(b, err)
	r.transition(ctx, StateFailed)
	capitan.Emit(ctx, BringUpFailed,
		KeyStage.Field(b.stage),
		KeyError.Field(err.Error()),
	)
	Logger().Error("bring-up failed", "stage", b.stage, "error", err)
	return err
}

// commit publishes a successful attempt.
func (r *Runtime) commit(ctx context.Context, b *bringUp) {
	r.session = b.session
	r.calibration = b.calibration
	r.device = b.device
	r.lastError = nil
	r.transition(ctx, StateReady)
}

// abandon discards a failed attempt: the session it opened is destroyed and
// the cached device identity is cleared so the next attempt starts clean.
func (r *Runtime) abandon(ctx context.Context, b *bringUp) {
	if b.session != nil {
		b.session.Destroy()
		capitan.Emit(ctx, SessionDestroyed, KeyBackend.Field(b.kind.String()))
	}
	r.device = DeviceState{}
	r.calibration = ClockCalibration{}
}

// selectBackend picks the backend and its library path. A backend that is
// already loaded is reused as is.
func (r *Runtime) selectBackend(ctx context.Context, b *bringUp) error {
	if r.backend != nil {
		b.kind = r.backendKind
		b.backend = r.backend
		b.loaded = true
		return nil
	}

	running := r.deps.Services != nil && r.deps.Services.IsServiceRunning(r.service.ProcessName)
	if running {
		b.kind = BackendPrimary
		b.backend = r.deps.Primary
	} else {
		if !settingBool(r.deps.Settings, SettingAllowFallbackRuntime, true) {
			r.logServiceMissing()
			return ErrorFormFactorUnavailable
		}
		b.kind = BackendFallback
		b.backend = r.deps.Fallback
	}
	if b.backend == nil {
		return ErrorFormFactorUnavailable
	}

	b.params = InitParams{
		Flags:                 InitRequestVersion | InitFocusAware,
		RequestedMinorVersion: BackendMinorVersion,
	}
	if b.kind == BackendPrimary {
		path, err := r.installPath()
		if err != nil {
			return err
		}
		b.params.OverrideLibraryPath = filepath.Join(path, r.service.LibraryPrefix)
	}

	capitan.Emit(ctx, BackendSelected,
		KeyBackend.Field(b.kind.String()),
		KeyLibraryPath.Field(b.params.OverrideLibraryPath),
	)
	return nil
}

// installPath reads the primary service's install directory.
func (r *Runtime) installPath() (string, error) {
	if r.deps.Registry == nil {
		return "", ErrInstallPathMissing
	}
	path, ok := r.deps.Registry.ReadString(r.service.InstallRoot, r.service.InstallKey, r.service.InstallValue)
	if !ok || path == "" {
		return "", fmt.Errorf("%w: %s\\%s\\%s", ErrInstallPathMissing,
			r.service.InstallRoot, r.service.InstallKey, r.service.InstallValue)
	}
	return path, nil
}

// initializeBackend loads the selected backend.
func (r *Runtime) initializeBackend(ctx context.Context, b *bringUp) error {
	if b.loaded {
		return nil
	}

	res := b.backend.Initialize(b.params)
	switch res {
	case BackendSuccess:
	case BackendErrorLibLoad:
		r.logServiceMissing()
		return ErrorFormFactorUnavailable
	case BackendErrorServiceConnection, BackendErrorRemoteSession:
		return ErrorFormFactorUnavailable
	default:
		if res.Failed() {
			return &BackendError{Op: "Initialize", Code: res}
		}
	}

	r.backend = b.backend
	r.backendKind = b.kind
	b.loaded = true

	version := b.backend.VersionString()
	Logger().Info("using "+b.kind.String()+" runtime", "version", version)
	capitan.Emit(ctx, BackendInitialized,
		KeyBackend.Field(b.kind.String()),
		KeyVersion.Field(version),
	)
	return nil
}

// createSession opens a device session on the loaded backend.
func (r *Runtime) createSession(ctx context.Context, b *bringUp) error {
	session, res := b.backend.Create()
	if res == BackendErrorNoHmd {
		return ErrorFormFactorUnavailable
	}
	if res.Failed() {
		return &BackendError{Op: "Create", Code: res}
	}
	b.session = session
	capitan.Emit(ctx, SessionCreated, KeyBackend.Field(b.kind.String()))
	return nil
}

// tagSession marks the session so the tagged backend's service can tell it
// apart from other clients.
func (r *Runtime) tagSession(_ context.Context, b *bringUp) error {
	if b.kind != r.service.TaggedBackend || r.service.SessionTag == "" {
		return nil
	}
	if res := b.session.SetBool(r.service.SessionTag, true); res.Failed() {
		Logger().Debug("session tag rejected", "tag", r.service.SessionTag, "code", int32(res))
	}
	return nil
}

// calibrateClock measures the backend clock offset for the new session.
func (r *Runtime) calibrateClock(ctx context.Context, b *bringUp) error {
	b.calibration = calibrate(r.counter, b.session.TimeInSeconds)
	capitan.Emit(ctx, ClockCalibrated,
		KeyOffset.Field(b.calibration.Offset),
		KeyFrequency.Field(int(b.calibration.Frequency)),
		KeyRounds.Field(calibrationRounds),
	)
	if r.metrics != nil {
		r.metrics.OnCalibration(b.calibration.Offset)
	}
	return nil
}

// refreshDevice caches the device state for the new session.
func (r *Runtime) refreshDevice(ctx context.Context, b *bringUp) error {
	device, err := r.cacheDevice(ctx, b.session, r.device)
	if err != nil {
		return err
	}
	b.device = device
	return nil
}

// logServiceMissing logs once per runtime that the primary service is
// required but not running.
func (r *Runtime) logServiceMissing() {
	if r.serviceLogged {
		return
	}
	r.serviceLogged = true
	Logger().Warn("primary service is not running", "process", r.service.ProcessName)
}
