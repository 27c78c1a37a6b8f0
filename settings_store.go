package xrt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
)

// DefaultDebounce is the default debounce duration for settings changes.
const DefaultDebounce = 100 * time.Millisecond

// Settings update stages, used in error messages.
const (
	settingsDecode   = "decode"
	settingsValidate = "validation"
	settingsApply    = "apply"
)

var (
	settingsID         = pipz.NewIdentity("settings", "Decodes, validates and applies a settings document")
	settingsDecodeID   = pipz.NewIdentity(settingsDecode, "Decodes a settings document")
	settingsValidateID = pipz.NewIdentity(settingsValidate, "Validates settings against their tags")
	settingsApplyID    = pipz.NewIdentity(settingsApply, "Hands accepted settings to the apply stage")
	settingsCallbackID = pipz.NewIdentity("settings.callback", "Calls the store's apply callback")
	settingsRetryID    = pipz.NewIdentity("settings.retry", "Retries the apply callback")
	settingsTimeoutID  = pipz.NewIdentity("settings.timeout", "Bounds the apply callback")
)

// settingsUpdate carries one document through decode, validate and apply.
type settingsUpdate struct {
	raw      []byte
	previous Settings
	current  Settings

	stage string
	err   error
}

// SettingsStore watches a settings document, decodes and validates it, and
// serves the last valid document as a SettingsProvider. A rejected document
// leaves the previous one current.
type SettingsStore struct {
	watcher  Watcher
	apply    pipz.Chainable[*settingsUpdate]
	pipeline pipz.Chainable[*settingsUpdate]
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec

	state     atomic.Int32
	current   atomic.Pointer[Settings]
	lastError atomic.Pointer[error]

	mu      sync.Mutex
	started bool
	changes <-chan []byte
}

// NewSettingsStore creates a SettingsStore reading documents from watcher.
// fn, if not nil, is called with the previous and new document each time a
// document is accepted; an error from fn rejects the document.
//
// Example:
//
//	store := xrt.NewSettingsStore(xrt.NewFileWatcher("/etc/xrt/settings.yaml"), nil).
//	    Codec(xrt.YAMLCodec{})
//	if err := store.Start(ctx); err != nil {
//	    log.Printf("initial settings rejected: %v", err)
//	}
//	rt := xrt.New(xrt.Dependencies{Settings: store})
func NewSettingsStore(watcher Watcher, fn func(ctx context.Context, prev, curr Settings) error) *SettingsStore {
	s := &SettingsStore{
		watcher:  watcher,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    JSONCodec{},
		apply: pipz.Effect(settingsCallbackID, func(ctx context.Context, u *settingsUpdate) error {
			if fn == nil {
				return nil
			}
			return fn(ctx, u.previous, u.current)
		}),
	}
	s.state.Store(int32(StoreLoading))
	return s
}

// Debounce sets how long the store waits for further changes before
// processing the latest one. Must be called before Start().
func (s *SettingsStore) Debounce(d time.Duration) *SettingsStore {
	s.debounce = d
	return s
}

// Retry retries a failing apply callback up to attempts times before the
// document is rejected. Retries are immediate. Must be called before Start().
func (s *SettingsStore) Retry(attempts int) *SettingsStore {
	s.apply = pipz.NewRetry(settingsRetryID, s.apply, attempts)
	return s
}

// Timeout bounds each apply callback. The callback's context is canceled
// when d elapses and the document is rejected. Wrapping order follows call
// order, so Timeout after Retry bounds all attempts together. Must be
// called before Start().
func (s *SettingsStore) Timeout(d time.Duration) *SettingsStore {
	s.apply = pipz.NewTimeout(settingsTimeoutID, s.apply, d)
	return s
}

// SyncMode processes documents only when Process is called, with no
// debounce and no goroutine. Must be called before Start().
func (s *SettingsStore) SyncMode() *SettingsStore {
	s.syncMode = true
	return s
}

// Clock sets the clock for the debounce timer. Must be called before Start().
func (s *SettingsStore) Clock(clock clockz.Clock) *SettingsStore {
	s.clock = clock
	return s
}

// Codec sets the document codec. Default: JSONCodec. Must be called before
// Start().
func (s *SettingsStore) Codec(codec Codec) *SettingsStore {
	s.codec = codec
	return s
}

// State returns the current state of the store.
func (s *SettingsStore) State() StoreState {
	return StoreState(s.state.Load())
}

// Current returns the current document and true, or the zero value and
// false if no valid document has been accepted.
func (s *SettingsStore) Current() (Settings, bool) {
	ptr := s.current.Load()
	if ptr == nil {
		return Settings{}, false
	}
	return *ptr, true
}

// LastError returns the error that rejected the last document, or nil if
// it was accepted.
func (s *SettingsStore) LastError() error {
	ptr := s.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Setting implements SettingsProvider from the current document.
func (s *SettingsStore) Setting(key string) (int, bool) {
	current, ok := s.Current()
	if !ok {
		return 0, false
	}
	return current.Setting(key)
}

// Start begins watching and blocks until the first document has been
// processed. If that document is rejected, Start returns the error and the
// store keeps watching for a valid one.
//
// In sync mode, later documents are only processed by Process.
func (s *SettingsStore) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("settings store already started")
	}
	s.started = true
	s.pipeline = pipz.NewSequence(settingsID,
		s.stage(settingsDecodeID, s.decode),
		s.stage(settingsValidateID, s.validate),
		pipz.Apply(settingsApplyID, func(ctx context.Context, u *settingsUpdate) (*settingsUpdate, error) {
			u.stage = settingsApply
			if _, err := s.apply.Process(ctx, u); err != nil {
				u.err = err
				return u, err
			}
			return u, nil
		}),
	)
	s.mu.Unlock()

	capitan.Emit(ctx, SettingsStarted,
		KeyDebounce.Field(s.debounce),
		KeyWatcherType.Field(fmt.Sprintf("%T", s.watcher)),
	)

	changes, err := s.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var first []byte
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return errors.New("watcher closed before emitting initial value")
		}
		first = raw
	}
	capitan.Emit(ctx, SettingsChangeReceived)
	err = s.process(ctx, first)

	if s.syncMode {
		s.changes = changes
	} else {
		go s.watch(ctx, changes)
	}
	return err
}

// Process handles the next pending document in sync mode. It reports
// false outside sync mode, when nothing is pending, or once the watcher
// has closed.
func (s *SettingsStore) Process(ctx context.Context) bool {
	if !s.syncMode {
		return false
	}
	select {
	case raw, ok := <-s.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, SettingsChangeReceived)
		_ = s.process(ctx, raw) //nolint:errcheck // recorded in LastError
		return true
	default:
		return false
	}
}

// stage wraps fn so the failing stage and its cause are kept on the update.
func (s *SettingsStore) stage(id pipz.Identity, fn func(*settingsUpdate) error) pipz.Chainable[*settingsUpdate] {
	return pipz.Apply(id, func(_ context.Context, u *settingsUpdate) (*settingsUpdate, error) {
		u.stage = id.Name()
		if err := fn(u); err != nil {
			u.err = err
			return u, err
		}
		return u, nil
	})
}

func (s *SettingsStore) decode(u *settingsUpdate) error {
	return s.codec.Decode(u.raw, &u.current)
}

func (s *SettingsStore) validate(u *settingsUpdate) error {
	return u.current.Validate()
}

// process runs one document through the pipeline and publishes it if
// every stage accepts it.
func (s *SettingsStore) process(ctx context.Context, raw []byte) error {
	from := s.State()
	u := &settingsUpdate{raw: raw}
	if prev, ok := s.Current(); ok {
		u.previous = prev
	}

	if _, err := s.pipeline.Process(ctx, u); err != nil {
		if u.err != nil {
			err = u.err
		}
		s.reject(ctx, from, u.stage, err)
		return fmt.Errorf("%s failed: %w", u.stage, err)
	}

	s.current.Store(&u.current)
	s.lastError.Store(nil)
	s.transition(ctx, from, StoreHealthy)
	capitan.Emit(ctx, SettingsApplied)
	return nil
}

// reject records a failed document. The store becomes degraded if it still
// holds an earlier document, and stays empty otherwise.
func (s *SettingsStore) reject(ctx context.Context, from StoreState, stage string, err error) {
	s.lastError.Store(&err)

	to := StoreDegraded
	if s.current.Load() == nil {
		to = StoreEmpty
	}
	s.transition(ctx, from, to)

	sig := SettingsApplyFailed
	switch stage {
	case settingsDecode:
		sig = SettingsDecodeFailed
	case settingsValidate:
		sig = SettingsValidationFailed
	}
	capitan.Emit(ctx, sig, KeyError.Field(err.Error()))
	Logger().Warn("settings rejected", "stage", stage, "error", err)
}

func (s *SettingsStore) transition(ctx context.Context, from, to StoreState) {
	if from == to {
		return
	}
	s.state.Store(int32(to))
	capitan.Emit(ctx, SettingsStateChanged,
		KeyOldState.Field(from.String()),
		KeyNewState.Field(to.String()),
	)
}

// watch processes documents as they arrive. A document is held until no
// newer one arrives within the debounce window, so a burst of saves is
// processed once.
func (s *SettingsStore) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		capitan.Emit(ctx, SettingsStopped, KeyState.Field(s.State().String()))
	}()

	var (
		pending []byte
		waiting bool
		timer   clockz.Timer
		fire    <-chan time.Time
	)
	flush := func() {
		if waiting {
			_ = s.process(ctx, pending) //nolint:errcheck // recorded in LastError
			pending, waiting = nil, false
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				flush()
				return
			}
			capitan.Emit(ctx, SettingsChangeReceived)
			pending, waiting = raw, true
			if timer != nil {
				timer.Stop()
			}
			timer = s.clock.NewTimer(s.debounce)
			fire = timer.C()

		case <-fire:
			fire = nil
			flush()
		}
	}
}
