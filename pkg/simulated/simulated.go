// Package simulated provides an xrt.Backend that needs no hardware. Its clock
// is driven by a clockz.Clock and every status code it reports can be set, so
// bring-up paths can be exercised end to end.
package simulated

import (
	"errors"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/xrt"
)

// DefaultIPD is the interpupillary distance used when none is configured.
const DefaultIPD = float32(0.064)

// Config describes the simulated device and the codes the backend reports.
type Config struct {
	Identity xrt.DeviceIdentity
	Version  string

	// TimeOrigin is the backend clock reading, in seconds, when the backend
	// is created.
	TimeOrigin float64

	// EyeHeight is reported for xrt.PropertyEyeHeight. Zero reports the
	// caller's default.
	EyeHeight float32

	// IPD separates the eye poses. Zero uses DefaultIPD.
	IPD float32

	InitResult           xrt.BackendResult
	CreateResult         xrt.BackendResult
	TrackingOriginResult xrt.BackendResult
}

// DefaultIdentity returns the identity of a generic simulated headset.
func DefaultIdentity() xrt.DeviceIdentity {
	fov := xrt.FovPort{UpTan: 1.0, DownTan: 1.0, LeftTan: 1.0, RightTan: 1.0}
	return xrt.DeviceIdentity{
		VendorID:           0x2833,
		ProductID:          0x0186,
		Manufacturer:       "Simulated",
		ProductName:        "Simulated Headset",
		SerialNumber:       "SIM-0001",
		FirmwareMajor:      1,
		FirmwareMinor:      0,
		Resolution:         xrt.Sizei{Width: 3664, Height: 1920},
		DisplayRefreshRate: 90,
		DefaultEyeFov:      [xrt.EyeCount]xrt.FovPort{fov, fov},
	}
}

// Backend is a simulated xrt.Backend.
type Backend struct {
	clock  clockz.Clock
	origin time.Time

	mu          sync.Mutex
	cfg         Config
	initialized bool
	params      xrt.InitParams
	sessions    []*Session
	initCalls   int
	createCalls int
}

// New creates a simulated backend.
func New(clock clockz.Clock, cfg Config) *Backend {
	if cfg.Version == "" {
		cfg.Version = "simulated 1.0"
	}
	if cfg.IPD == 0 {
		cfg.IPD = DefaultIPD
	}
	return &Backend{clock: clock, origin: clock.Now(), cfg: cfg}
}

// Initialize implements xrt.Backend.
func (b *Backend) Initialize(params xrt.InitParams) xrt.BackendResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.initCalls++
	b.params = params
	if b.cfg.InitResult.Failed() {
		return b.cfg.InitResult
	}
	b.initialized = true
	return xrt.BackendSuccess
}

// Shutdown implements xrt.Backend.
func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = false
}

// VersionString implements xrt.Backend.
func (b *Backend) VersionString() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg.Version
}

// Create implements xrt.Backend.
func (b *Backend) Create() (xrt.Session, xrt.BackendResult) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.createCalls++
	if !b.initialized {
		return nil, xrt.BackendErrorInvalidSession
	}
	if b.cfg.CreateResult.Failed() {
		return nil, b.cfg.CreateResult
	}
	s := &Session{
		backend:  b,
		identity: b.cfg.Identity,
		bools:    make(map[string]bool),
	}
	b.sessions = append(b.sessions, s)
	return s, xrt.BackendSuccess
}

// SetIdentity replaces the attached headset for sessions created afterwards.
func (b *Backend) SetIdentity(id xrt.DeviceIdentity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg.Identity = id
}

// SetInitResult sets the code returned by later Initialize calls.
func (b *Backend) SetInitResult(res xrt.BackendResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg.InitResult = res
}

// SetCreateResult sets the code returned by later Create calls.
func (b *Backend) SetCreateResult(res xrt.BackendResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg.CreateResult = res
}

// SetTrackingOriginResult sets the code returned by later
// SetTrackingOriginType calls.
func (b *Backend) SetTrackingOriginResult(res xrt.BackendResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg.TrackingOriginResult = res
}

// Initialized reports whether the backend is loaded.
func (b *Backend) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Params returns the parameters of the last Initialize call.
func (b *Backend) Params() xrt.InitParams {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}

// InitCalls returns how many times Initialize was called.
func (b *Backend) InitCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initCalls
}

// CreateCalls returns how many times Create was called.
func (b *Backend) CreateCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.createCalls
}

// Sessions returns every session created so far, oldest first.
func (b *Backend) Sessions() []*Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Session, len(b.sessions))
	copy(out, b.sessions)
	return out
}

// Live returns the number of sessions not yet destroyed.
func (b *Backend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, s := range b.sessions {
		if !s.destroyed {
			n++
		}
	}
	return n
}

// seconds reads the backend clock.
func (b *Backend) seconds() float64 {
	return b.cfg.TimeOrigin + b.clock.Since(b.origin).Seconds()
}

// Session is a simulated xrt.Session.
type Session struct {
	backend  *Backend
	identity xrt.DeviceIdentity

	destroyed      bool
	bools          map[string]bool
	origin         xrt.TrackingOrigin
	originSet      int
	renderDescCall int
}

// Destroy implements xrt.Session.
func (s *Session) Destroy() {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.destroyed = true
}

// TimeInSeconds implements xrt.Session.
func (s *Session) TimeInSeconds() float64 {
	return s.backend.seconds()
}

// Identity implements xrt.Session.
func (s *Session) Identity() xrt.DeviceIdentity {
	return s.identity
}

// RenderDesc implements xrt.Session. Eyes are offset by half the IPD and
// keep the requested field of view.
func (s *Session) RenderDesc(eye xrt.Eye, fov xrt.FovPort) xrt.EyeRenderDesc {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.renderDescCall++

	offset := s.backend.cfg.IPD / 2
	if eye == xrt.EyeLeft {
		offset = -offset
	}
	return xrt.EyeRenderDesc{
		Eye: eye,
		Fov: fov,
		HmdToEyePose: xrt.Pose{
			Orientation: xrt.Quaternion{W: 1},
			Position:    xrt.Vector3{X: offset},
		},
	}
}

// SetBool implements xrt.Session.
func (s *Session) SetBool(key string, value bool) xrt.BackendResult {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.bools[key] = value
	return xrt.BackendSuccess
}

// Float implements xrt.Session.
func (s *Session) Float(key string, def float32) float32 {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if key == xrt.PropertyEyeHeight && s.backend.cfg.EyeHeight != 0 {
		return s.backend.cfg.EyeHeight
	}
	return def
}

// SetTrackingOriginType implements xrt.Session.
func (s *Session) SetTrackingOriginType(origin xrt.TrackingOrigin) xrt.BackendResult {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.backend.cfg.TrackingOriginResult.Failed() {
		return s.backend.cfg.TrackingOriginResult
	}
	s.origin = origin
	s.originSet++
	return xrt.BackendSuccess
}

// Bool returns a property set with SetBool.
func (s *Session) Bool(key string) (bool, bool) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	v, ok := s.bools[key]
	return v, ok
}

// Destroyed reports whether Destroy was called.
func (s *Session) Destroyed() bool {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	return s.destroyed
}

// TrackingOrigin returns the last origin set and how many times it was set.
func (s *Session) TrackingOrigin() (xrt.TrackingOrigin, int) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	return s.origin, s.originSet
}

// RenderDescCalls returns how many times RenderDesc was called.
func (s *Session) RenderDescCalls() int {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	return s.renderDescCall
}

// ErrNoEyeTracking is returned by EyeTracking.Open when no data is published.
var ErrNoEyeTracking = errors.New("eye tracking data not published")

// EyeTracking is a simulated xrt.EyeTrackingSource.
type EyeTracking struct {
	mu        sync.Mutex
	available bool
	opens     int
}

// NewEyeTracking creates a source that opens when available is true.
func NewEyeTracking(available bool) *EyeTracking {
	return &EyeTracking{available: available}
}

// Open implements xrt.EyeTrackingSource.
func (e *EyeTracking) Open() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opens++
	if !e.available {
		return ErrNoEyeTracking
	}
	return nil
}

// Opens returns how many times Open was called.
func (e *EyeTracking) Opens() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opens
}

var (
	_ xrt.Backend           = (*Backend)(nil)
	_ xrt.Session           = (*Session)(nil)
	_ xrt.EyeTrackingSource = (*EyeTracking)(nil)
)
