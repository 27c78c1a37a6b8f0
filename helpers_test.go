package xrt

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// fakeBackend records every call made to it. Result fields set the codes it
// reports.
type fakeBackend struct {
	initResult   BackendResult
	createResult BackendResult
	originResult BackendResult
	identity     DeviceIdentity
	eyeHeight    float32

	// now is the backend clock. Nil reads a constant 100s.
	now func() float64

	initCalls     int
	createCalls   int
	shutdownCalls int
	params        InitParams
	sessions      []*fakeSession
}

func newFakeBackend(serial string) *fakeBackend {
	return &fakeBackend{identity: testIdentity(serial)}
}

func (b *fakeBackend) Initialize(params InitParams) BackendResult {
	b.initCalls++
	b.params = params
	return b.initResult
}

func (b *fakeBackend) Shutdown() { b.shutdownCalls++ }

func (b *fakeBackend) VersionString() string { return "fake 1.83" }

func (b *fakeBackend) Create() (Session, BackendResult) {
	b.createCalls++
	if b.createResult.Failed() {
		return nil, b.createResult
	}
	s := &fakeSession{backend: b, identity: b.identity, bools: map[string]bool{}}
	b.sessions = append(b.sessions, s)
	return s, BackendSuccess
}

func (b *fakeBackend) live() int {
	n := 0
	for _, s := range b.sessions {
		if !s.destroyed {
			n++
		}
	}
	return n
}

type fakeSession struct {
	backend     *fakeBackend
	identity    DeviceIdentity
	destroyed   bool
	bools       map[string]bool
	renderCalls int
	originCalls int
}

func (s *fakeSession) Destroy() { s.destroyed = true }

func (s *fakeSession) TimeInSeconds() float64 {
	if s.backend.now == nil {
		return 100
	}
	return s.backend.now()
}

func (s *fakeSession) Identity() DeviceIdentity { return s.identity }

func (s *fakeSession) RenderDesc(eye Eye, fov FovPort) EyeRenderDesc {
	s.renderCalls++
	return EyeRenderDesc{Eye: eye, Fov: fov, HmdToEyePose: Pose{Orientation: Quaternion{W: 1}}}
}

func (s *fakeSession) SetBool(key string, value bool) BackendResult {
	s.bools[key] = value
	return BackendSuccess
}

func (s *fakeSession) Float(key string, def float32) float32 {
	if key == PropertyEyeHeight && s.backend.eyeHeight != 0 {
		return s.backend.eyeHeight
	}
	return def
}

func (s *fakeSession) SetTrackingOriginType(TrackingOrigin) BackendResult {
	s.originCalls++
	return s.backend.originResult
}

func testIdentity(serial string) DeviceIdentity {
	return DeviceIdentity{
		VendorID:           0x2833,
		ProductID:          0x0186,
		Manufacturer:       "Oculus",
		ProductName:        "Meta Quest 3",
		SerialNumber:       serial,
		FirmwareMajor:      60,
		Resolution:         Sizei{Width: 4128, Height: 2208},
		DisplayRefreshRate: 90,
		DefaultEyeFov: [EyeCount]FovPort{
			{UpTan: 1, DownTan: 1, LeftTan: 1, RightTan: 0.5},
			{UpTan: 1, DownTan: 1, LeftTan: 0.5, RightTan: 1},
		},
	}
}

// staticRegistry is a RegistryReader over a fixed map keyed by
// root\subkey\value.
type staticRegistry map[string]string

func (r staticRegistry) ReadString(root RegistryRoot, subkey, value string) (string, bool) {
	v, ok := r[root.String()+`\`+subkey+`\`+value]
	return v, ok
}

func installRegistry(path string) staticRegistry {
	cfg := DefaultServiceConfig()
	return staticRegistry{cfg.InstallRoot.String() + `\` + cfg.InstallKey + `\` + cfg.InstallValue: path}
}

// recordingMetrics records every metrics callback.
type recordingMetrics struct {
	mu           sync.Mutex
	transitions  [][2]State
	successes    []BackendKind
	failures     []string
	calibrations []float64
}

func (m *recordingMetrics) OnStateChange(from, to State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, [2]State{from, to})
}

func (m *recordingMetrics) OnBringUpSuccess(backend BackendKind, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, backend)
}

func (m *recordingMetrics) OnBringUpFailure(stage string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, stage)
}

func (m *recordingMetrics) OnCalibration(offset float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calibrations = append(m.calibrations, offset)
}

// captureHandler collects log messages.
type captureHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func (h *captureHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.messages {
		if m == msg {
			n++
		}
	}
	return n
}

// captureLogs routes the package logger to a captureHandler for the test.
func captureLogs(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })
	return h
}

// newTestRuntime builds a Runtime on a fake clock with the fallback backend
// selected unless services is set.
func newTestRuntime(deps Dependencies) *Runtime {
	return New(deps).Clock(clockz.NewFakeClock())
}

func mustCreateInstance(t testing.TB, rt *Runtime, extensions ...string) Instance {
	t.Helper()
	instance, err := rt.CreateInstance(context.Background(), &InstanceCreateInfo{
		Type: TypeInstanceCreateInfo,
		ApplicationInfo: ApplicationInfo{
			ApplicationName: "test-app",
			EngineName:      "test-engine",
			APIVersion:      MakeVersion(1, 0, 0),
		},
		EnabledExtensionNames: extensions,
	})
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	return instance
}

var hmdInfo = &SystemGetInfo{Type: TypeSystemGetInfo, FormFactor: FormFactorHeadMountedDisplay}

func mustAcquireSystem(t testing.TB, rt *Runtime, instance Instance) SystemID {
	t.Helper()
	system, err := rt.AcquireSystem(context.Background(), instance, hmdInfo)
	if err != nil {
		t.Fatalf("AcquireSystem failed: %v", err)
	}
	return system
}
