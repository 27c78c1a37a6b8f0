package xrt

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkAcquireSystem_Cached(b *testing.B) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{Fallback: newFakeBackend("A")})
	instance := mustCreateInstance(b, rt)
	mustAcquireSystem(b, rt, instance)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rt.AcquireSystem(ctx, instance, hmdInfo); err != nil {
			b.Fatalf("AcquireSystem() error = %v", err)
		}
	}
}

func BenchmarkAcquireSystem_FullBringUp(b *testing.B) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{Fallback: newFakeBackend("A")})
	instance := mustCreateInstance(b, rt)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rt.AcquireSystem(ctx, instance, hmdInfo); err != nil {
			b.Fatalf("AcquireSystem() error = %v", err)
		}
		rt.ReleaseSession(ctx)
	}
}

func BenchmarkCalibrate(b *testing.B) {
	counter := &steppingCounter{step: 3, freq: 10_000_000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calibrate(counter, counter.seconds)
	}
}

func BenchmarkEnumerateEnvironmentBlendModes(b *testing.B) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{Fallback: newFakeBackend("A")})
	instance := mustCreateInstance(b, rt)
	system := mustAcquireSystem(b, rt, instance)
	out := make([]EnvironmentBlendMode, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryStereo, 0, nil)
		if err != nil {
			b.Fatalf("count query error = %v", err)
		}
		if _, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryStereo, count, out); err != nil {
			b.Fatalf("fill error = %v", err)
		}
	}
}

func BenchmarkSettingsStore_ProcessSingle(b *testing.B) {
	ch := make(chan []byte, b.N+1)
	ch <- []byte(`{"allow_oculus_runtime": 1}`)
	for i := 1; i <= b.N; i++ {
		ch <- []byte(fmt.Sprintf(`{"allow_oculus_runtime": %d}`, i%2))
	}

	store := NewSettingsStore(NewSyncChannelWatcher(ch), func(_ context.Context, _, _ Settings) error {
		return nil
	}).SyncMode()

	ctx := context.Background()
	if err := store.Start(ctx); err != nil {
		b.Fatalf("Start() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Process(ctx)
	}
}

func BenchmarkSettingsStore_Setting(b *testing.B) {
	ch := make(chan []byte, 1)
	ch <- []byte(`{"allow_oculus_runtime": 0, "simulate_eye_tracking": 1}`)
	store := NewSettingsStore(NewSyncChannelWatcher(ch), nil).SyncMode()
	if err := store.Start(context.Background()); err != nil {
		b.Fatalf("Start() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Setting(SettingSimulateEyeTracking)
	}
}
