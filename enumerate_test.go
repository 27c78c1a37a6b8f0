package xrt

import (
	"context"
	"errors"
	"testing"
)

func fillInt(src int, dst *int) { *dst = src }

func TestEnumerate_TwoCall(t *testing.T) {
	items := []int{10, 20, 30}

	count, err := enumerate(items, 0, nil, nil, fillInt)
	if err != nil || count != 3 {
		t.Fatalf("count query: expected 3, got %d (%v)", count, err)
	}

	out := make([]int, count)
	count, err = enumerate(items, count, out, nil, fillInt)
	if err != nil || count != 3 {
		t.Fatalf("fill: expected 3, got %d (%v)", count, err)
	}
	for i, want := range items {
		if out[i] != want {
			t.Errorf("index %d: expected %d, got %d", i, want, out[i])
		}
	}
}

func TestEnumerate_CapacityInsufficient(t *testing.T) {
	out := []int{-1, -1}
	count, err := enumerate([]int{1, 2, 3}, 2, out, nil, fillInt)

	if !errors.Is(err, ErrorSizeInsufficient) {
		t.Fatalf("expected size insufficient, got %v", err)
	}
	if count != 3 {
		t.Errorf("expected required count 3, got %d", count)
	}
	if out[0] != -1 || out[1] != -1 {
		t.Error("buffer must not be written on size failure")
	}
}

func TestEnumerate_ZeroCapacityIgnoresBuffer(t *testing.T) {
	out := []int{-1}
	count, err := enumerate([]int{1, 2, 3}, 0, out, nil, fillInt)
	if err != nil || count != 3 {
		t.Fatalf("expected 3, got %d (%v)", count, err)
	}
	if out[0] != -1 {
		t.Error("zero capacity must not write")
	}
}

func TestEnumerate_LargerCapacity(t *testing.T) {
	out := []int{-1, -1, -1, -1}
	count, err := enumerate([]int{1, 2}, 4, out, nil, fillInt)
	if err != nil || count != 2 {
		t.Fatalf("expected 2, got %d (%v)", count, err)
	}
	if out[2] != -1 || out[3] != -1 {
		t.Error("elements past the count must not be written")
	}
}

func TestEnumerate_NilBufferWithCapacity(t *testing.T) {
	count, err := enumerate([]int{1, 2}, 5, nil, nil, fillInt)
	if err != nil || count != 2 {
		t.Errorf("expected 2, got %d (%v)", count, err)
	}
}

func TestEnumerate_BufferShorterThanCapacity(t *testing.T) {
	out := []int{-1}
	_, err := enumerate([]int{1, 2}, 2, out, nil, fillInt)
	if !errors.Is(err, ErrorValidationFailure) {
		t.Errorf("expected validation failure, got %v", err)
	}
	if out[0] != -1 {
		t.Error("buffer must not be written on validation failure")
	}
}

func TestEnumerate_CheckRunsBeforeWrites(t *testing.T) {
	out := []int{0, 7, 0}
	check := func(dst *int) error {
		if *dst == 7 {
			return ErrorValidationFailure
		}
		return nil
	}
	_, err := enumerate([]int{1, 2, 3}, 3, out, check, fillInt)
	if !errors.Is(err, ErrorValidationFailure) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if out[0] != 0 {
		t.Error("no element may be written when any element is rejected")
	}
}

func TestEnumerate_EmptyList(t *testing.T) {
	count, err := enumerate([]int{}, 4, make([]int, 4), nil, fillInt)
	if err != nil || count != 0 {
		t.Errorf("expected 0, got %d (%v)", count, err)
	}
}

func TestEnumerateEnvironmentBlendModes(t *testing.T) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{Fallback: newFakeBackend("A")})
	instance := mustCreateInstance(t, rt)
	system := mustAcquireSystem(t, rt, instance)

	count, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryStereo, 0, nil)
	if err != nil || count != 1 {
		t.Fatalf("expected 1, got %d (%v)", count, err)
	}

	modes := make([]EnvironmentBlendMode, 1)
	count, err = rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryStereo, 1, modes)
	if err != nil || count != 1 {
		t.Fatalf("expected 1, got %d (%v)", count, err)
	}
	if modes[0] != BlendModeOpaque {
		t.Errorf("expected opaque, got %v", modes[0])
	}
}

func TestEnumerateEnvironmentBlendModes_Errors(t *testing.T) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{Fallback: newFakeBackend("A")})
	instance := mustCreateInstance(t, rt)

	if _, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, systemHandle, ViewConfigurationPrimaryStereo, 0, nil); !errors.Is(err, ErrorSystemInvalid) {
		t.Errorf("expected system invalid before acquisition, got %v", err)
	}

	system := mustAcquireSystem(t, rt, instance)

	if _, err := rt.EnumerateEnvironmentBlendModes(ctx, instance+1, system, ViewConfigurationPrimaryStereo, 0, nil); !errors.Is(err, ErrorHandleInvalid) {
		t.Errorf("expected handle invalid, got %v", err)
	}
	if _, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryMono, 0, nil); !errors.Is(err, ErrorViewConfigurationTypeUnsupported) {
		t.Errorf("expected view configuration unsupported, got %v", err)
	}

	// Only one mode exists, so no non-zero capacity is too small. A short
	// buffer is still rejected.
	if _, err := rt.EnumerateEnvironmentBlendModes(ctx, instance, system, ViewConfigurationPrimaryStereo, 1, []EnvironmentBlendMode{}); !errors.Is(err, ErrorValidationFailure) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestEnumerateInstanceExtensionProperties(t *testing.T) {
	ctx := context.Background()
	rt := newTestRuntime(Dependencies{})

	count, err := rt.EnumerateInstanceExtensionProperties(ctx, "", 0, nil)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if int(count) != len(DefaultExtensions()) {
		t.Fatalf("expected %d, got %d", len(DefaultExtensions()), count)
	}

	if _, err := rt.EnumerateInstanceExtensionProperties(ctx, "", count-1, make([]ExtensionProperties, count)); !errors.Is(err, ErrorSizeInsufficient) {
		t.Errorf("expected size insufficient, got %v", err)
	}

	out := make([]ExtensionProperties, count)
	for i := range out {
		out[i].Type = TypeExtensionProperties
	}
	if _, err := rt.EnumerateInstanceExtensionProperties(ctx, "", count, out); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	last := out[count-1]
	if last.ExtensionName != ExtensionHeadsetID || last.ExtensionVersion != 2 {
		t.Errorf("unexpected last extension %+v", last)
	}
	if out[0].ExtensionName != "XR_KHR_D3D11_enable" {
		t.Errorf("unexpected first extension %q", out[0].ExtensionName)
	}
}

func TestEnumerateInstanceExtensionProperties_WrongElementType(t *testing.T) {
	rt := newTestRuntime(Dependencies{})
	out := make([]ExtensionProperties, len(DefaultExtensions()))
	for i := range out {
		out[i].Type = TypeExtensionProperties
	}
	out[5].Type = TypeUnknown

	_, err := rt.EnumerateInstanceExtensionProperties(context.Background(), "", uint32(len(out)), out)
	if !errors.Is(err, ErrorValidationFailure) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if out[0].ExtensionName != "" {
		t.Error("no element may be written when one has the wrong type")
	}
}

func TestEnumerateInstanceExtensionProperties_CustomTable(t *testing.T) {
	rt := newTestRuntime(Dependencies{}).Extensions([]Extension{{Name: "XR_TEST_one", Version: 3}})

	out := []ExtensionProperties{{Type: TypeExtensionProperties}}
	count, err := rt.EnumerateInstanceExtensionProperties(context.Background(), "", 1, out)
	if err != nil || count != 1 {
		t.Fatalf("expected 1, got %d (%v)", count, err)
	}
	if out[0].ExtensionName != "XR_TEST_one" || out[0].ExtensionVersion != 3 {
		t.Errorf("unexpected extension %+v", out[0])
	}
}
