/*
Package xrt is the bring-up and capability layer of an XR runtime that
delegates device access to one of two vendor backends.

A Runtime owns the instance and system singletons. The first AcquireSystem
call brings the device up: it picks a backend, loads it, opens a session,
calibrates the backend clock against the host counter and caches the
headset description. Later calls answer from that cache.

# Basic Usage

	rt := xrt.New(xrt.Dependencies{
	    Primary:  primary,
	    Fallback: fallback,
	    Settings: xrt.StaticSettings{xrt.SettingAllowFallbackRuntime: 1},
	    Services: process.New(),
	    Registry: registry.New("/etc/xrt/registry.yaml"),
	})

	instance, err := rt.CreateInstance(ctx, &xrt.InstanceCreateInfo{
	    Type:            xrt.TypeInstanceCreateInfo,
	    ApplicationInfo: xrt.ApplicationInfo{ApplicationName: "demo", APIVersion: xrt.APIVersion},
	})

	system, err := rt.AcquireSystem(ctx, instance, &xrt.SystemGetInfo{
	    Type:       xrt.TypeSystemGetInfo,
	    FormFactor: xrt.FormFactorHeadMountedDisplay,
	})
	if errors.Is(err, xrt.ErrorFormFactorUnavailable) {
	    // start the companion service and retry
	}

# Backend Selection

The primary backend is used when its service process is running; its
library is loaded from the service's install directory. Otherwise the
fallback backend is used with the SDK's default library search, unless the
allow_oculus_runtime setting is 0, in which case the system is unavailable.

# Errors

Every operation returns a Result, possibly wrapped. Classify groups failures
into validation, handle, state, availability, size and fatal classes.
Availability failures leave no session behind and are safe to retry.

# Observability

Trace events are emitted through capitan (see signals.go for the signal
set). Human-readable log lines go to the logger installed with SetLogger.
Bring-up metrics are reported to a MetricsProvider.

# Settings

SettingsStore serves settings from a watched JSON or YAML document and
keeps the last valid document when a change is rejected:

	store := xrt.NewSettingsStore(xrt.NewFileWatcher(path), nil).Codec(xrt.CodecFor(path))
	_ = store.Start(ctx)
	rt := xrt.New(xrt.Dependencies{Settings: store})
*/
package xrt
