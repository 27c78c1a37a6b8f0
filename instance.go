package xrt

import (
	"context"
	"strings"

	"github.com/zoobzio/capitan"
)

// Runtime identity reported by GetInstanceProperties.
const (
	RuntimeName         = "VirtualDesktopXR"
	RuntimeVersionMajor = 1
	RuntimeVersionMinor = 0
	RuntimeVersionPatch = 0

	// oculusPluginPrefix marks applications built on the OculusXR plugin,
	// which only loads against a runtime named "Oculus".
	oculusPluginPrefix = "Oculus VR Plugin"
	oculusRuntimeName  = "Oculus"
)

// APIVersion is the API version this runtime implements.
var APIVersion = MakeVersion(1, 0, 0)

// CreateInstance creates the instance singleton. Only one instance may exist
// at a time. Every requested extension must be advertised by the runtime.
func (r *Runtime) CreateInstance(ctx context.Context, info *InstanceCreateInfo) (Instance, error) {
	if info == nil {
		return NullInstance, ErrorValidationFailure
	}
	if err := checkType(info.Type, TypeInstanceCreateInfo); err != nil {
		return NullInstance, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.instance != NullInstance {
		return NullInstance, ErrorLimitReached
	}
	if info.ApplicationInfo.APIVersion.Major() != APIVersion.Major() {
		return NullInstance, ErrorAPIVersionUnsupported
	}

	app := info.ApplicationInfo
	Logger().Info("application",
		"name", app.ApplicationName,
		"engine", app.EngineName,
		"api_version", app.APIVersion.String(),
	)
	for _, layer := range info.EnabledAPILayerNames {
		Logger().Info("requested API layer", "name", layer)
	}

	enabled := make(map[string]bool, len(info.EnabledExtensionNames))
	for _, name := range info.EnabledExtensionNames {
		Logger().Info("requested extension", "name", name)
		if !findExtension(r.extensions, name) {
			return NullInstance, ErrorExtensionNotPresent
		}
		enabled[name] = true
	}

	r.instance = instanceHandle
	r.enabled = enabled
	r.applicationName = app.ApplicationName

	for _, name := range info.EnabledExtensionNames {
		capitan.Emit(ctx, ExtensionRequested, KeyExtension.Field(name))
	}
	capitan.Emit(ctx, InstanceCreated,
		KeyApplication.Field(app.ApplicationName),
		KeyEngine.Field(app.EngineName),
		KeyAPIVersion.Field(app.APIVersion.String()),
	)

	return r.instance, nil
}

// DestroyInstance destroys the instance singleton and everything acquired
// through it, including the backend session.
func (r *Runtime) DestroyInstance(ctx context.Context, instance Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInstance(instance); err != nil {
		return err
	}
	r.teardown(ctx)
	return nil
}

// GetInstanceProperties reports the runtime name and version.
func (r *Runtime) GetInstanceProperties(_ context.Context, instance Instance, props *InstanceProperties) error {
	if props == nil {
		return ErrorValidationFailure
	}
	if err := checkType(props.Type, TypeInstanceProperties); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInstance(instance); err != nil {
		return err
	}

	props.RuntimeName = RuntimeName
	if strings.HasPrefix(r.applicationName, oculusPluginPrefix) {
		props.RuntimeName = oculusRuntimeName
	}
	props.RuntimeVersion = runtimeVersion(RuntimeVersionMajor, RuntimeVersionMinor, RuntimeVersionPatch)
	return nil
}

// runtimeVersion packs the version, substituting patch 1 for 0.0.0 since an
// all-zero version is reserved.
func runtimeVersion(major, minor, patch uint32) Version {
	if major == 0 && minor == 0 && patch == 0 {
		patch = 1
	}
	return MakeVersion(major, minor, patch)
}

// EnumerateInstanceExtensionProperties lists the advertised extensions using
// the two-call pattern. Every element of out must be tagged
// TypeExtensionProperties. No instance is required.
func (r *Runtime) EnumerateInstanceExtensionProperties(_ context.Context, _ string, capacity uint32, out []ExtensionProperties) (uint32, error) {
	return enumerate(r.extensions, capacity, out,
		func(dst *ExtensionProperties) error {
			return checkType(dst.Type, TypeExtensionProperties)
		},
		func(ext Extension, dst *ExtensionProperties) {
			dst.ExtensionName = ext.Name
			dst.ExtensionVersion = ext.Version
		},
	)
}
