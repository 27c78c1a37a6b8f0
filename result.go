package xrt

import (
	"errors"
	"fmt"
)

// Result is an API outcome code. Negative values are failures.
//
// Result implements error so failures can be returned, wrapped and matched
// with errors.Is:
//
//	if errors.Is(err, xrt.ErrorFormFactorUnavailable) {
//	    // ask the user to start the companion service, then retry
//	}
type Result int32

// Outcome codes. Values follow the OpenXR numbering.
const (
	Success                               Result = 0
	ErrorValidationFailure                Result = -1
	ErrorRuntimeFailure                   Result = -2
	ErrorAPIVersionUnsupported            Result = -4
	ErrorInitializationFailed             Result = -6
	ErrorFunctionUnsupported              Result = -7
	ErrorExtensionNotPresent              Result = -9
	ErrorLimitReached                     Result = -10
	ErrorSizeInsufficient                 Result = -11
	ErrorHandleInvalid                    Result = -12
	ErrorSystemInvalid                    Result = -18
	ErrorTimeInvalid                      Result = -30
	ErrorFormFactorUnsupported            Result = -34
	ErrorFormFactorUnavailable            Result = -35
	ErrorCallOrderInvalid                 Result = -37
	ErrorViewConfigurationTypeUnsupported Result = -41
)

var resultNames = map[Result]string{
	Success:                               "XR_SUCCESS",
	ErrorValidationFailure:                "XR_ERROR_VALIDATION_FAILURE",
	ErrorRuntimeFailure:                   "XR_ERROR_RUNTIME_FAILURE",
	ErrorAPIVersionUnsupported:            "XR_ERROR_API_VERSION_UNSUPPORTED",
	ErrorInitializationFailed:             "XR_ERROR_INITIALIZATION_FAILED",
	ErrorFunctionUnsupported:              "XR_ERROR_FUNCTION_UNSUPPORTED",
	ErrorExtensionNotPresent:              "XR_ERROR_EXTENSION_NOT_PRESENT",
	ErrorLimitReached:                     "XR_ERROR_LIMIT_REACHED",
	ErrorSizeInsufficient:                 "XR_ERROR_SIZE_INSUFFICIENT",
	ErrorHandleInvalid:                    "XR_ERROR_HANDLE_INVALID",
	ErrorSystemInvalid:                    "XR_ERROR_SYSTEM_INVALID",
	ErrorTimeInvalid:                      "XR_ERROR_TIME_INVALID",
	ErrorFormFactorUnsupported:            "XR_ERROR_FORM_FACTOR_UNSUPPORTED",
	ErrorFormFactorUnavailable:            "XR_ERROR_FORM_FACTOR_UNAVAILABLE",
	ErrorCallOrderInvalid:                 "XR_ERROR_CALL_ORDER_INVALID",
	ErrorViewConfigurationTypeUnsupported: "XR_ERROR_VIEW_CONFIGURATION_TYPE_UNSUPPORTED",
}

// String returns the symbolic name of the result.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	if r.Failed() {
		return fmt.Sprintf("XR_UNKNOWN_FAILURE_%d", int32(r))
	}
	return fmt.Sprintf("XR_UNKNOWN_SUCCESS_%d", int32(r))
}

// Error implements error.
func (r Result) Error() string {
	return r.String()
}

// Failed reports whether r is a failure code.
func (r Result) Failed() bool {
	return r < 0
}

// ErrInstallPathMissing is returned when the primary service is running but
// its install location cannot be read.
var ErrInstallPathMissing = errors.New("primary service install path not found")

// BackendError is an unexpected failure code from the backend SDK. It aborts
// the bring-up attempt and is not retried.
type BackendError struct {
	Op   string
	Code BackendResult
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s failed [%d]", e.Op, int32(e.Code))
}

// ErrorClass groups failures by how a caller is expected to react.
type ErrorClass int

const (
	// ClassNone is the class of a nil error.
	ClassNone ErrorClass = iota

	// ClassValidation is a malformed input structure.
	ClassValidation

	// ClassHandle is an unknown or stale handle. Caller bug, not retried.
	ClassHandle

	// ClassState is a call made out of sequence, such as querying a system
	// before it was acquired or naming an unsupported view configuration.
	ClassState

	// ClassAvailability means the device or its service is not present.
	// Safe to retry after user action.
	ClassAvailability

	// ClassSize means an enumeration buffer was too small.
	ClassSize

	// ClassFatal is an unexpected backend or environment failure.
	ClassFatal
)

// String returns the string representation of the class.
func (c ErrorClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassValidation:
		return "validation"
	case ClassHandle:
		return "handle"
	case ClassState:
		return "state"
	case ClassAvailability:
		return "availability"
	case ClassSize:
		return "size"
	case ClassFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Classify returns the class of err.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) || errors.Is(err, ErrInstallPathMissing) {
		return ClassFatal
	}
	var r Result
	if !errors.As(err, &r) {
		return ClassFatal
	}
	switch r {
	case ErrorValidationFailure, ErrorAPIVersionUnsupported, ErrorExtensionNotPresent, ErrorTimeInvalid:
		return ClassValidation
	case ErrorHandleInvalid:
		return ClassHandle
	case ErrorSystemInvalid, ErrorFormFactorUnsupported, ErrorViewConfigurationTypeUnsupported,
		ErrorCallOrderInvalid, ErrorLimitReached, ErrorFunctionUnsupported:
		return ClassState
	case ErrorFormFactorUnavailable:
		return ClassAvailability
	case ErrorSizeInsufficient:
		return ClassSize
	default:
		return ClassFatal
	}
}

// ResultOf maps an error returned by this package to its outcome code.
// Fatal backend failures map to ErrorRuntimeFailure.
func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	var r Result
	if errors.As(err, &r) {
		return r
	}
	return ErrorRuntimeFailure
}
