package xrt

// Handle checks run after the structure type check of the operation's input
// and before anything touches the backend.

func (r *Runtime) checkInstance(instance Instance) error {
	if r.instance == NullInstance || instance != r.instance {
		return ErrorHandleInvalid
	}
	return nil
}

func (r *Runtime) checkSystem(system SystemID) error {
	if r.system == NullSystemID || system != r.system {
		return ErrorSystemInvalid
	}
	return nil
}

func checkType(got, want StructureType) error {
	if got != want {
		return ErrorValidationFailure
	}
	return nil
}
