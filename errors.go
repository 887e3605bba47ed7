package glframe

import "fmt"

// ShaderCompileError reports that the driver's compiler rejected shader
// source. It is not retryable without changing the source: the registry
// and every ProgramCache holding it return the same error on every later
// request.
type ShaderCompileError struct {
	// Kind is the stage the rejected source targeted.
	Kind ShaderKind

	// Log is the driver-reported diagnostic text.
	Log string
}

// Error implements error.
func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("glframe: %s shader compile failed: %s", e.Kind, e.Log)
}

// ProgramLinkError reports that the driver's linker rejected a pair of
// successfully compiled shaders. Same retry policy as ShaderCompileError.
type ProgramLinkError struct {
	// Log is the driver-reported diagnostic text.
	Log string
}

// Error implements error.
func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("glframe: program link failed: %s", e.Log)
}

// AttribError reports a vertex attribute name that does not exist in a
// linked program (it may also have been optimized out by the compiler).
type AttribError struct {
	// Name is the attribute name that failed to resolve.
	Name string
}

// Error implements error.
func (e *AttribError) Error() string {
	return fmt.Sprintf("glframe: no active attribute named %q", e.Name)
}

// UnsupportedDeviceError reports a capability the platform cannot
// provide, such as a cursor grab mode. It is raised by the windowing
// collaborator and funneled through the same sticky status channel as
// render errors.
type UnsupportedDeviceError struct {
	// Op names the unsupported operation, e.g. "cursor grab".
	Op string
}

// Error implements error.
func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("glframe: unsupported on this device: %s", e.Op)
}

// InternalError wraps an unexpected failure from the collaborator layer,
// such as context or surface creation.
type InternalError struct {
	Err error
}

// Error implements error.
func (e *InternalError) Error() string {
	return fmt.Sprintf("glframe: internal error: %v", e.Err)
}

// Unwrap returns the wrapped error for errors.Is and errors.As.
func (e *InternalError) Unwrap() error { return e.Err }
