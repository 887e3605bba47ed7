package glframe

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"shader compile",
			&ShaderCompileError{Kind: VertexShader, Log: "0:1: syntax error"},
			`glframe: Vertex shader compile failed: 0:1: syntax error`,
		},
		{
			"program link",
			&ProgramLinkError{Log: "varying mismatch"},
			`glframe: program link failed: varying mismatch`,
		},
		{
			"attrib",
			&AttribError{Name: "position"},
			`glframe: no active attribute named "position"`,
		},
		{
			"unsupported device",
			&UnsupportedDeviceError{Op: "cursor grab"},
			`glframe: unsupported on this device: cursor grab`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("surface creation failed")
	err := &InternalError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !strings.Contains(err.Error(), "surface creation failed") {
		t.Errorf("message %q should carry the cause", err.Error())
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = &ShaderCompileError{Kind: FragmentShader, Log: "bad"}

	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatal("errors.As failed for *ShaderCompileError")
	}
	if compileErr.Kind != FragmentShader {
		t.Errorf("Kind = %v, want FragmentShader", compileErr.Kind)
	}
}
