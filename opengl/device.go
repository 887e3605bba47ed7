// Package opengl implements the glframe Device over an OpenGL 4.1 core
// context via go-gl bindings.
//
// Importing the package registers the backend under the name "opengl":
//
//	import _ "github.com/gogpu/glframe/opengl"
//
// The factory requires a current GL context on the calling thread; the
// windowing collaborator (e.g. glfw) must have created and bound one
// first.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/glframe"
)

func init() {
	glframe.RegisterDevice("opengl", func() (glframe.Device, error) {
		return New()
	})
}

// Device is an OpenGL-backed glframe.Device. All methods must run on
// the thread that owns the GL context.
type Device struct{}

// New initializes the GL bindings against the current context and
// returns the device. It logs the driver's renderer, version, and GLSL
// version strings at Info, and fails with an *InternalError when no
// usable context is current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, &glframe.InternalError{Err: fmt.Errorf("initializing OpenGL: %w", err)}
	}
	glframe.Logger().Info("OpenGL device ready",
		"renderer", glString(gl.RENDERER),
		"version", glString(gl.VERSION),
		"glsl", glString(gl.SHADING_LANGUAGE_VERSION))
	return &Device{}, nil
}

// glString reads a driver identity string, tolerating null returns from
// broken contexts.
func glString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return "unknown"
	}
	return gl.GoStr(s)
}

var shaderKinds = map[glframe.ShaderKind]uint32{
	glframe.VertexShader:   gl.VERTEX_SHADER,
	glframe.FragmentShader: gl.FRAGMENT_SHADER,
}

var bufferTargets = map[glframe.BufferTarget]uint32{
	glframe.ArrayBuffer:        gl.ARRAY_BUFFER,
	glframe.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var bufferUsages = map[glframe.BufferUsage]uint32{
	glframe.StaticDraw:  gl.STATIC_DRAW,
	glframe.DynamicDraw: gl.DYNAMIC_DRAW,
	glframe.StreamDraw:  gl.STREAM_DRAW,
}

var drawModes = map[glframe.DrawMode]uint32{
	glframe.Triangles:     gl.TRIANGLES,
	glframe.TriangleStrip: gl.TRIANGLE_STRIP,
	glframe.TriangleFan:   gl.TRIANGLE_FAN,
	glframe.Lines:         gl.LINES,
	glframe.Points:        gl.POINTS,
}

// CompileShader implements glframe.Device.
func (d *Device) CompileShader(kind glframe.ShaderKind, source string) (uint32, error) {
	handle := gl.CreateShader(shaderKinds[kind])

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(handle)
		gl.DeleteShader(handle)
		return 0, &glframe.ShaderCompileError{Kind: kind, Log: infoLog}
	}
	return handle, nil
}

// DeleteShader implements glframe.Device.
func (d *Device) DeleteShader(id uint32) {
	if id != 0 {
		gl.DeleteShader(id)
	}
}

// LinkProgram implements glframe.Device.
func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, &glframe.ProgramLinkError{Log: infoLog}
	}
	return program, nil
}

// DeleteProgram implements glframe.Device.
func (d *Device) DeleteProgram(id uint32) {
	if id != 0 {
		gl.DeleteProgram(id)
	}
}

// GenVertexArray implements glframe.Device.
func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

// GenBuffer implements glframe.Device.
func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

// AttribLocation implements glframe.Device.
func (d *Device) AttribLocation(program uint32, name string) (uint32, error) {
	loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, &glframe.AttribError{Name: name}
	}
	return uint32(loc), nil
}

// UseProgram implements glframe.Device.
func (d *Device) UseProgram(id uint32) {
	gl.UseProgram(id)
}

// BindVertexArray implements glframe.Device.
func (d *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

// BindBuffer implements glframe.Device.
func (d *Device) BindBuffer(target glframe.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTargets[target], id)
}

// BufferFloatData implements glframe.Device.
func (d *Device) BufferFloatData(target glframe.BufferTarget, data []float32, usage glframe.BufferUsage) {
	gl.BufferData(bufferTargets[target], 4*len(data), gl.Ptr(data), bufferUsages[usage])
}

// EnableVertexAttrib implements glframe.Device.
func (d *Device) EnableVertexAttrib(location uint32) {
	gl.EnableVertexAttribArray(location)
}

// VertexAttribPointer implements glframe.Device.
func (d *Device) VertexAttribPointer(ptr glframe.AttribPointer) {
	gl.VertexAttribPointerWithOffset(ptr.Location, ptr.Size, gl.FLOAT,
		ptr.Normalized, ptr.Stride, uintptr(ptr.Offset))
}

// DrawArrays implements glframe.Device.
func (d *Device) DrawArrays(mode glframe.DrawMode, first, count int32) {
	gl.DrawArrays(drawModes[mode], first, count)
}

// ClearColor implements glframe.Device.
func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements glframe.Device.
func (d *Device) Clear(mask glframe.ClearMask) error {
	var bits uint32
	if mask&glframe.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&glframe.ClearDepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return &glframe.InternalError{Err: fmt.Errorf("glClear failed: 0x%04x", code)}
	}
	return nil
}

// Viewport implements glframe.Device.
func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// shaderInfoLog extracts and trims the info log for a shader object.
func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown shader compilation error"
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00\n ")
}

// programInfoLog extracts and trims the info log for a program object.
func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown program link error"
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00\n ")
}

var _ glframe.Device = (*Device)(nil)
