// Package gltest provides a recording fake of the glframe Device for
// tests. It hands out deterministic ids, logs every call, counts the
// resource operations the lifecycle contracts care about, and can be
// programmed to reject compilation or linking with a chosen info log.
package gltest

import (
	"fmt"

	"github.com/gogpu/glframe"
)

// Device is an in-memory glframe.Device. The zero value is not usable;
// create one with NewDevice.
type Device struct {
	// Calls logs every device call in order, formatted as
	// "Op(args...)". Tests assert on ordering and counts.
	Calls []string

	// CompileCalls counts CompileShader invocations, including failed
	// ones.
	CompileCalls int

	// LinkCalls counts LinkProgram invocations, including failed ones.
	LinkCalls int

	// DeletedShaders and DeletedPrograms record ids passed to the
	// delete calls, in order.
	DeletedShaders  []uint32
	DeletedPrograms []uint32

	// FailCompile maps shader source text to an info log; compiling a
	// matching source fails with that log.
	FailCompile map[string]string

	// FailLink, when non-empty, makes every LinkProgram call fail with
	// this info log.
	FailLink string

	// Attribs maps attribute names to locations for AttribLocation.
	// Unknown names fail.
	Attribs map[string]uint32

	// ClearErr, when set, is returned from Clear.
	ClearErr error

	nextID uint32
}

// NewDevice creates an empty fake device.
func NewDevice() *Device {
	return &Device{
		FailCompile: make(map[string]string),
		Attribs:     make(map[string]uint32),
	}
}

func (d *Device) log(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) alloc() uint32 {
	d.nextID++
	return d.nextID
}

// CompileShader implements glframe.Device.
func (d *Device) CompileShader(kind glframe.ShaderKind, source string) (uint32, error) {
	d.CompileCalls++
	if infoLog, ok := d.FailCompile[source]; ok {
		d.log("CompileShader(%s, fail)", kind)
		return 0, &glframe.ShaderCompileError{Kind: kind, Log: infoLog}
	}
	id := d.alloc()
	d.log("CompileShader(%s, %d)", kind, id)
	return id, nil
}

// DeleteShader implements glframe.Device.
func (d *Device) DeleteShader(id uint32) {
	d.log("DeleteShader(%d)", id)
	d.DeletedShaders = append(d.DeletedShaders, id)
}

// LinkProgram implements glframe.Device.
func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, error) {
	d.LinkCalls++
	if d.FailLink != "" {
		d.log("LinkProgram(%d, %d, fail)", vertex, fragment)
		return 0, &glframe.ProgramLinkError{Log: d.FailLink}
	}
	id := d.alloc()
	d.log("LinkProgram(%d, %d, %d)", vertex, fragment, id)
	return id, nil
}

// DeleteProgram implements glframe.Device.
func (d *Device) DeleteProgram(id uint32) {
	d.log("DeleteProgram(%d)", id)
	d.DeletedPrograms = append(d.DeletedPrograms, id)
}

// GenVertexArray implements glframe.Device.
func (d *Device) GenVertexArray() uint32 {
	id := d.alloc()
	d.log("GenVertexArray(%d)", id)
	return id
}

// GenBuffer implements glframe.Device.
func (d *Device) GenBuffer() uint32 {
	id := d.alloc()
	d.log("GenBuffer(%d)", id)
	return id
}

// AttribLocation implements glframe.Device.
func (d *Device) AttribLocation(program uint32, name string) (uint32, error) {
	loc, ok := d.Attribs[name]
	if !ok {
		d.log("AttribLocation(%d, %q, fail)", program, name)
		return 0, &glframe.AttribError{Name: name}
	}
	d.log("AttribLocation(%d, %q, %d)", program, name, loc)
	return loc, nil
}

// UseProgram implements glframe.Device.
func (d *Device) UseProgram(id uint32) {
	d.log("UseProgram(%d)", id)
}

// BindVertexArray implements glframe.Device.
func (d *Device) BindVertexArray(id uint32) {
	d.log("BindVertexArray(%d)", id)
}

// BindBuffer implements glframe.Device.
func (d *Device) BindBuffer(target glframe.BufferTarget, id uint32) {
	d.log("BindBuffer(%d, %d)", target, id)
}

// BufferFloatData implements glframe.Device.
func (d *Device) BufferFloatData(target glframe.BufferTarget, data []float32, usage glframe.BufferUsage) {
	d.log("BufferFloatData(%d, %d floats)", target, len(data))
}

// EnableVertexAttrib implements glframe.Device.
func (d *Device) EnableVertexAttrib(location uint32) {
	d.log("EnableVertexAttrib(%d)", location)
}

// VertexAttribPointer implements glframe.Device.
func (d *Device) VertexAttribPointer(ptr glframe.AttribPointer) {
	d.log("VertexAttribPointer(%d, %d)", ptr.Location, ptr.Size)
}

// DrawArrays implements glframe.Device.
func (d *Device) DrawArrays(mode glframe.DrawMode, first, count int32) {
	d.log("DrawArrays(%d, %d, %d)", mode, first, count)
}

// ClearColor implements glframe.Device.
func (d *Device) ClearColor(r, g, b, a float32) {
	d.log("ClearColor(%.2f, %.2f, %.2f, %.2f)", r, g, b, a)
}

// Clear implements glframe.Device.
func (d *Device) Clear(mask glframe.ClearMask) error {
	d.log("Clear(%d)", mask)
	return d.ClearErr
}

// Viewport implements glframe.Device.
func (d *Device) Viewport(x, y, width, height int32) {
	d.log("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

// CallCount returns how many logged calls have the given prefix.
func (d *Device) CallCount(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// ResetCalls clears the call log without touching ids or counters.
func (d *Device) ResetCalls() {
	d.Calls = d.Calls[:0]
}

var _ glframe.Device = (*Device)(nil)
