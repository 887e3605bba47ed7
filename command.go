package glframe

// Op identifies the type of a deferred command.
// Each op corresponds to one GPU state change or draw call.
type Op uint8

const (
	// OpUseProgram makes a linked program current.
	OpUseProgram Op = iota

	// OpBindVertexArray makes a vertex array current.
	OpBindVertexArray

	// OpBindBuffer binds a buffer to a target.
	OpBindBuffer

	// OpBufferData uploads vertex data to the bound buffer.
	OpBufferData

	// OpEnableVertexAttrib enables an attribute location.
	OpEnableVertexAttrib

	// OpVertexAttribPointer sets an attribute fetch layout.
	OpVertexAttribPointer

	// OpDrawArrays issues a non-indexed draw call.
	OpDrawArrays
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpUseProgram:          "UseProgram",
	OpBindVertexArray:     "BindVertexArray",
	OpBindBuffer:          "BindBuffer",
	OpBufferData:          "BufferData",
	OpEnableVertexAttrib:  "EnableVertexAttrib",
	OpVertexAttribPointer: "VertexAttribPointer",
	OpDrawArrays:          "DrawArrays",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one deferred GPU operation, recorded during the record
// phase and executed at flush. It is a tagged variant: Op selects the
// operation and the fields it reads; unused fields are ignored.
//
// Commands carry no error channel. Anything that can fail (compiling,
// linking, attribute lookup) must happen while recording, before the
// command referencing the result is pushed.
type Command struct {
	// Op selects the operation.
	Op Op

	// ID is the program, vertex array, or buffer object, depending on Op.
	ID uint32

	// Target is the buffer binding point for OpBindBuffer and
	// OpBufferData.
	Target BufferTarget

	// Usage is the upload hint for OpBufferData.
	Usage BufferUsage

	// Data is the payload for OpBufferData. The slice must stay
	// untouched until the frame is flushed.
	Data []float32

	// Attrib is the fetch layout for OpVertexAttribPointer; its Location
	// field also serves OpEnableVertexAttrib.
	Attrib AttribPointer

	// Mode, First, Count parameterize OpDrawArrays.
	Mode  DrawMode
	First int32
	Count int32
}

// execute applies the command against the device.
func (c *Command) execute(dev Device) {
	switch c.Op {
	case OpUseProgram:
		dev.UseProgram(c.ID)
	case OpBindVertexArray:
		dev.BindVertexArray(c.ID)
	case OpBindBuffer:
		dev.BindBuffer(c.Target, c.ID)
	case OpBufferData:
		dev.BufferFloatData(c.Target, c.Data, c.Usage)
	case OpEnableVertexAttrib:
		dev.EnableVertexAttrib(c.Attrib.Location)
	case OpVertexAttribPointer:
		dev.VertexAttribPointer(c.Attrib)
	case OpDrawArrays:
		dev.DrawArrays(c.Mode, c.First, c.Count)
	}
}

// UseProgram returns a command that makes program id current.
func UseProgram(id uint32) Command {
	return Command{Op: OpUseProgram, ID: id}
}

// BindVertexArray returns a command that binds vertex array id.
func BindVertexArray(id uint32) Command {
	return Command{Op: OpBindVertexArray, ID: id}
}

// BindBuffer returns a command that binds buffer id to target.
func BindBuffer(target BufferTarget, id uint32) Command {
	return Command{Op: OpBindBuffer, ID: id, Target: target}
}

// BufferFloatData returns a command that uploads data to the buffer
// bound at target.
func BufferFloatData(target BufferTarget, data []float32, usage BufferUsage) Command {
	return Command{Op: OpBufferData, Target: target, Data: data, Usage: usage}
}

// EnableVertexAttrib returns a command that enables an attribute
// location.
func EnableVertexAttrib(location uint32) Command {
	return Command{Op: OpEnableVertexAttrib, Attrib: AttribPointer{Location: location}}
}

// SetVertexAttribPointer returns a command that sets an attribute fetch
// layout.
func SetVertexAttribPointer(ptr AttribPointer) Command {
	return Command{Op: OpVertexAttribPointer, Attrib: ptr}
}

// DrawArrays returns a command that issues a non-indexed draw call.
func DrawArrays(mode DrawMode, first, count int32) Command {
	return Command{Op: OpDrawArrays, Mode: mode, First: first, Count: count}
}
