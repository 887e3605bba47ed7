package glframe

// OutputKind identifies the type of a pending output command.
type OutputKind uint8

const (
	// OutputExit asks the driver to end the run loop.
	OutputExit OutputKind = iota

	// OutputCursorGrab asks the driver to grab or release the cursor.
	OutputCursorGrab

	// OutputCursorVisible asks the driver to show or hide the cursor.
	OutputCursorVisible
)

// outputKindNames maps OutputKind values to their string representation.
var outputKindNames = [...]string{
	OutputExit:          "Exit",
	OutputCursorGrab:    "CursorGrab",
	OutputCursorVisible: "CursorVisible",
}

// String returns the string representation of an OutputKind.
func (k OutputKind) String() string {
	if int(k) < len(outputKindNames) {
		return outputKindNames[k]
	}
	return "Unknown"
}

// OutputCommand is a request recorded this frame for the windowing
// collaborator: exit the loop, grab the cursor, or change cursor
// visibility. The collaborator consumes each command once and maps
// platform failures back into the error taxonomy.
type OutputCommand struct {
	Kind OutputKind

	// Enable carries the bool payload for OutputCursorGrab and
	// OutputCursorVisible.
	Enable bool
}

// Frame is the per-frame application state: accumulated input events,
// pending output commands, the change-tracked background color, the
// deferred command queue, and a sticky error status that short-circuits
// flushing.
//
// # Frame protocol
//
// The external driver owns the tick sequence:
//
//	frame.NoteInput(ev)          // merge this tick's input facts
//	frame.Record(drawable)       // once per live drawable
//	err := frame.Flush()         // execute deferred commands
//	cmds := frame.TakeOutputCommands()
//	// present, translate cmds, loop — or tear down when err != nil
//
// Frame is single-threaded: every method must be called from the thread
// that owns the graphics context.
type Frame struct {
	dev Device

	inputs map[Event]struct{}
	output []OutputCommand
	bg     trackedColor
	queue  *Queue
	status error
	ctx    Context
	cmdMem Arena[Command]
	outMem Arena[OutputCommand]
}

// New creates the frame state for a device.
func New(dev Device) *Frame {
	f := &Frame{
		dev:    dev,
		inputs: make(map[Event]struct{}),
		bg:     newTrackedColor(defaultBackground),
	}
	f.queue = NewQueue(&f.cmdMem)
	f.output = f.outMem.Alloc(4)
	f.ctx = Context{dev: dev, queue: f.queue}
	return f
}

// Record invokes the drawable's Record method with this frame's
// context. A returned error is stored in the sticky status: a later
// error overwrites an earlier one, a later success never clears one.
func (f *Frame) Record(d Drawable) {
	if err := d.Record(&f.ctx); err != nil {
		f.status = err
	}
}

// Fail stores an externally raised error (context creation, unsupported
// cursor mode) in the sticky status, funneling collaborator failures
// through the same channel as record errors.
func (f *Frame) Fail(err error) {
	if err != nil {
		f.status = err
	}
}

// Err returns the sticky status without consuming it.
func (f *Frame) Err() error { return f.status }

// Flush executes the frame against the device.
//
// If the sticky status holds an error, Flush returns it immediately: no
// clear, no queue drain, no device call of any kind. Otherwise it
// applies the background color if it changed, clears the color and
// depth buffers, and drains the queue in its LIFO order. The returned
// error is nil or the device error raised by the clearing step.
func (f *Frame) Flush() error {
	if f.status != nil {
		return f.status
	}
	f.bg.applyOnChange(func(c Color) {
		f.dev.ClearColor(c.R, c.G, c.B, c.A)
	})
	if err := f.dev.Clear(ClearColorBuffer | ClearDepthBuffer); err != nil {
		return err
	}
	f.queue.Drain(f.dev)
	return nil
}

// RequestExit appends an exit command for the driver. Multiple requests
// in one frame all surface; nothing is deduplicated.
func (f *Frame) RequestExit() {
	f.pushOutput(OutputCommand{Kind: OutputExit})
}

// RequestCursorGrab appends a cursor-grab command for the driver.
func (f *Frame) RequestCursorGrab(enable bool) {
	f.pushOutput(OutputCommand{Kind: OutputCursorGrab, Enable: enable})
}

// RequestCursorVisible appends a cursor-visibility command for the
// driver.
func (f *Frame) RequestCursorVisible(enable bool) {
	f.pushOutput(OutputCommand{Kind: OutputCursorVisible, Enable: enable})
}

func (f *Frame) pushOutput(c OutputCommand) {
	if len(f.output) == cap(f.output) {
		f.output = f.outMem.Grow(f.output)
	}
	f.output = append(f.output, c)
}

// TakeOutputCommands returns the accumulated output commands and starts
// a fresh list for the next frame. It is a destructive, single-consumer
// read: the returned slice stays valid for the driver while the frame
// accumulates into new arena storage.
func (f *Frame) TakeOutputCommands() []OutputCommand {
	out := f.output
	f.output = f.outMem.Alloc(4)
	return out
}

// SetBackgroundColor sets the clear color from 8-bit components and
// marks it for application on the next flush. Repeated calls between
// flushes coalesce into one device call using the latest value.
func (f *Frame) SetBackgroundColor(r, g, b, a uint8) {
	f.bg.set(RGBA8(r, g, b, a))
}

// NoteInput merges one input event into the frame's event set.
// Duplicate inserts are no-ops.
func (f *Frame) NoteInput(e Event) {
	f.inputs[e] = struct{}{}
}

// ResetInput clears the event set. The driver calls this when it
// rebuilds, rather than merges, the set for a new frame.
func (f *Frame) ResetInput() {
	clear(f.inputs)
}

// IsKeyPressed reports whether a key-press event for k is in the event
// set as of this frame. It never mutates state.
func (f *Frame) IsKeyPressed(k Key) bool {
	_, ok := f.inputs[KeyPress(k)]
	return ok
}

// Resize applies a viewport update in pixels. Zero-sized dimensions
// must be filtered by the caller before invoking Resize.
func (f *Frame) Resize(width, height int32) {
	f.dev.Viewport(0, 0, width, height)
}

// Release returns all frame-local arena memory for reuse. It is owned
// by the outer run loop as part of teardown; calling it mid-frame
// invalidates the queue and any un-taken output commands.
func (f *Frame) Release() {
	f.cmdMem.Reset()
	f.outMem.Reset()
	f.queue = NewQueue(&f.cmdMem)
	f.ctx.queue = f.queue
	f.output = f.outMem.Alloc(4)
}
