package glframe

// Drawable is the capability an object implements to participate in the
// record phase. Record is called once per frame per live drawable.
//
// A Record implementation may acquire GPU handles through the device
// (compiling and linking lazily via its own caches) and push deferred
// commands into the context's queue. It must not execute GPU state
// changes or draw calls synchronously: everything visible happens at
// flush. Errors must surface from Record itself — pushed commands have
// no error channel.
type Drawable interface {
	Record(ctx *Context) error
}

// Context is the record-phase capability handed to drawables. It
// exposes the device for record-time resource acquisition and the
// deferred queue for everything else.
type Context struct {
	dev   Device
	queue *Queue
}

// Device returns the graphics device, for record-time resource calls
// only (compile, link, gen, attribute lookup).
func (c *Context) Device() Device { return c.dev }

// Push records one deferred command for this frame.
func (c *Context) Push(cmd Command) { c.queue.Push(cmd) }
