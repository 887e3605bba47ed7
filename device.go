package glframe

// ShaderKind identifies the pipeline stage a shader source targets.
type ShaderKind uint8

const (
	// VertexShader marks GLSL source for the vertex stage.
	VertexShader ShaderKind = iota

	// FragmentShader marks GLSL source for the fragment stage.
	FragmentShader
)

// shaderKindNames maps ShaderKind values to their string representation.
var shaderKindNames = [...]string{
	VertexShader:   "Vertex",
	FragmentShader: "Fragment",
}

// String returns the string representation of a ShaderKind.
func (k ShaderKind) String() string {
	if int(k) < len(shaderKindNames) {
		return shaderKindNames[k]
	}
	return "Unknown"
}

// BufferTarget selects the binding point for buffer operations.
type BufferTarget uint8

const (
	// ArrayBuffer is the vertex attribute binding point.
	ArrayBuffer BufferTarget = iota

	// ElementArrayBuffer is the index buffer binding point.
	ElementArrayBuffer
)

// BufferUsage hints how uploaded buffer data will be accessed.
type BufferUsage uint8

const (
	// StaticDraw marks data written once and drawn many times.
	StaticDraw BufferUsage = iota

	// DynamicDraw marks data rewritten frequently.
	DynamicDraw

	// StreamDraw marks data rewritten every frame.
	StreamDraw
)

// DrawMode selects the primitive topology for draw calls.
type DrawMode uint8

const (
	// Triangles draws independent triangles from consecutive vertex triples.
	Triangles DrawMode = iota

	// TriangleStrip draws a connected strip of triangles.
	TriangleStrip

	// TriangleFan draws a fan of triangles sharing the first vertex.
	TriangleFan

	// Lines draws independent line segments.
	Lines

	// Points draws individual points.
	Points
)

// ClearMask selects which framebuffer planes a clear touches.
// Values can be combined with bitwise OR.
type ClearMask uint8

const (
	// ClearColorBuffer clears the color plane.
	ClearColorBuffer ClearMask = 1 << iota

	// ClearDepthBuffer clears the depth plane.
	ClearDepthBuffer
)

// AttribPointer describes the layout of one vertex attribute within a
// bound array buffer, mirroring glVertexAttribPointer.
type AttribPointer struct {
	// Location is the attribute location in the linked program.
	Location uint32

	// Size is the number of components per vertex (1-4).
	Size int32

	// Normalized converts integer data to [0,1]/[-1,1] on fetch.
	Normalized bool

	// Stride is the byte distance between consecutive vertices.
	// Zero means tightly packed.
	Stride int32

	// Offset is the byte offset of the first component.
	Offset int
}

// Device is the graphics context glframe renders against.
//
// glframe RECEIVES the device from the host application, it does NOT
// create one: the host brings up the context (and the window that owns
// it) and hands the device in, so drawables can be constructed before a
// context exists and resources are still created lazily on first use.
//
// The method set splits into two groups matching the two frame phases:
//
//   - Record-time resource calls (CompileShader, LinkProgram, GenVertexArray,
//     GenBuffer, AttribLocation, the Delete* calls). These may fail and the
//     failure surfaces to the caller immediately.
//   - Flush-time state and draw calls (everything else). These have no
//     error channel; a deferred command that could fail must be validated
//     while recording.
//
// Device implementations are not safe for concurrent use. All calls must
// come from the thread that owns the underlying context.
type Device interface {
	// CompileShader compiles GLSL source for the given stage and returns
	// the shader object id. On rejection it returns a *ShaderCompileError
	// carrying the driver's info log.
	CompileShader(kind ShaderKind, source string) (uint32, error)

	// DeleteShader releases a shader object. Deleting id 0 is a no-op.
	DeleteShader(id uint32)

	// LinkProgram attaches the compiled vertex and fragment shaders,
	// links, and returns the program id. On rejection it returns a
	// *ProgramLinkError carrying the driver's info log, and the partially
	// created program object has been deleted.
	LinkProgram(vertex, fragment uint32) (uint32, error)

	// DeleteProgram releases a program object. Deleting id 0 is a no-op.
	DeleteProgram(id uint32)

	// GenVertexArray creates a vertex array object.
	GenVertexArray() uint32

	// GenBuffer creates a buffer object.
	GenBuffer() uint32

	// AttribLocation resolves a named attribute in a linked program.
	// Unknown names return an *AttribError.
	AttribLocation(program uint32, name string) (uint32, error)

	// UseProgram makes a program current.
	UseProgram(id uint32)

	// BindVertexArray makes a vertex array current.
	BindVertexArray(id uint32)

	// BindBuffer binds a buffer to a target.
	BindBuffer(target BufferTarget, id uint32)

	// BufferFloatData uploads float32 data to the bound buffer.
	BufferFloatData(target BufferTarget, data []float32, usage BufferUsage)

	// EnableVertexAttrib enables an attribute location for the bound
	// vertex array.
	EnableVertexAttrib(location uint32)

	// VertexAttribPointer sets the fetch layout for an attribute from the
	// bound array buffer.
	VertexAttribPointer(ptr AttribPointer)

	// DrawArrays issues a non-indexed draw call.
	DrawArrays(mode DrawMode, first, count int32)

	// ClearColor sets the color the next Clear writes.
	ClearColor(r, g, b, a float32)

	// Clear clears the selected framebuffer planes. It returns the first
	// error the device raised for the clearing step, if any.
	Clear(mask ClearMask) error

	// Viewport sets the pixel rectangle rendered into.
	Viewport(x, y, width, height int32)
}
