package glframe

// ShaderSource identifies a shader by its stage and GLSL text. It is a
// value type: two sources with the same kind and text name the same
// registry entry and therefore share one compiled object.
//
// The text is plain GLSL. No preprocessing, includes, or validation
// happens beyond what the driver compiler performs.
type ShaderSource struct {
	Kind   ShaderKind
	Source string
}

// VertexSource builds a vertex-stage shader source.
func VertexSource(src string) ShaderSource {
	return ShaderSource{Kind: VertexShader, Source: src}
}

// FragmentSource builds a fragment-stage shader source.
func FragmentSource(src string) ShaderSource {
	return ShaderSource{Kind: FragmentShader, Source: src}
}

// shaderEntry is the canonical record for one shader source. The
// registry owns it; handles are non-owning references into it.
type shaderEntry struct {
	id   uint32 // compiled object, 0 = uncompiled
	refs int    // live external handles
}

// ShaderRegistry is the compile-once resource table for shader objects.
//
// Acquire looks up or inserts the entry for a source, compiling it only
// when no handle currently references it, so a source is compiled at
// most once while in use and recompiled if requested again after every
// handle was released. Entries live for the registry's whole run; only
// the GPU objects come and go.
//
// A ShaderRegistry is single-threaded, like everything that touches the
// device: the check-then-compile step is not guarded.
type ShaderRegistry struct {
	dev     Device
	entries map[ShaderSource]*shaderEntry
}

// NewShaderRegistry creates an empty registry for a device.
func NewShaderRegistry(dev Device) *ShaderRegistry {
	return &ShaderRegistry{
		dev:     dev,
		entries: make(map[ShaderSource]*shaderEntry),
	}
}

// Acquire returns a handle to the compiled object for src, compiling it
// first if no live handle references it. On compiler rejection it
// returns the *ShaderCompileError and leaves the entry untouched, so a
// later Acquire retries against an unchanged state.
func (r *ShaderRegistry) Acquire(src ShaderSource) (*ShaderHandle, error) {
	entry, ok := r.entries[src]
	if !ok {
		entry = &shaderEntry{}
		r.entries[src] = entry
	}
	if entry.refs == 0 {
		id, err := r.dev.CompileShader(src.Kind, src.Source)
		if err != nil {
			return nil, err
		}
		entry.id = id
		Logger().Debug("compiled shader",
			"kind", src.Kind.String(), "id", id)
	}
	entry.refs++
	return &ShaderHandle{reg: r, src: src, entry: entry}, nil
}

// release drops one external reference; the last one out deletes the
// GPU object. The entry itself stays registered so the source can be
// recompiled later.
func (r *ShaderRegistry) release(e *shaderEntry, src ShaderSource) {
	if e.refs == 0 {
		Logger().Warn("release of already-released shader",
			"kind", src.Kind.String(), "id", e.id)
		return
	}
	e.refs--
	if e.refs == 0 {
		r.dev.DeleteShader(e.id)
		e.id = 0
	}
}

// ShaderHandle is a non-owning reference to a compiled shader object.
// Handles keep the object alive; releasing the last one deletes it.
// Release is idempotent per handle.
type ShaderHandle struct {
	reg      *ShaderRegistry
	src      ShaderSource
	entry    *shaderEntry
	released bool
}

// ID returns the compiled shader object id.
func (h *ShaderHandle) ID() uint32 { return h.entry.id }

// Kind returns the stage the shader targets.
func (h *ShaderHandle) Kind() ShaderKind { return h.src.Kind }

// Release unregisters this handle. When it was the last live handle for
// the source, the GPU shader object is deleted; the source can still be
// re-acquired, which recompiles. Releasing twice is a no-op.
func (h *ShaderHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.reg.release(h.entry, h.src)
}
