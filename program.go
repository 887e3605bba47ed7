package glframe

// Program exclusively owns one vertex handle, one fragment handle, and
// the linked program object. A Program must outlive every drawable that
// recorded its id into a command: the id is only valid while the
// Program is unreleased.
type Program struct {
	vertex   *ShaderHandle
	fragment *ShaderHandle
	id       uint32
	released bool
}

// LinkProgram links the shaders behind the two handles into a program,
// taking ownership of both handles. On linker rejection the partially
// created program object is deleted, both handles are released again,
// and the *ProgramLinkError is returned.
func LinkProgram(dev Device, vertex, fragment *ShaderHandle) (*Program, error) {
	id, err := dev.LinkProgram(vertex.ID(), fragment.ID())
	if err != nil {
		vertex.Release()
		fragment.Release()
		return nil, err
	}
	return &Program{vertex: vertex, fragment: fragment, id: id}, nil
}

// ID returns the linked program object id.
func (p *Program) ID() uint32 { return p.id }

// Release deletes the program object and releases both shader handles,
// transitively deleting shader objects that no other program or handle
// still uses. Releasing twice is a no-op.
func (p *Program) Release(dev Device) {
	if p.released {
		return
	}
	p.released = true
	dev.DeleteProgram(p.id)
	p.id = 0
	p.vertex.Release()
	p.fragment.Release()
}

// cacheState is the lifecycle of one ProgramCache.
type cacheState uint8

const (
	cacheUninitialized cacheState = iota
	cacheLinked
	cacheFailed
)

// ProgramCache is a drawable's one-shot cache for a linked program and
// its lazily created vertex-array and buffer objects.
//
// Construction is cheap and requires no context; the compile and link
// cost is paid once, on the first ProgramID call — normally the
// drawable's first record. The first result, success or failure, is
// terminal: every later call returns the memoized id or the identical
// error without touching the compiler or linker, so a broken drawable
// fails the same way every frame instead of retrying.
type ProgramCache struct {
	registry *ShaderRegistry
	vertex   ShaderSource
	fragment ShaderSource

	state   cacheState
	program *Program
	err     error

	vao uint32
	vbo uint32
}

// NewProgramCache creates a cache for the given source pair. No device
// work happens here; a context does not need to exist yet.
func NewProgramCache(registry *ShaderRegistry, vertex, fragment ShaderSource) *ProgramCache {
	return &ProgramCache{registry: registry, vertex: vertex, fragment: fragment}
}

// ProgramID returns the linked program id, compiling and linking on
// first use. The outcome is memoized for the cache's lifetime.
func (c *ProgramCache) ProgramID(dev Device) (uint32, error) {
	switch c.state {
	case cacheLinked:
		return c.program.ID(), nil
	case cacheFailed:
		return 0, c.err
	}

	vert, err := c.registry.Acquire(c.vertex)
	if err != nil {
		c.state = cacheFailed
		c.err = err
		return 0, err
	}
	frag, err := c.registry.Acquire(c.fragment)
	if err != nil {
		vert.Release()
		c.state = cacheFailed
		c.err = err
		return 0, err
	}
	program, err := LinkProgram(dev, vert, frag)
	if err != nil {
		c.state = cacheFailed
		c.err = err
		return 0, err
	}
	c.state = cacheLinked
	c.program = program
	return program.ID(), nil
}

// VAO returns the cache's vertex array object, creating it on first
// use.
func (c *ProgramCache) VAO(dev Device) uint32 {
	if c.vao == 0 {
		c.vao = dev.GenVertexArray()
	}
	return c.vao
}

// VBO returns the cache's buffer object, creating it on first use.
func (c *ProgramCache) VBO(dev Device) uint32 {
	if c.vbo == 0 {
		c.vbo = dev.GenBuffer()
	}
	return c.vbo
}

// Attrib resolves a named vertex attribute in the cached program. It
// forces the first link if that has not happened yet and fails with the
// cached error afterwards; unknown names return an *AttribError.
func (c *ProgramCache) Attrib(dev Device, name string) (uint32, error) {
	id, err := c.ProgramID(dev)
	if err != nil {
		return 0, err
	}
	return dev.AttribLocation(id, name)
}

// Release frees the cached program, if any. The memoized link outcome
// stays terminal: a released cache does not relink. Lazy VAO/VBO ids
// are owned by the context and torn down with it.
func (c *ProgramCache) Release(dev Device) {
	if c.state == cacheLinked {
		c.program.Release(dev)
	}
}
