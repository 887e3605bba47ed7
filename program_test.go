package glframe_test

import (
	"errors"
	"testing"

	"github.com/gogpu/glframe"
	"github.com/gogpu/glframe/internal/gltest"
)

func newTestCache(dev *gltest.Device) *glframe.ProgramCache {
	reg := glframe.NewShaderRegistry(dev)
	return glframe.NewProgramCache(reg,
		glframe.VertexSource(vertSrc),
		glframe.FragmentSource(fragSrc))
}

func TestProgramCache_LinksOnce(t *testing.T) {
	dev := gltest.NewDevice()
	cache := newTestCache(dev)

	id1, err := cache.ProgramID(dev)
	if err != nil {
		t.Fatalf("ProgramID() = %v", err)
	}
	id2, err := cache.ProgramID(dev)
	if err != nil {
		t.Fatalf("second ProgramID() = %v", err)
	}

	if id1 != id2 {
		t.Errorf("memoized id changed: %d vs %d", id1, id2)
	}
	if dev.CompileCalls != 2 {
		t.Errorf("CompileCalls = %d, want 2 (one per stage)", dev.CompileCalls)
	}
	if dev.LinkCalls != 1 {
		t.Errorf("LinkCalls = %d, want 1", dev.LinkCalls)
	}
}

func TestProgramCache_CachesCompileFailure(t *testing.T) {
	dev := gltest.NewDevice()
	dev.FailCompile["not glsl at all"] = "0:1: unexpected token"
	reg := glframe.NewShaderRegistry(dev)
	cache := glframe.NewProgramCache(reg,
		glframe.VertexSource("not glsl at all"),
		glframe.FragmentSource(fragSrc))

	_, err1 := cache.ProgramID(dev)
	var compileErr *glframe.ShaderCompileError
	if !errors.As(err1, &compileErr) {
		t.Fatalf("ProgramID() = %v, want *ShaderCompileError", err1)
	}

	// The failure is terminal: no second compiler invocation.
	_, err2 := cache.ProgramID(dev)
	if !errors.Is(err2, err1) {
		t.Errorf("second failure = %v, want the identical cached error", err2)
	}
	if dev.CompileCalls != 1 {
		t.Errorf("CompileCalls = %d, want 1", dev.CompileCalls)
	}
	if dev.LinkCalls != 0 {
		t.Errorf("LinkCalls = %d, want 0", dev.LinkCalls)
	}
}

func TestProgramCache_FragmentFailureReleasesVertex(t *testing.T) {
	dev := gltest.NewDevice()
	dev.FailCompile["broken fragment"] = "0:2: undeclared identifier"
	reg := glframe.NewShaderRegistry(dev)
	cache := glframe.NewProgramCache(reg,
		glframe.VertexSource(vertSrc),
		glframe.FragmentSource("broken fragment"))

	if _, err := cache.ProgramID(dev); err == nil {
		t.Fatal("ProgramID() succeeded with a broken fragment shader")
	}

	// The acquired vertex shader was the only user; it must be gone.
	if len(dev.DeletedShaders) != 1 {
		t.Errorf("DeletedShaders = %v, want the orphaned vertex shader", dev.DeletedShaders)
	}
}

func TestProgramCache_CachesLinkFailure(t *testing.T) {
	dev := gltest.NewDevice()
	dev.FailLink = "varying mismatch"
	cache := newTestCache(dev)

	_, err := cache.ProgramID(dev)
	var linkErr *glframe.ProgramLinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("ProgramID() = %v, want *ProgramLinkError", err)
	}

	// Both handles were released; both shaders deleted.
	if len(dev.DeletedShaders) != 2 {
		t.Errorf("DeletedShaders = %v, want both stages released", dev.DeletedShaders)
	}

	if _, err2 := cache.ProgramID(dev); !errors.Is(err2, err) {
		t.Errorf("second failure = %v, want the cached error", err2)
	}
	if dev.LinkCalls != 1 {
		t.Errorf("LinkCalls = %d, want 1", dev.LinkCalls)
	}
}

func TestProgram_SharedShaderSurvivesHandleRelease(t *testing.T) {
	dev := gltest.NewDevice()
	reg := glframe.NewShaderRegistry(dev)
	src := glframe.VertexSource(vertSrc)

	// A program links against the shader while an external handle is live.
	vert, _ := reg.Acquire(src)
	frag, _ := reg.Acquire(glframe.FragmentSource(fragSrc))
	program, err := glframe.LinkProgram(dev, vert, frag)
	if err != nil {
		t.Fatalf("LinkProgram() = %v", err)
	}

	external, _ := reg.Acquire(src)
	external.Release()
	if len(dev.DeletedShaders) != 0 {
		t.Fatalf("shader deleted while the program still owns a handle: %v", dev.DeletedShaders)
	}

	// Releasing the program deletes it and, transitively, both shaders.
	program.Release(dev)
	if len(dev.DeletedPrograms) != 1 {
		t.Errorf("DeletedPrograms = %v, want one", dev.DeletedPrograms)
	}
	if len(dev.DeletedShaders) != 2 {
		t.Errorf("DeletedShaders = %v, want both stages", dev.DeletedShaders)
	}

	// Double release is a no-op.
	program.Release(dev)
	if len(dev.DeletedPrograms) != 1 {
		t.Errorf("double release deleted again: %v", dev.DeletedPrograms)
	}
}

func TestProgramCache_LazyBuffers(t *testing.T) {
	dev := gltest.NewDevice()
	cache := newTestCache(dev)

	vao := cache.VAO(dev)
	vbo := cache.VBO(dev)
	if vao == 0 || vbo == 0 {
		t.Fatalf("lazy ids not created: vao=%d vbo=%d", vao, vbo)
	}
	if cache.VAO(dev) != vao || cache.VBO(dev) != vbo {
		t.Error("lazy ids changed across calls")
	}
	if n := dev.CallCount("GenVertexArray"); n != 1 {
		t.Errorf("GenVertexArray calls = %d, want 1", n)
	}
	if n := dev.CallCount("GenBuffer"); n != 1 {
		t.Errorf("GenBuffer calls = %d, want 1", n)
	}
}

func TestProgramCache_Attrib(t *testing.T) {
	dev := gltest.NewDevice()
	dev.Attribs["position"] = 0
	cache := newTestCache(dev)

	loc, err := cache.Attrib(dev, "position")
	if err != nil {
		t.Fatalf("Attrib(position) = %v", err)
	}
	if loc != 0 {
		t.Errorf("location = %d, want 0", loc)
	}

	_, err = cache.Attrib(dev, "missing")
	var attribErr *glframe.AttribError
	if !errors.As(err, &attribErr) {
		t.Fatalf("Attrib(missing) = %v, want *AttribError", err)
	}
	if attribErr.Name != "missing" {
		t.Errorf("Name = %q, want %q", attribErr.Name, "missing")
	}
}

func TestProgramCache_Release(t *testing.T) {
	dev := gltest.NewDevice()
	cache := newTestCache(dev)

	id, err := cache.ProgramID(dev)
	if err != nil {
		t.Fatalf("ProgramID() = %v", err)
	}

	cache.Release(dev)
	if len(dev.DeletedPrograms) != 1 || dev.DeletedPrograms[0] != id {
		t.Errorf("DeletedPrograms = %v, want [%d]", dev.DeletedPrograms, id)
	}
	if len(dev.DeletedShaders) != 2 {
		t.Errorf("DeletedShaders = %v, want both stages", dev.DeletedShaders)
	}
}
