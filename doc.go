// Package glframe is a minimal real-time rendering front end for OpenGL.
//
// # Overview
//
// glframe sits between an application's drawable objects and a single
// OpenGL context. Each frame it collects draw requests during a record
// phase, defers them as typed GPU commands backed by a frame arena, and
// executes the whole batch at a single flush point. Shader and program
// objects are compiled at most once and shared across drawables through a
// reference-tracked registry.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glframe"
//	    _ "github.com/gogpu/glframe/opengl" // registers the OpenGL device
//	)
//
//	dev, _ := glframe.DefaultDevice()
//	frame := glframe.New(dev)
//	frame.SetBackgroundColor(25, 25, 25, 230)
//
//	// Once per tick, driven by the windowing collaborator:
//	frame.Record(triangle)         // drawables enqueue deferred commands
//	if err := frame.Flush(); err != nil {
//	    // sticky: the run loop should tear down
//	}
//	// ... swap buffers, pump events ...
//
// # Architecture
//
// The library is organized into:
//   - Frame state: Frame, OutputCommand, Event (frame.go, key.go)
//   - Deferred pipeline: Command, Queue, Arena (command.go, queue.go, arena.go)
//   - Resource lifecycle: ShaderRegistry, ShaderHandle, Program,
//     ProgramCache (shader.go, program.go)
//   - Device: the Device interface plus a named-backend registry
//     (device.go, registry.go); the real backend lives in opengl/
//
// # Threading
//
// glframe is single-threaded by contract. Every method on Frame,
// ShaderRegistry, and Device must be called from the thread that owns the
// GL context. See the Frame documentation for the full frame protocol.
package glframe
