package glframe

// Color is a normalized RGBA color with components in [0, 1], the form
// the device's clear-color call consumes.
type Color struct {
	R, G, B, A float32
}

// RGBA8 builds a Color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// defaultBackground is applied on the first flush if the application
// never sets a color.
var defaultBackground = Color{R: 0.1, G: 0.1, B: 0.1, A: 0.9}

// trackedColor is a change-tracked color cell. Set replaces the value
// and marks it dirty; applyOnChange runs its consumer only while dirty,
// then clears the flag. A new cell starts dirty so the initial value is
// applied exactly once.
type trackedColor struct {
	value Color
	dirty bool
}

func newTrackedColor(c Color) trackedColor {
	return trackedColor{value: c, dirty: true}
}

// set replaces the value and marks the cell dirty, even when the new
// value equals the old one.
func (t *trackedColor) set(c Color) {
	t.value = c
	t.dirty = true
}

// applyOnChange invokes apply with the current value if the cell is
// dirty, then clears the flag.
func (t *trackedColor) applyOnChange(apply func(Color)) {
	if t.dirty {
		apply(t.value)
		t.dirty = false
	}
}
