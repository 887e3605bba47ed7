package glframe

// Key identifies a named key on the input surface. The windowing
// collaborator maps platform key codes onto these values before calling
// NoteInput.
type Key uint8

const (
	// KeyUnknown is a key the collaborator could not map.
	KeyUnknown Key = iota

	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyW
	KeyA
	KeyS
	KeyD

	KeyShift
	KeyControl
	KeyAlt
)

// keyNames maps Key values to their string representation.
var keyNames = [...]string{
	KeyUnknown:   "Unknown",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyShift:     "Shift",
	KeyControl:   "Control",
	KeyAlt:       "Alt",
}

// String returns the string representation of a Key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// EventKind identifies the type of a discrete input event.
type EventKind uint8

const (
	// EventKeyPress records that a key is pressed as of this frame.
	EventKeyPress EventKind = iota
)

// Event is one discrete input fact delivered by the windowing
// collaborator. Events are value types usable as set members.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyPress builds a key-press event for key k.
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyPress, Key: k}
}
