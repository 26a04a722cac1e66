package input

// Key is a logical key tracked by the engine.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyCounter
	KeyCopySecret
	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyUp:         "up",
	KeyDown:       "down",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyCounter:    "counter",
	KeyCopySecret: "copy-secret",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Snapshot is the input state sampled once at the start of a tick.
type Snapshot struct {
	keys [keyCount]bool

	// MouseX/MouseY are the cursor position in logical pixels.
	MouseX int
	MouseY int
	// MouseLeft is true while the left button is held.
	MouseLeft bool
	// Quit is true when the window is being closed.
	Quit bool
}

// Down reports whether k is held.
func (s Snapshot) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k]
}

// With returns a copy of s with the given keys held.
func (s Snapshot) With(keys ...Key) Snapshot {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.keys[k] = true
		}
	}
	return s
}

// Without returns a copy of s with the given keys released.
func (s Snapshot) Without(keys ...Key) Snapshot {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.keys[k] = false
		}
	}
	return s
}

// Click returns a copy of s with the left button held at (x, y).
func (s Snapshot) Click(x, y int) Snapshot {
	s.MouseX = x
	s.MouseY = y
	s.MouseLeft = true
	return s
}

// Source samples input once per tick.
type Source interface {
	Sample() Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Snapshot

func (f SourceFunc) Sample() Snapshot {
	return f()
}

// Idle is a Source that never reports input.
var Idle Source = SourceFunc(func() Snapshot { return Snapshot{} })
