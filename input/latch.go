package input

// Latch guards one discrete action against repeating while its input stays
// held. A latch is set when the action fires and cleared only after every
// key in its group is released.
type Latch int

const (
	LatchEscape Latch = iota
	LatchOption
	LatchEnter
	LatchJump
	LatchCounter
	LatchCopy
	LatchMouse
	latchCount
)

var latchKeys = [latchCount][]Key{
	LatchEscape:  {KeyEscape},
	LatchOption:  {KeyUp, KeyDown},
	LatchEnter:   {KeyEnter},
	LatchJump:    {KeyUp},
	LatchCounter: {KeyCounter},
	LatchCopy:    {KeyCopySecret},
}

// Latches holds every latch flag.
type Latches struct {
	set [latchCount]bool
}

// Release clears each latch whose inputs are no longer held.
func (l *Latches) Release(s Snapshot) {
	if l == nil {
		return
	}
	for i := Latch(0); i < latchCount; i++ {
		if !l.set[i] {
			continue
		}
		if i == LatchMouse {
			if !s.MouseLeft {
				l.set[i] = false
			}
			continue
		}
		held := false
		for _, k := range latchKeys[i] {
			if s.Down(k) {
				held = true
				break
			}
		}
		if !held {
			l.set[i] = false
		}
	}
}

// Pressed reports whether k is held and latch is open, closing the latch
// when it is.
func (l *Latches) Pressed(s Snapshot, latch Latch, k Key) bool {
	if l == nil || latch < 0 || latch >= latchCount {
		return false
	}
	if !s.Down(k) || l.set[latch] {
		return false
	}
	l.set[latch] = true
	return true
}

// Clicked reports an unlatched left-button press, closing the mouse latch.
func (l *Latches) Clicked(s Snapshot) bool {
	if l == nil || !s.MouseLeft || l.set[LatchMouse] {
		return false
	}
	l.set[LatchMouse] = true
	return true
}

// Held reports whether latch is currently closed.
func (l *Latches) Held(latch Latch) bool {
	if l == nil || latch < 0 || latch >= latchCount {
		return false
	}
	return l.set[latch]
}
