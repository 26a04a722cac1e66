package engine

// Mode is the active screen. The numbering is stable: 0 is always Exiting.
type Mode int

const (
	ModeExiting Mode = iota
	ModeGame
	ModeMenu
	ModeOptions
	ModeDialog
)

func (m Mode) String() string {
	switch m {
	case ModeExiting:
		return "exiting"
	case ModeGame:
		return "game"
	case ModeMenu:
		return "menu"
	case ModeOptions:
		return "options"
	case ModeDialog:
		return "dialog"
	default:
		return "unknown"
	}
}
