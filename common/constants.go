package common

const (
	Title   = "stagerunner"
	Version = "v0.1.0"
)

// Window dimensions in logical pixels.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// Player sprite size.
const (
	PlayerWidth  = 38
	PlayerHeight = 48
)

// Physics tuning. Delta is the fixed simulation step in seconds.
const (
	Gravity          = 600.0
	Speed            = 200.0
	JumpStrength     = 350.0
	Delta            = 0.02
	TerminalVelocity = 200.0
	FloorY           = float64(BaseHeight - PlayerHeight)
)

// ScrollTicks is the number of ticks a stage scroll takes.
const ScrollTicks = 20

// DefaultFPS is the target tick rate when nothing else is configured.
const DefaultFPS = 60
