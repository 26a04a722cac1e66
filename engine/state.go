package engine

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/gfx"
)

type JumpState int

const (
	JumpGrounded JumpState = iota
	JumpFirst
	JumpSecond
	JumpFalling
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// PlayerState is the simulated player. Pos is the top-left corner of the
// sprite in window coordinates.
type PlayerState struct {
	Pos       cp.Vector
	VelocityY float64
	Jump      JumpState
	Facing    Facing
	Stage     int
	// LastStage is the last stage whose arrival has been committed.
	LastStage int
	DemoLeft  bool
	LastSent  cp.Vector
}

func NewPlayerState() PlayerState {
	return PlayerState{
		Pos:       cp.Vector{X: 30, Y: common.FloorY},
		Stage:     1,
		LastStage: 1,
	}
}

// Grounded reports whether the player stands on the floor.
func (p PlayerState) Grounded() bool {
	return p.Pos.Y >= common.FloorY
}

// StageTransition is an in-progress stage scroll. Front holds the stage being
// left and Back the stage being entered; both are valid exactly while Delta
// is non-zero.
type StageTransition struct {
	Delta        int
	ScrollOffset int
	Front        gfx.Surface
	Back         gfx.Surface
}

func (t StageTransition) Active() bool {
	return t.Delta != 0
}

// Release drops the cached buffers and ends the transition.
func (t *StageTransition) Release() {
	gfx.Dispose(t.Front, t.Back)
	t.Front, t.Back = nil, nil
	t.Delta = 0
	t.ScrollOffset = 0
}

type MenuState struct {
	Selected   int
	LastMouseX int
	LastMouseY int
}

type DialogState struct {
	Message string
	// Button is the label of the dismiss button. An empty label makes the
	// dialog non-dismissable.
	Button string
}

func (d DialogState) Dismissable() bool {
	return d.Button != ""
}

type OptionsState struct {
	Volume   int
	Dragging bool
}
