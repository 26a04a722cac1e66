package input

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ebiten samples the keyboard, mouse and window state from ebiten.
type Ebiten struct{}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// counterKey is F1 on desktop builds and backquote in the browser, where F1
// is taken by the host page.
func counterKey() ebiten.Key {
	if runtime.GOOS == "js" {
		return ebiten.KeyBackquote
	}
	return ebiten.KeyF1
}

func (e *Ebiten) Sample() Snapshot {
	var s Snapshot
	s.keys[KeyLeft] = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	s.keys[KeyRight] = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	s.keys[KeyUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	s.keys[KeyDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	s.keys[KeyEnter] = ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyNumpadEnter)
	s.keys[KeyEscape] = ebiten.IsKeyPressed(ebiten.KeyEscape)
	s.keys[KeyCounter] = ebiten.IsKeyPressed(counterKey())
	s.keys[KeyCopySecret] = ebiten.IsKeyPressed(ebiten.KeyF2)

	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.Quit = ebiten.IsWindowBeingClosed()
	return s
}
