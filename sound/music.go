package sound

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/stagerunner/common"
)

// Player is the background music as the game loop sees it.
type Player interface {
	Resume()
	Pause()
	SetVolume(percent int)
	Close() error
}

// Music loops a PCM track through ebiten's audio context.
type Music struct {
	player *audio.Player
	volume float64
}

// NewMusic wraps pcm (16-bit little-endian stereo) in an endless loop.
func NewMusic(ctx *audio.Context, pcm []byte, volumePercent int) (*Music, error) {
	if ctx == nil {
		return nil, fmt.Errorf("sound: nil audio context")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("sound: create player: %w", err)
	}
	m := &Music{player: p}
	m.SetVolume(volumePercent)
	return m, nil
}

func (m *Music) Resume() {
	if m == nil || m.player == nil || m.player.IsPlaying() {
		return
	}
	m.player.Play()
}

func (m *Music) Pause() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Pause()
}

// SetVolume maps 0..100 onto the player's linear volume.
func (m *Music) SetVolume(percent int) {
	if m == nil {
		return
	}
	m.volume = VolumeScale(percent)
	if m.player != nil {
		m.player.SetVolume(m.volume)
	}
}

func (m *Music) Close() error {
	if m == nil || m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	return err
}

func VolumeScale(percent int) float64 {
	return float64(common.ClampInt(percent, 0, 100)) / 100
}

// Silent is a Player used when audio is unavailable, such as headless runs.
// It remembers what it was told so callers can be checked in tests.
type Silent struct {
	Playing bool
	Volume  int
	Closed  bool
}

func (s *Silent) Resume()               { s.Playing = true }
func (s *Silent) Pause()                { s.Playing = false }
func (s *Silent) SetVolume(percent int) { s.Volume = common.ClampInt(percent, 0, 100) }
func (s *Silent) Close() error {
	s.Playing = false
	s.Closed = true
	return nil
}
