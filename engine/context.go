package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/config"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
	"github.com/milk9111/stagerunner/netsync"
	"github.com/milk9111/stagerunner/presence"
	"github.com/milk9111/stagerunner/sound"
	"github.com/milk9111/stagerunner/stages"
)

// Network is the relay connection as the engine uses it.
type Network interface {
	Connected() bool
	Send(s netsync.Sample) error
	Latest() (netsync.Sample, bool)
	StartHandshake(kind netsync.Kind, secret string) bool
	Poll() (netsync.Event, bool)
	Close() error
}

// OptionsStore persists options on shutdown.
type OptionsStore interface {
	Save(opts config.Options) error
}

// OptionsSource delivers options edited outside the game.
type OptionsSource interface {
	Poll() (config.Options, bool)
	PollError() error
}

type Clipboard interface {
	Copy(s string) error
}

// Context is the whole engine state. It is owned by the goroutine driving the
// loop; collaborators hand results back through non-blocking polls.
type Context struct {
	Mode     Mode
	PrevMode Mode

	Playing     bool
	Demo        bool
	Spectating  bool
	Debug       bool
	ShowCounter bool

	Player     PlayerState
	Transition StageTransition
	Menu       MenuState
	Dialog     DialogState
	Options    OptionsState

	Input   input.Snapshot
	Latches input.Latches

	Layout  *stages.Layout
	Art     *assets.Art
	Factory gfx.Factory
	Secrets presence.Secrets

	Network   Network
	Presence  presence.Service
	Music     sound.Player
	Store     OptionsStore
	Watcher   OptionsSource
	Clipboard Clipboard

	Log *log.Logger
	Now func() time.Time
}

// NewContext returns a context in its startup state: Menu, nothing playing,
// no collaborators.
func NewContext() *Context {
	return &Context{
		Mode:     ModeMenu,
		PrevMode: ModeExiting,
		Player:   NewPlayerState(),
		Menu:     MenuState{Selected: 1},
		Options:  OptionsState{Volume: config.DefaultVolume},
		Presence: presence.Nop{},
		Log:      NewLogger(io.Discard, false),
		Now:      time.Now,
	}
}

// NewLogger builds the game's logger. Debug enables debug-level output.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          common.Title,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// StageCount is the number of stages in the loaded layout.
func (c *Context) StageCount() int {
	return c.Layout.Count()
}

// Connected reports whether a relay session is established.
func (c *Context) Connected() bool {
	return c.Network != nil && c.Network.Connected()
}

// ShowDialog switches to the dialog screen. An empty button makes the dialog
// non-dismissable.
func (c *Context) ShowDialog(message, button string) {
	c.Dialog = DialogState{Message: message, Button: button}
	c.Mode = ModeDialog
}

// Connect starts registering this game with the relay so it can be
// spectated. It reports whether an attempt was started.
func (c *Context) Connect() bool {
	if c.Network == nil {
		return false
	}
	started := c.Network.StartHandshake(netsync.KindConnect, c.Secrets.Spectate)
	if started {
		c.Log.Debug("connecting to relay")
	}
	return started
}

// Spectate starts following the game identified by secret.
func (c *Context) Spectate(secret string) bool {
	if c.Network == nil {
		return false
	}
	if !c.Network.StartHandshake(netsync.KindListen, secret) {
		return false
	}
	c.ShowDialog("Connecting to the server...", "")
	return true
}

// SetPresence publishes the player's activity.
func (c *Context) SetPresence(state, details string) {
	if c.Presence == nil {
		return
	}
	c.Presence.Update(presence.Activity{State: state, Details: details})
}

// GameDetails describes what the player is doing in the game screen.
func (c *Context) GameDetails() string {
	switch {
	case c.Spectating:
		return "Spectating someone"
	case c.Demo:
		return "Watching demo"
	default:
		return fmt.Sprintf("Stage %d", c.Player.Stage)
	}
}

// SetVolume applies a volume to the music and the in-memory options.
func (c *Context) SetVolume(v int) {
	v = common.ClampInt(v, 0, 100)
	c.Options.Volume = v
	if c.Music != nil {
		c.Music.SetVolume(v)
	}
}

// OptionsSnapshot is the options as they would be persisted.
func (c *Context) OptionsSnapshot() config.Options {
	return config.Options{Volume: c.Options.Volume}
}
