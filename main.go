// stagerunner is a small side-scrolling platformer whose runs can be
// spectated by other players through a relay server.
//
// Usage:
//
//	stagerunner                      - Start at the main menu
//	stagerunner --demo               - Watch the autopilot play
//	stagerunner --spectate <secret>  - Follow another player's game
//	stagerunner --headless --demo    - Run without a window
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/config"
	"github.com/milk9111/stagerunner/engine"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/input"
	"github.com/milk9111/stagerunner/loop"
	"github.com/milk9111/stagerunner/netsync"
	"github.com/milk9111/stagerunner/presence"
	"github.com/milk9111/stagerunner/screen"
	"github.com/milk9111/stagerunner/sound"
	"github.com/milk9111/stagerunner/stages"
)

type options struct {
	debug       bool
	demo        bool
	skipConnect bool
	spectate    string
	headless    bool
}

// startupError marks failures that happen before the window opens. They get
// a message box since there may be no terminal to read the log.
type startupError struct {
	err error
}

func (e *startupError) Error() string { return e.err.Error() }
func (e *startupError) Unwrap() error { return e.err }

// showError is replaced in tests.
var showError = errorBox

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

func execute(args []string, out io.Writer) int {
	opts := &options{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	if err := cmd.Execute(); err != nil {
		log.Error("stagerunner failed", "error", err)
		var se *startupError
		if errors.As(err, &se) && !opts.headless {
			showError(se.err)
		}
		return 1
	}
	return 0
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stagerunner",
		Short: "A side-scrolling platformer you can spectate",
		Long: `stagerunner is a small platformer. Walk off the edge of a stage to
scroll to the next one. Other players can follow your game live through
the relay server using your spectate secret (F2 copies it).

Controls:
  Left/Right  - Move
  Up          - Jump (press again in the air to double jump)
  Enter       - Select
  Escape      - Menu / back / quit
  F1          - Toggle counters`,
		Version:       common.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging and the FPS counter")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "Let the autopilot play")
	cmd.Flags().BoolVar(&opts.skipConnect, "skip-connect", false, "Do not register with the relay server at startup")
	cmd.Flags().StringVar(&opts.spectate, "spectate", "", "Follow the game with this spectate secret")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "Run without a window or audio")
	return cmd
}

func runGame(parent context.Context, flags *options) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return &startupError{err}
	}
	logger := engine.NewLogger(os.Stderr, flags.debug)

	faces, err := assets.LoadFaces()
	if err != nil {
		return &startupError{err}
	}
	layout, err := stages.Load()
	if err != nil {
		return &startupError{err}
	}

	store := config.NewStore(settings.OptionsPath)
	opts, err := store.Load()
	if err != nil {
		logger.Warn("using default options", "path", settings.OptionsPath, "error", err)
		opts = config.DefaultOptions()
	}

	secrets := presence.NewSecrets()
	ctx := engine.NewContext()
	ctx.Debug = flags.debug
	ctx.ShowCounter = flags.debug
	ctx.Demo = flags.demo
	ctx.Layout = layout
	ctx.Secrets = secrets
	ctx.Log = logger
	ctx.Store = store
	ctx.Clipboard = &presence.Clipboard{}
	ctx.Network = netsync.NewClient(netsync.TCPDialer(settings.DialTimeout), settings.ServerAddr(), settings.DialTimeout)

	if watcher, err := config.NewWatcher(store); err != nil {
		logger.Warn("options hot reload disabled", "error", err)
	} else {
		defer watcher.Close()
		ctx.Watcher = watcher
	}

	var (
		factory *gfx.EbitenFactory
		rec     *gfx.Recorder
	)
	if flags.headless {
		rec = gfx.NewRecorder()
		ctx.Factory = rec
		ctx.Music = &sound.Silent{}
	} else {
		factory = gfx.NewEbitenFactory(faces)
		ctx.Factory = factory
		music, err := sound.NewMusic(audio.NewContext(assets.SampleRate), assets.MusicPCM(), opts.Volume)
		if err != nil {
			logger.Warn("music disabled", "error", err)
			ctx.Music = &sound.Silent{}
		} else {
			ctx.Music = music
		}
		ctx.Presence = presence.NewDiscord(settings.PresenceAppID, secrets, logger)
	}
	ctx.Art = assets.NewArt(ctx.Factory)
	ctx.SetVolume(opts.Volume)

	if err := ctx.Presence.Init(); err != nil {
		logger.Debug("presence unavailable", "error", err)
	}

	switch {
	case flags.spectate != "":
		ctx.Spectate(flags.spectate)
	case flags.demo:
		ctx.Playing = true
		ctx.Mode = engine.ModeGame
	case !flags.skipConnect:
		if ctx.Connect() {
			ctx.ShowDialog("Connecting to the server...", "")
		}
	}
	logger.Info("starting", "version", common.Version, "relay", settings.ServerAddr(), "headless", flags.headless)

	machine := engine.NewMachine(ctx, screen.All(assets.BasicFace()))

	if flags.headless {
		runCtx, stop := signal.NotifyContext(parent, os.Interrupt)
		defer stop()
		err := loop.Run(runCtx, machine, input.Idle, rec.Screen(common.BaseWidth, common.BaseHeight), settings.FPS, loop.SystemClock)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	loop.ConfigureWindow(common.Title, settings.FPS)
	if err := ebiten.RunGame(loop.NewHost(machine, input.NewEbiten(), factory)); err != nil {
		return err
	}
	return nil
}
