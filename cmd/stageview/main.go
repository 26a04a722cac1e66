// stageview previews stage layouts. Given a layout file it reloads the
// file whenever it changes on disk; without one it shows the built-in
// stages.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/stagerunner/assets"
	"github.com/milk9111/stagerunner/common"
	"github.com/milk9111/stagerunner/gfx"
	"github.com/milk9111/stagerunner/stages"
)

const reloadQuiet = 100 * time.Millisecond

type viewer struct {
	layout  *stages.Layout
	stage   int
	factory *gfx.EbitenFactory
	art     *assets.Art
	screen  *gfx.EbitenSurface
	reloads chan *stages.Layout
	errs    chan error
	logger  *log.Logger
}

func (v *viewer) Update() error {
	select {
	case l := <-v.reloads:
		v.layout = l
		v.stage = clampStage(v.stage, l.Count())
		v.logger.Info("layout reloaded", "stages", l.Count())
	case err := <-v.errs:
		v.logger.Warn("layout reload failed", "error", err)
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.stage = stepStage(v.stage, 1, v.layout.Count())
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.stage = stepStage(v.stage, -1, v.layout.Count())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.screen == nil || v.screen.Image() != screen {
		v.screen = v.factory.Wrap(screen)
	}
	v.screen.Clear(assets.SkyColor)
	v.layout.Paint(v.screen, v.stage, v.art.Background, assets.DecorationColor)
	v.screen.DrawText(fmt.Sprintf("Stage %d/%d", v.stage, v.layout.Count()), gfx.FontCounter, 10, 4, assets.DecorationColor)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// stepStage moves delta stages from cur, wrapping around.
func stepStage(cur, delta, count int) int {
	if count <= 0 {
		return 1
	}
	return (cur-1+delta%count+count)%count + 1
}

func clampStage(cur, count int) int {
	if count <= 0 {
		return 1
	}
	return common.ClampInt(cur, 1, count)
}

func loadLayout(path string) (*stages.Layout, error) {
	if path == "" {
		return stages.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stageview: read %s: %w", path, err)
	}
	return stages.Parse(data)
}

// watch reparses path after it has been quiet for reloadQuiet.
func (v *viewer) watch(path string) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	target := filepath.Clean(path)
	go func() {
		timer := time.NewTimer(reloadQuiet)
		timer.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				timer.Reset(reloadQuiet)
			case <-timer.C:
				l, err := loadLayout(path)
				if err != nil {
					v.errs <- err
					continue
				}
				v.reloads <- l
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				v.errs <- err
			}
		}
	}()
	return w.Close, nil
}

var rootCmd = &cobra.Command{
	Use:   "stageview [layout.yaml]",
	Short: "Preview stage layouts",
	Long: `stageview draws each stage of a layout file the way the game paints
it. Left/Right switch stages, Escape quits. Saving the file reloads it.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "stageview"})

		layout, err := loadLayout(path)
		if err != nil {
			return err
		}
		faces, err := assets.LoadFaces()
		if err != nil {
			return err
		}
		factory := gfx.NewEbitenFactory(faces)
		v := &viewer{
			layout:  layout,
			stage:   1,
			factory: factory,
			art:     assets.NewArt(factory),
			reloads: make(chan *stages.Layout, 1),
			errs:    make(chan error, 1),
			logger:  logger,
		}
		defer v.art.Dispose()

		if path != "" {
			stop, err := v.watch(path)
			if err != nil {
				logger.Warn("live reload disabled", "error", err)
			} else {
				defer stop()
			}
		}

		ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
		ebiten.SetWindowTitle("stageview")
		return ebiten.RunGame(v)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("stageview failed", "error", err)
		os.Exit(1)
	}
}
