package stages

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/stagerunner/gfx"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var StagesFS embed.FS

const DefaultFile = "stages.yaml"

var ErrNoStages = errors.New("stages: layout has no stages")

type Layout struct {
	Stages []Stage `yaml:"stages"`
}

type Stage struct {
	// Flip mirrors the background horizontally.
	Flip      bool       `yaml:"flip"`
	Triangles []Triangle `yaml:"triangles"`
}

type Triangle struct {
	X    float32   `yaml:"x"`
	Y    float32   `yaml:"y"`
	Size float32   `yaml:"size"`
	Dir  Direction `yaml:"dir"`
}

// Direction wraps gfx.Direction so layouts can spell it out.
type Direction gfx.Direction

func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		*d = Direction(gfx.DirUp)
	case "down":
		*d = Direction(gfx.DirDown)
	case "left":
		*d = Direction(gfx.DirLeft)
	case "right":
		*d = Direction(gfx.DirRight)
	default:
		return fmt.Errorf("stages: unknown direction %q at line %d", s, node.Line)
	}
	return nil
}

// Count is the number of playable stages.
func (l *Layout) Count() int {
	if l == nil {
		return 0
	}
	return len(l.Stages)
}

// Stage returns the 1-based stage n, or false when n is out of range.
func (l *Layout) Stage(n int) (Stage, bool) {
	if l == nil || n < 1 || n > len(l.Stages) {
		return Stage{}, false
	}
	return l.Stages[n-1], true
}

// Load reads the embedded layout.
func Load() (*Layout, error) {
	data, err := StagesFS.ReadFile(DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("stages: read %s: %w", DefaultFile, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("stages: unmarshal: %w", err)
	}
	if len(l.Stages) == 0 {
		return nil, ErrNoStages
	}
	return &l, nil
}

// Paint draws stage n into dst: the background (mirrored when the stage asks
// for it) followed by its decorations.
func (l *Layout) Paint(dst gfx.Surface, n int, background gfx.Surface, decoration color.Color) {
	st, ok := l.Stage(n)
	if !ok || dst == nil {
		return
	}
	if background != nil {
		dst.DrawSurface(background, 0, 0, st.Flip)
	}
	for _, tr := range st.Triangles {
		dst.FillTriangle(tr.X, tr.Y, tr.Size, gfx.Direction(tr.Dir), decoration)
	}
}
