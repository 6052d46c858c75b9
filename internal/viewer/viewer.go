// Package viewer is the interactive diagnostic plot: the track raster, the
// precomputed planning fields and the planned trajectory, drawn in an
// ebiten window. It has no influence on planning results.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pvoss/raceline/internal/plan"
	"github.com/pvoss/raceline/internal/track"
)

const (
	cellPx      = 24 // on-screen pixels per track cell
	maxWindowPx = 1200
)

// Viewer displays a finished planning session.
type Viewer struct {
	grid   *track.Grid
	dist   *plan.DistField
	narrow *plan.NarrownessField
	path   []plan.State
	report string // plain-text session report, copied to clipboard on C

	showDist   bool
	showNarrow bool
	status     string
	prevKeys   map[ebiten.Key]bool
}

// New builds a viewer for the given session artifacts. report is whatever
// summary the caller wants on the clipboard when the user presses C.
func New(grid *track.Grid, dist *plan.DistField, narrow *plan.NarrownessField, path []plan.State, report string) *Viewer {
	return &Viewer{
		grid:     grid,
		dist:     dist,
		narrow:   narrow,
		path:     path,
		report:   report,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	w := v.grid.Cols() * cellPx
	h := v.grid.Rows()*cellPx + 40 // room for the status line
	if w > maxWindowPx {
		w = maxWindowPx
	}
	if h > maxWindowPx {
		h = maxWindowPx
	}
	ebiten.SetWindowTitle("raceline")
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(v)
}

// keyJustPressed reports a rising edge on k since the previous Update.
func (v *Viewer) keyJustPressed(k ebiten.Key) bool {
	cur := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = cur
	return cur && !was
}

func (v *Viewer) Update() error {
	if v.keyJustPressed(ebiten.KeyD) {
		v.showDist = !v.showDist
		v.showNarrow = false
	}
	if v.keyJustPressed(ebiten.KeyN) {
		v.showNarrow = !v.showNarrow
		v.showDist = false
	}
	if v.keyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(v.report); err != nil {
			v.status = fmt.Sprintf("clipboard: %v", err)
		} else {
			v.status = "report copied to clipboard"
		}
	}
	return nil
}

// cellColour picks the base raster colour for a cell type.
func cellColour(c track.Cell) color.RGBA {
	switch c {
	case track.CellWall:
		return color.RGBA{R: 20, G: 20, B: 20, A: 255}
	case track.CellGrass:
		return color.RGBA{R: 40, G: 90, B: 40, A: 255}
	case track.CellStart:
		return color.RGBA{R: 200, G: 60, B: 60, A: 255}
	case track.CellGoal:
		return color.RGBA{R: 60, G: 60, B: 200, A: 255}
	default: // road
		return color.RGBA{R: 190, G: 190, B: 185, A: 255}
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	// Base raster.
	for r := 0; r < v.grid.Rows(); r++ {
		for c := 0; c < v.grid.Cols(); c++ {
			p := track.Pos{Row: r, Col: c}
			col := cellColour(v.grid.CellAt(p))
			if v.showDist {
				col = fieldColour(col, v.dist.At(p), v.grid.Rows()+v.grid.Cols())
			}
			if v.showNarrow {
				win := v.narrow.Radius()*2 + 1
				col = fieldColour(col, v.narrow.At(p), win*win)
			}
			vector.DrawFilledRect(screen,
				float32(c*cellPx), float32(r*cellPx),
				cellPx, cellPx, col, false)
		}
	}

	// Path overlay: one stroked segment per transition.
	pathCol := color.RGBA{R: 255, G: 200, B: 40, A: 255}
	for i := 1; i < len(v.path); i++ {
		a, b := v.path[i-1], v.path[i]
		vector.StrokeLine(screen,
			float32(a.Col*cellPx+cellPx/2), float32(a.Row*cellPx+cellPx/2),
			float32(b.Col*cellPx+cellPx/2), float32(b.Row*cellPx+cellPx/2),
			2, pathCol, false)
	}

	msg := fmt.Sprintf("path=%d states | D dist overlay | N narrowness | C copy report", len(v.path))
	if v.status != "" {
		msg += " | " + v.status
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, v.grid.Rows()*cellPx+8)
}

// fieldColour tints an open cell by a field value, darker = higher.
// Walls and unreachable cells carry a negative value and keep the base
// colour.
func fieldColour(base color.RGBA, val, scale int) color.RGBA {
	if val < 0 {
		return base
	}
	if scale <= 0 {
		scale = 1
	}
	f := float64(val) / float64(scale)
	if f > 1 {
		f = 1
	}
	shade := uint8(220 - f*170)
	return color.RGBA{R: shade, G: shade, B: 80, A: 255}
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.grid.Cols() * cellPx, v.grid.Rows()*cellPx + 40
}
