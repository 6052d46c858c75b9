package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/pvoss/raceline/internal/plan"
	"github.com/pvoss/raceline/internal/track"
)

// Snapshot rasterises the track and path into an RGBA image, one pixel per
// cell, then upscales by scale with nearest-neighbour so cell edges stay
// crisp. Path cells are painted over the terrain.
func Snapshot(grid *track.Grid, path []plan.State, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, grid.Cols(), grid.Rows()))
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			base.SetRGBA(c, r, cellColour(grid.CellAt(track.Pos{Row: r, Col: c})))
		}
	}
	pathCol := color.RGBA{R: 255, G: 200, B: 40, A: 255}
	for _, s := range path {
		base.SetRGBA(s.Col, s.Row, pathCol)
	}
	if scale == 1 {
		return base
	}
	dst := image.NewRGBA(image.Rect(0, 0, grid.Cols()*scale, grid.Rows()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteSnapshot saves the snapshot PNG to name.
func WriteSnapshot(name string, grid *track.Grid, path []plan.State, scale int) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, Snapshot(grid, path, scale)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
