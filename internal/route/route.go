// Package route serialises a planned trajectory into the renderer's route
// file format: one "col,row" line per state, with the row axis flipped so
// the origin sits at the bottom-left as the external visualiser expects.
package route

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pvoss/raceline/internal/plan"
)

// Write emits one line per path state to w. gridRows is the track height,
// needed for the vertical flip: written row = gridRows - 1 - state row.
func Write(w io.Writer, path []plan.State, gridRows int) error {
	bw := bufio.NewWriter(w)
	for _, s := range path {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", s.Col, gridRows-1-s.Row); err != nil {
			return fmt.Errorf("write route point: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes the route to a file, creating or truncating it.
func WriteFile(name string, path []plan.State, gridRows int) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create route file: %w", err)
	}
	if err := Write(f, path, gridRows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close route file: %w", err)
	}
	return nil
}
