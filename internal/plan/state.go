package plan

import "github.com/pvoss/raceline/internal/track"

// State is one kinematic configuration of the car: grid position plus
// integer velocity. It is a plain value; two states compare equal iff all
// four fields match, which lets it serve directly as a map key and graph
// node identity.
type State struct {
	Row, Col   int
	VRow, VCol int
}

// Position returns the state's grid cell.
func (s State) Position() track.Pos {
	return track.Pos{Row: s.Row, Col: s.Col}
}

// Velocity returns the state's velocity components (row, col).
func (s State) Velocity() (int, int) {
	return s.VRow, s.VCol
}
