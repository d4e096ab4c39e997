package ui

// Status is the readout shown by the HUD for the current board state.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
}
