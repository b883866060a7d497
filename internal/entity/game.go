package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

func (that Status) IsFinished() bool {
	return that == StatusWon || that == StatusLost
}

// CellState is what a player is allowed to know about a cell.
type CellState int

const (
	CellUnknown CellState = iota
	CellMarked
	CellRevealed
	CellExploded
)

// CellView - read-only projection of one cell for rendering.
type CellView struct {
	State    CellState
	Adjacent int
}
