package entity

import "fmt"

// Cell is a board coordinate, 0-indexed, in (row, column) order.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// In - reports whether the cell lies on a square board of the given side.
func (that Cell) In(size int) bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

// Less - row-major ordering.
func (that Cell) Less(other Cell) bool {
	if that.Row != other.Row {
		return that.Row < other.Row
	}
	return that.Col < other.Col
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
