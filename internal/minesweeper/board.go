package minesweeper

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/minesweeper/internal/apperror"
	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

var (
	ErrInvalidFieldSize  = errors.New("field size must be positive")
	ErrInvalidMineCount  = errors.New("mine count must leave at least one safe cell")
	ErrInvalidMineLayout = errors.New("invalid mine layout")
)

type cellSet map[entity.Cell]struct{}

func (that cellSet) has(cell entity.Cell) bool {
	_, ok := that[cell]
	return ok
}

func (that cellSet) sorted() []entity.Cell {
	cells := make([]entity.Cell, 0, len(that))
	for cell := range that {
		cells = append(cells, cell)
	}

	slices.SortFunc(cells, func(a, b entity.Cell) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return cells
}

// Board owns the whole game state. It is not safe for concurrent use.
type Board struct {
	fieldSize int
	mineCount int
	winRule   WinRule

	rng    *rand.Rand
	layout []entity.Cell

	mines    cellSet
	marked   cellSet
	explored cellSet

	lost bool
}

// NewBoard - creates an empty square board. Mines are placed on the first reveal.
func NewBoard(fieldSize, mineCount int, opts ...Option) (*Board, error) {
	if fieldSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFieldSize, fieldSize)
	}

	if mineCount < 0 || mineCount >= fieldSize*fieldSize {
		return nil, fmt.Errorf("%w: %d mines on %dx%d", ErrInvalidMineCount, mineCount, fieldSize, fieldSize)
	}

	board := &Board{
		fieldSize: fieldSize,
		mineCount: mineCount,
		winRule:   WinByCount,
		mines:     cellSet{},
		marked:    cellSet{},
		explored:  cellSet{},
	}

	for _, opt := range opts {
		opt(board)
	}

	if board.rng == nil {
		board.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game randomness
	}

	if err := board.validateLayout(); err != nil {
		return nil, err
	}

	return board, nil
}

// Mark - toggles the flag on a cell.
func (that *Board) Mark(cell entity.Cell) error {
	if err := that.checkMove(cell); err != nil {
		return err
	}

	if that.marked.has(cell) {
		delete(that.marked, cell)
	} else {
		that.marked[cell] = struct{}{}
	}

	return nil
}

// Reveal - claims a cell as free. The first reveal of a game is always safe.
func (that *Board) Reveal(cell entity.Cell) error {
	if err := that.checkMove(cell); err != nil {
		return err
	}

	if len(that.explored) == 0 {
		that.placeMines(cell)
	}

	if that.mines.has(cell) {
		that.lost = true
		for mine := range that.mines {
			that.explored[mine] = struct{}{}
		}

		return nil
	}

	that.explore(cell)

	return nil
}

// explore - breadth-first flood fill. Numbered cells are revealed but not expanded.
func (that *Board) explore(start entity.Cell) {
	queue := []entity.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		delete(that.marked, current)
		that.explored[current] = struct{}{}

		if that.AdjacentMineCount(current) > 0 {
			continue
		}

		for _, neighbor := range that.Neighbors(current) {
			if !that.explored.has(neighbor) {
				queue = append(queue, neighbor)
			}
		}
	}
}

func (that *Board) placeMines(excluding entity.Cell) {
	if that.layout != nil {
		for _, mine := range that.layout {
			that.mines[mine] = struct{}{}
		}

		return
	}

	for len(that.mines) != that.mineCount {
		mine := entity.NewCell(that.rng.IntN(that.fieldSize), that.rng.IntN(that.fieldSize))
		if mine == excluding {
			continue
		}

		that.mines[mine] = struct{}{}
	}
}

// AdjacentMineCount - number of mines among the cell's neighbors.
func (that *Board) AdjacentMineCount(cell entity.Cell) int {
	count := 0
	for _, neighbor := range that.Neighbors(cell) {
		if that.mines.has(neighbor) {
			count++
		}
	}

	return count
}

// Neighbors - in-bounds cells at Chebyshev distance 1, row-major.
func (that *Board) Neighbors(cell entity.Cell) []entity.Cell {
	neighbors := make([]entity.Cell, 0, 8)

	for row := cell.Row - 1; row <= cell.Row+1; row++ {
		for col := cell.Col - 1; col <= cell.Col+1; col++ {
			neighbor := entity.NewCell(row, col)
			if neighbor == cell || !neighbor.In(that.fieldSize) {
				continue
			}

			neighbors = append(neighbors, neighbor)
		}
	}

	return neighbors
}

func (that *Board) IsLost() bool {
	return that.lost
}

func (that *Board) IsWon() bool {
	return that.winRule.won(that)
}

func (that *Board) Status() entity.Status {
	switch {
	case that.IsLost():
		return entity.StatusLost
	case that.IsWon():
		return entity.StatusWon
	default:
		return entity.StatusOngoing
	}
}

// View - what the player sees at a cell. A flag hides everything underneath it.
func (that *Board) View(cell entity.Cell) entity.CellView {
	switch {
	case that.marked.has(cell):
		return entity.CellView{State: entity.CellMarked}
	case !that.explored.has(cell):
		return entity.CellView{State: entity.CellUnknown}
	case that.mines.has(cell):
		return entity.CellView{State: entity.CellExploded}
	default:
		return entity.CellView{State: entity.CellRevealed, Adjacent: that.AdjacentMineCount(cell)}
	}
}

func (that *Board) Size() int {
	return that.fieldSize
}

func (that *Board) MineCount() int {
	return that.mineCount
}

func (that *Board) MarkedCount() int {
	return len(that.marked)
}

func (that *Board) Mines() []entity.Cell {
	return that.mines.sorted()
}

func (that *Board) Marked() []entity.Cell {
	return that.marked.sorted()
}

func (that *Board) Explored() []entity.Cell {
	return that.explored.sorted()
}

func (that *Board) checkMove(cell entity.Cell) error {
	if that.Status().IsFinished() {
		return apperror.ErrGameFinished
	}

	if !cell.In(that.fieldSize) {
		return fmt.Errorf("%w: %s on %dx%d board", apperror.ErrOutOfBounds, cell, that.fieldSize, that.fieldSize)
	}

	return nil
}

func (that *Board) validateLayout() error {
	if that.layout == nil {
		return nil
	}

	if len(that.layout) != that.mineCount {
		return fmt.Errorf("%w: %d mines for mine count %d", ErrInvalidMineLayout, len(that.layout), that.mineCount)
	}

	seen := cellSet{}
	for _, mine := range that.layout {
		if !mine.In(that.fieldSize) {
			return fmt.Errorf("%w: %w: %s", ErrInvalidMineLayout, apperror.ErrOutOfBounds, mine)
		}

		if seen.has(mine) {
			return fmt.Errorf("%w: duplicate mine %s", ErrInvalidMineLayout, mine)
		}

		seen[mine] = struct{}{}
	}

	return nil
}
