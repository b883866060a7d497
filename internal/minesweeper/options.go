package minesweeper

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

var ErrUnknownWinRule = errors.New("unknown win rule")

// WinRule decides when a board counts as won.
type WinRule string

const (
	// WinByCount - as many flags as mines, wherever they are.
	WinByCount WinRule = "count"
	// WinByExactMarks - flags sit exactly on the mines.
	WinByExactMarks WinRule = "exact"
)

func ParseWinRule(value string) (WinRule, error) {
	switch rule := WinRule(value); rule {
	case WinByCount, WinByExactMarks:
		return rule, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWinRule, value)
	}
}

// won - a board without mines can never be won. Under WinByExactMarks the mines must be placed already.
func (that WinRule) won(board *Board) bool {
	if board.mineCount == 0 {
		return false
	}

	if that == WinByExactMarks {
		if len(board.mines) != board.mineCount || len(board.marked) != len(board.mines) {
			return false
		}

		for mine := range board.mines {
			if !board.marked.has(mine) {
				return false
			}
		}

		return true
	}

	return board.mineCount == len(board.marked)
}

type Option func(*Board)

func WithRand(rng *rand.Rand) Option {
	return func(board *Board) {
		board.rng = rng
	}
}

// WithSeed - reproducible mine placement.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithMineLayout - forces the mines into the given cells on the first reveal.
func WithMineLayout(mines ...entity.Cell) Option {
	return func(board *Board) {
		board.layout = append([]entity.Cell{}, mines...)
	}
}

func WithWinRule(rule WinRule) Option {
	return func(board *Board) {
		board.winRule = rule
	}
}
