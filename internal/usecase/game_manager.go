package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/minesweeper/internal/apperror"
	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

var ErrUnknownAction = errors.New("unknown action")

type board interface {
	Mark(cell entity.Cell) error
	Reveal(cell entity.Cell) error
	Status() entity.Status
	MineCount() int
	MarkedCount() int
}

type GameManager struct {
	logger *slog.Logger
	board  board
}

func NewGameManager(logger *slog.Logger, board board) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		board:  board,
	}
}

// MakeTurn - applies one move and reports the resulting status.
func (that *GameManager) MakeTurn(_ context.Context, move entity.Move) (entity.Status, error) {
	log := that.logger.With("method", "MakeTurn", "action", move.Action, "cell", move.Cell.String())

	if status := that.board.Status(); status.IsFinished() {
		return status, apperror.ErrGameFinished
	}

	var err error
	switch move.Action {
	case entity.ActionFree:
		err = that.board.Reveal(move.Cell)
	case entity.ActionMine:
		err = that.board.Mark(move.Cell)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, move.Action)
	}

	status := that.board.Status()
	if err != nil {
		log.Warn("move rejected", "error", err)
		return status, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "status", status, "marked", that.board.MarkedCount())

	if status.IsFinished() {
		log.Info("game finished", "status", status, "mines", that.board.MineCount())
	}

	return status, nil
}

func (that *GameManager) Status() entity.Status {
	return that.board.Status()
}
