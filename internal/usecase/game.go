package usecase

import (
	"context"

	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

// GameUseCase is what the console loop drives.
type GameUseCase interface {
	MakeTurn(ctx context.Context, move entity.Move) (entity.Status, error)
	Status() entity.Status
}
