package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/minesweeper/internal/config"
	"github.com/rocketscienceinc/minesweeper/internal/minesweeper"
	"github.com/rocketscienceinc/minesweeper/internal/transport/console"
	"github.com/rocketscienceinc/minesweeper/internal/usecase"
)

// RunApp - runs one game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	cli := console.New(logger, in, out)
	mineCount := cli.ReadMineCount(conf.DefaultMines)

	board, err := minesweeper.NewBoard(conf.FieldSize, mineCount, conf.BoardOptions()...)
	if errors.Is(err, minesweeper.ErrInvalidMineCount) && mineCount != conf.DefaultMines {
		log.Warn("mine count does not fit the field, using default", "mines", mineCount, "default", conf.DefaultMines)
		if _, werr := fmt.Fprintf(out, "Using %d mines instead\n", conf.DefaultMines); werr != nil {
			return fmt.Errorf("failed to write output: %w", werr)
		}

		board, err = minesweeper.NewBoard(conf.FieldSize, conf.DefaultMines, conf.BoardOptions()...)
	}
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	log.Info("Starting game", "field_size", conf.FieldSize, "mines", board.MineCount(), "win_rule", conf.WinRule)

	game := usecase.NewGameManager(logger, board)
	if err = cli.Run(ctx, game, board); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game over", "status", game.Status())

	return nil
}
