package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/minesweeper/internal/apperror"
	"github.com/rocketscienceinc/minesweeper/internal/entity"
	"github.com/rocketscienceinc/minesweeper/internal/usecase"
)

const (
	promptMineCount = "How many mines do you want on the field"
	promptMove      = "Set/unset mine marks or claim a cell as free:"
	hintMove        = "Expected: <column> <row> <free|mine>"

	messageWon  = "Congratulations! You found all the mines!"
	messageLost = "You stepped on a mine and failed!"
)

// Console is the line-oriented front end: it prompts, reads moves and draws the board.
type Console struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadMineCount - asks for the number of mines, falling back to defaultMines.
func (that *Console) ReadMineCount(defaultMines int) int {
	log := that.logger.With("method", "ReadMineCount")

	that.println(promptMineCount)

	line, err := that.readLine()
	if err != nil {
		log.Debug("no mine count given, using default", "error", err, "default", defaultMines)
		return defaultMines
	}

	count, err := parseMineCount(line)
	if err != nil {
		log.Debug("unparseable mine count, using default", "error", err, "default", defaultMines)
		return defaultMines
	}

	return count
}

// ReadMove - prompts once and keeps reading until a well-formed move arrives.
func (that *Console) ReadMove(fieldSize int) (entity.Move, error) {
	log := that.logger.With("method", "ReadMove")

	that.println(promptMove)

	for {
		line, err := that.readLine()
		if err != nil {
			return entity.Move{}, err
		}

		move, err := parseMove(line, fieldSize)
		if err != nil {
			log.Debug("malformed move", "line", line, "error", err)
			that.println(hintMove)
			continue
		}

		return move, nil
	}
}

// Run - the game loop: draw, check the outcome, read a move, apply it.
func (that *Console) Run(ctx context.Context, game usecase.GameUseCase, board boardView) error {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := Render(that.out, board); err != nil {
			return err
		}

		switch game.Status() {
		case entity.StatusWon:
			that.println(messageWon)
			return nil
		case entity.StatusLost:
			that.println(messageLost)
			return nil
		case entity.StatusOngoing:
		}

		move, err := that.ReadMove(board.Size())
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("input closed, leaving the game")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		if _, err = game.MakeTurn(ctx, move); err != nil {
			that.println(err.Error())
		}
	}
}

func (that *Console) readLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", apperror.ErrInputClosed
}

func (that *Console) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
