package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

var (
	ErrMalformedMove = errors.New("malformed move")
	ErrMalformedMine = errors.New("malformed mine count")
)

// parseMove - "<column> <row> <free|mine>", 1-indexed, into a 0-indexed (row, column) move.
func parseMove(line string, fieldSize int) (entity.Move, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return entity.Move{}, fmt.Errorf("%w: expected 3 tokens, got %d", ErrMalformedMove, len(tokens))
	}

	col, err := parseCoordinate(tokens[0], fieldSize)
	if err != nil {
		return entity.Move{}, fmt.Errorf("column: %w", err)
	}

	row, err := parseCoordinate(tokens[1], fieldSize)
	if err != nil {
		return entity.Move{}, fmt.Errorf("row: %w", err)
	}

	action := strings.ToLower(tokens[2])
	if !entity.IsKnownAction(action) {
		return entity.Move{}, fmt.Errorf("%w: unknown action %q", ErrMalformedMove, tokens[2])
	}

	return entity.Move{Cell: entity.NewCell(row-1, col-1), Action: action}, nil
}

func parseCoordinate(token string, fieldSize int) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedMove, token)
	}

	if value < 1 || value > fieldSize {
		return 0, fmt.Errorf("%w: %d is outside 1..%d", ErrMalformedMove, value, fieldSize)
	}

	return value, nil
}

func parseMineCount(line string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedMine, err)
	}

	return count, nil
}
