package console

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minesweeper/internal/apperror"
	"github.com/rocketscienceinc/minesweeper/internal/entity"
	"github.com/rocketscienceinc/minesweeper/internal/minesweeper"
	"github.com/rocketscienceinc/minesweeper/internal/usecase"
	"github.com/rocketscienceinc/minesweeper/testing/suite"
)

func newGame(t *testing.T, st *suite.Suite, mines ...entity.Cell) (*minesweeper.Board, *usecase.GameManager) {
	t.Helper()

	board, err := minesweeper.NewBoard(3, len(mines), minesweeper.WithMineLayout(mines...))
	require.NoError(t, err)

	return board, usecase.NewGameManager(st.Logger, board)
}

func TestConsole_ReadMineCount(t *testing.T) {
	t.Run("Parsed count", func(t *testing.T) {
		_, st := suite.New(t)
		console := New(st.Logger, st.Input("5"), st.Output)

		assert.Equal(t, 5, console.ReadMineCount(8))
		assert.Equal(t, promptMineCount+"\n", st.Output.String())
	})

	t.Run("Default on unparseable input", func(t *testing.T) {
		_, st := suite.New(t)
		console := New(st.Logger, st.Input("lots"), st.Output)

		assert.Equal(t, 8, console.ReadMineCount(8))
	})

	t.Run("Default on closed input", func(t *testing.T) {
		_, st := suite.New(t)
		console := New(st.Logger, st.Input(), st.Output)

		assert.Equal(t, 8, console.ReadMineCount(8))
	})
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Retries until the move is well formed", func(t *testing.T) {
		// Given: two bad lines followed by a good one
		_, st := suite.New(t)
		console := New(st.Logger, st.Input("hello", "1 2", "2 3 mine"), st.Output)

		// When: reading a move
		move, err := console.ReadMove(9)

		// Then: the good line is returned after two hints
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Cell: entity.NewCell(2, 1), Action: entity.ActionMine}, move)
		assert.Equal(t, 1, strings.Count(st.Output.String(), promptMove))
		assert.Equal(t, 2, strings.Count(st.Output.String(), hintMove))
	})

	t.Run("Error when input is closed", func(t *testing.T) {
		_, st := suite.New(t)
		console := New(st.Logger, st.Input("bad"), st.Output)

		_, err := console.ReadMove(9)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_Run(t *testing.T) {
	t.Run("Won game", func(t *testing.T) {
		// Given: a 3x3 board with one mine in the corner
		ctx, st := suite.New(t)
		board, game := newGame(t, st, entity.NewCell(2, 2))
		console := New(st.Logger, st.Input("1 1 free", "3 3 mine"), st.Output)

		// When: the player opens the board and flags the mine
		err := console.Run(ctx, game, board)

		// Then: the win message closes the output
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(st.Output.String(), lines(
			"3|/1*|",
			"-|---|",
			messageWon,
		)))
		assert.Equal(t, entity.StatusWon, game.Status())
	})

	t.Run("Lost game", func(t *testing.T) {
		// Given: a 3x3 board with a mine at the center of the top row
		ctx, st := suite.New(t)
		board, game := newGame(t, st, entity.NewCell(0, 1))
		console := New(st.Logger, st.Input("1 2 free", "2 1 free", "3 3 free"), st.Output)

		// When: the player steps on the mine on the second move
		err := console.Run(ctx, game, board)

		// Then: the loss message is printed and the last move is never read
		require.NoError(t, err)
		output := st.Output.String()
		assert.True(t, strings.HasSuffix(output, messageLost+"\n"))
		assert.Contains(t, output, "1|.X.|")
		assert.Equal(t, 2, strings.Count(output, promptMove))
	})

	t.Run("Malformed input is retried", func(t *testing.T) {
		ctx, st := suite.New(t)
		board, game := newGame(t, st, entity.NewCell(2, 2))
		console := New(st.Logger, st.Input("3 3", "x y mine", "3 3 mine"), st.Output)

		err := console.Run(ctx, game, board)

		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(st.Output.String(), hintMove))
		assert.Equal(t, entity.StatusWon, game.Status())
	})

	t.Run("Closed input ends the game quietly", func(t *testing.T) {
		ctx, st := suite.New(t)
		board, game := newGame(t, st, entity.NewCell(2, 2))
		console := New(st.Logger, st.Input("1 1 free"), st.Output)

		err := console.Run(ctx, game, board)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, game.Status())
		assert.NotContains(t, st.Output.String(), messageWon)
		assert.NotContains(t, st.Output.String(), messageLost)
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		_, st := suite.New(t)
		board, game := newGame(t, st, entity.NewCell(2, 2))
		console := New(st.Logger, st.Input("1 1 free"), st.Output)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := console.Run(ctx, game, board)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, st.Output.String())
	})
}
