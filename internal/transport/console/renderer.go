package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper/internal/entity"
)

const (
	glyphMarked   = '*'
	glyphExploded = 'X'
	glyphZero     = '/'
	glyphUnknown  = '.'
)

type boardView interface {
	Size() int
	View(cell entity.Cell) entity.CellView
}

// Render - draws the board with 1-indexed row and column headers.
func Render(w io.Writer, board boardView) error {
	size := board.Size()
	labelWidth := len(strconv.Itoa(size))
	separator := strings.Repeat("-", labelWidth) + "|" + strings.Repeat("-", size) + "|\n"

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth) + "|")
	for col := 0; col < size; col++ {
		sb.WriteByte(byte('0' + (col+1)%10))
	}
	sb.WriteString("|\n")
	sb.WriteString(separator)

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%*d|", labelWidth, row+1)
		for col := 0; col < size; col++ {
			sb.WriteRune(glyph(board.View(entity.NewCell(row, col))))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func glyph(view entity.CellView) rune {
	switch view.State {
	case entity.CellMarked:
		return glyphMarked
	case entity.CellExploded:
		return glyphExploded
	case entity.CellRevealed:
		if view.Adjacent > 0 {
			return rune('0' + view.Adjacent)
		}
		return glyphZero
	default:
		return glyphUnknown
	}
}
