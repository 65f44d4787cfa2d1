package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
)

// Size is the board edge length. Only the 3x3 game is supported.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

type Mark uint8

const (
	EmptyCell Mark = iota
	MarkX
	MarkO
)

// Ordinal returns the hash digit of the mark: X=1, O=2, empty=3.
func (that Mark) Ordinal() (int, error) {
	switch that {
	case MarkX:
		return 1, nil
	case MarkO:
		return 2, nil
	case EmptyCell:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, that)
	}
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	case EmptyCell:
		return "-"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// Board is a row-major grid of marks. The zero value is the empty board.
// Boards are values: every transform returns a new board.
type Board [Size][Size]Mark

// CellID returns the 1-indexed row-major identifier of a cell.
func CellID(row, col int) int {
	return col + Size*row + 1
}

// ApplyMark returns a copy of the board with mark placed on (row, col).
func (that Board) ApplyMark(row, col int, mark Mark) (Board, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return that, fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if mark != MarkX && mark != MarkO {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidMark, mark)
	}

	if that[row][col] != EmptyCell {
		return that, apperror.ErrCellOccupied
	}

	that[row][col] = mark

	return that, nil
}

// Filled counts the non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				filled++
			}
		}
	}

	return filled
}

// Hash folds the cell ordinals in row-major order into a 9-digit decimal number.
func (that Board) Hash() (int, error) {
	result := 0
	for _, row := range that {
		for _, cell := range row {
			ordinal, err := cell.Ordinal()
			if err != nil {
				return 0, fmt.Errorf("failed to hash board: %w", err)
			}

			result = 10*result + ordinal
		}
	}

	return result, nil
}

// Rotate90 rotates the board a quarter turn counter-clockwise.
func (that Board) Rotate90() Board {
	var out Board
	for i := range Size {
		for j := range Size {
			out[i][j] = that[j][Size-1-i]
		}
	}

	return out
}

func (that Board) Rotate180() Board {
	return that.Rotate90().Rotate90()
}

func (that Board) Rotate270() Board {
	return that.Rotate90().Rotate90().Rotate90()
}

// ReflectHorizontal mirrors the board across its horizontal axis.
func (that Board) ReflectHorizontal() Board {
	var out Board
	for i := range Size {
		out[i] = that[Size-1-i]
	}

	return out
}

// ReflectVertical mirrors the board across its vertical axis.
func (that Board) ReflectVertical() Board {
	var out Board
	for i := range Size {
		for j := range Size {
			out[i][j] = that[i][Size-1-j]
		}
	}

	return out
}

// ReflectDiagMain transposes the board across the top-left to bottom-right diagonal.
func (that Board) ReflectDiagMain() Board {
	var out Board
	for i := range Size {
		for j := range Size {
			out[i][j] = that[j][i]
		}
	}

	return out
}

// ReflectDiagAnti transposes the board across the top-right to bottom-left diagonal.
func (that Board) ReflectDiagAnti() Board {
	var out Board
	for i := range Size {
		for j := range Size {
			out[i][j] = that[Size-1-j][Size-1-i]
		}
	}

	return out
}

func (that Board) String() string {
	var buf [Size*Size + Size - 1]byte
	pos := 0
	for i, row := range that {
		if i > 0 {
			buf[pos] = '/'
			pos++
		}
		for _, cell := range row {
			buf[pos] = cell.String()[0]
			pos++
		}
	}

	return string(buf[:])
}
