package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// WinCombos are the row-major cell indices of every line on the 3x3 board:
// three rows, three columns and the two diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func cellAt(board entity.Board, index int) entity.Mark {
	return board[index/entity.Size][index%entity.Size]
}

// WinsFor reports whether mark fills any full line of the board.
func WinsFor(board entity.Board, mark entity.Mark) (bool, error) {
	if mark != entity.MarkX && mark != entity.MarkO {
		return false, fmt.Errorf("%w: cannot win with %s", apperror.ErrInvalidMark, mark)
	}

	if err := validateBoard(board); err != nil {
		return false, err
	}

	for _, combo := range WinCombos {
		a, b, c := cellAt(board, combo[0]), cellAt(board, combo[1]), cellAt(board, combo[2])
		if a == mark && b == mark && c == mark {
			return true, nil
		}
	}

	return false, nil
}

// Classify derives the outcome of a record. X is checked before O so that a
// board with two winners resolves to X.
func Classify(record entity.GameRecord) (entity.Outcome, error) {
	wins, err := WinsFor(record.Board, entity.MarkX)
	if err != nil {
		return entity.OutcomeNonTerminal, fmt.Errorf("failed to classify record: %w", err)
	}

	if wins {
		return entity.OutcomeWinX, nil
	}

	wins, err = WinsFor(record.Board, entity.MarkO)
	if err != nil {
		return entity.OutcomeNonTerminal, fmt.Errorf("failed to classify record: %w", err)
	}

	if wins {
		return entity.OutcomeWinO, nil
	}

	// path length is the only full-board check
	if len(record.Path) == entity.Cells {
		return entity.OutcomeDraw, nil
	}

	return entity.OutcomeNonTerminal, nil
}

func validateBoard(board entity.Board) error {
	for _, row := range board {
		for _, cell := range row {
			if _, err := cell.Ordinal(); err != nil {
				return err
			}
		}
	}

	return nil
}
