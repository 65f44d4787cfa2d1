package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// Generate returns every successor of record reached by placing mark on an
// empty cell. Successors are in row-major order of the filled cell.
func Generate(record entity.GameRecord, mark entity.Mark) ([]entity.GameRecord, error) {
	successors := make([]entity.GameRecord, 0, max(0, entity.Cells-len(record.Path)))

	for row := range entity.Size {
		for col := range entity.Size {
			if record.Board[row][col] != entity.EmptyCell {
				continue
			}

			board, err := record.Board.ApplyMark(row, col, mark)
			if err != nil {
				return nil, fmt.Errorf("failed to generate turn: %w", err)
			}

			successors = append(successors, entity.GameRecord{
				Board: board,
				Path:  record.Path.Append(entity.CellID(row, col)),
			})
		}
	}

	return successors, nil
}

// MarkForPly returns whose turn it is on a 1-indexed ply. X plays odd plies.
func MarkForPly(ply int) entity.Mark {
	if ply%2 == 1 {
		return entity.MarkX
	}
	return entity.MarkO
}
