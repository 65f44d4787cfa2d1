package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = MarkX
	o = MarkO
	e = EmptyCell
)

// allBoards returns every assignment of {empty, X, O} to the nine cells,
// including positions that cannot arise in play.
func allBoards() []Board {
	boards := make([]Board, 0, 19683)
	for n := range 19683 {
		var board Board
		rest := n
		for cell := range Cells {
			board[cell/Size][cell%Size] = Mark(rest % 3)
			rest /= 3
		}
		boards = append(boards, board)
	}

	return boards
}

func fixtureBoard() Board {
	return Board{
		{o, x, o},
		{x, x, o},
		{x, o, x},
	}
}

func TestBoard_Hash(t *testing.T) {
	t.Run("Matches the reference fixture", func(t *testing.T) {
		// Given: the reference board
		board := fixtureBoard()

		// When: hashing it
		hash, err := board.Hash()

		// Then: the digits follow X=1, O=2 in row-major order
		require.NoError(t, err)
		assert.Equal(t, 212112121, hash)
	})

	t.Run("Empty board hashes to all threes", func(t *testing.T) {
		hash, err := Board{}.Hash()

		require.NoError(t, err)
		assert.Equal(t, 333333333, hash)
	})

	t.Run("Distinct boards never share a hash", func(t *testing.T) {
		// Given: every board over the three cell values
		boards := allBoards()
		seen := make(map[int]Board, len(boards))

		// When: hashing all of them
		for _, board := range boards {
			hash, err := board.Hash()
			require.NoError(t, err)

			// Then: no hash is produced twice
			previous, ok := seen[hash]
			require.False(t, ok, "boards %s and %s collide on %d", previous, board, hash)
			seen[hash] = board
		}

		assert.Len(t, seen, len(boards))
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		// Given: a board holding a value outside the mark set
		board := Board{}
		board[1][1] = Mark(7)

		// When: hashing it
		_, err := board.Hash()

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_ApplyMark(t *testing.T) {
	t.Run("Returns a new board and leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: X plays the center
		next, err := board.ApplyMark(1, 1, MarkX)

		// Then: only the new board carries the mark
		require.NoError(t, err)
		assert.Equal(t, MarkX, next[1][1])
		assert.Equal(t, Board{}, board)
		assert.Equal(t, 1, next.Filled())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		board := Board{{x, e, e}, {e, e, e}, {e, e, e}}

		_, err := board.ApplyMark(0, 0, MarkO)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on cell outside the board", func(t *testing.T) {
		_, err := Board{}.ApplyMark(3, 0, MarkX)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = Board{}.ApplyMark(0, -1, MarkX)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on placing an empty mark", func(t *testing.T) {
		_, err := Board{}.ApplyMark(0, 0, EmptyCell)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_Rotate90(t *testing.T) {
	t.Run("Rotates the fixture counter-clockwise", func(t *testing.T) {
		// When: rotating the reference board once
		hash, err := fixtureBoard().Rotate90().Hash()

		// Then: the reference hash of the rotation is produced
		require.NoError(t, err)
		assert.Equal(t, 221112211, hash)
	})

	t.Run("Four rotations return the original board", func(t *testing.T) {
		for _, board := range allBoards() {
			require.Equal(t, board, board.Rotate90().Rotate90().Rotate90().Rotate90())
		}
	})

	t.Run("Rotate270 undoes Rotate90", func(t *testing.T) {
		for _, board := range allBoards() {
			require.Equal(t, board, board.Rotate90().Rotate270())
		}
	})
}

func TestBoard_Reflections(t *testing.T) {
	reflections := map[string]Transform{
		"horizontal": Board.ReflectHorizontal,
		"vertical":   Board.ReflectVertical,
		"diag main":  Board.ReflectDiagMain,
		"diag anti":  Board.ReflectDiagAnti,
	}

	for name, reflect := range reflections {
		t.Run(name+" is an involution", func(t *testing.T) {
			for _, board := range allBoards() {
				require.Equal(t, board, reflect(reflect(board)))
			}
		})
	}

	t.Run("Reflections move the expected corner", func(t *testing.T) {
		// Given: a board with a single X in the top-left corner
		board := Board{{x, e, e}, {e, e, e}, {e, e, e}}

		// Then: each reflection sends it to its mirrored corner
		assert.Equal(t, x, board.ReflectHorizontal()[2][0])
		assert.Equal(t, x, board.ReflectVertical()[0][2])
		assert.Equal(t, x, board.ReflectDiagMain()[0][0])
		assert.Equal(t, x, board.ReflectDiagAnti()[2][2])
	})
}

func TestBoard_CanonicalKey(t *testing.T) {
	t.Run("Reference fixture", func(t *testing.T) {
		// Given: the reference board and its three-quarter rotation
		board := fixtureBoard()

		// When: canonicalizing both
		key, err := board.CanonicalKey()
		require.NoError(t, err)

		rotatedKey, err := board.Rotate270().CanonicalKey()
		require.NoError(t, err)

		// Then: both share the orbit minimum, only the rotation attains it
		assert.Equal(t, CanonicalKey{Key: 112211122, IsSmallest: false}, key)
		assert.Equal(t, CanonicalKey{Key: 112211122, IsSmallest: true}, rotatedKey)
	})

	t.Run("Invariant under every symmetry", func(t *testing.T) {
		for _, board := range allBoards() {
			want, err := board.CanonicalKey()
			require.NoError(t, err)

			smallestSeen := false
			for _, transform := range Symmetries {
				got, err := transform(board).CanonicalKey()
				require.NoError(t, err)
				require.Equal(t, want.Key, got.Key, "board %s", board)

				smallestSeen = smallestSeen || got.IsSmallest
			}

			require.True(t, smallestSeen, "no image of %s attains the minimum", board)
		}
	})

	t.Run("Symmetric board is its own representative", func(t *testing.T) {
		board := Board{{e, e, e}, {e, x, e}, {e, e, e}}

		key, err := board.CanonicalKey()

		require.NoError(t, err)
		assert.Equal(t, CanonicalKey{Key: 333313333, IsSmallest: true}, key)
	})

	t.Run("Propagates invalid marks", func(t *testing.T) {
		board := Board{}
		board[0][2] = Mark(9)

		_, err := board.CanonicalKey()

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestCellID(t *testing.T) {
	assert.Equal(t, 1, CellID(0, 0))
	assert.Equal(t, 3, CellID(0, 2))
	assert.Equal(t, 5, CellID(1, 1))
	assert.Equal(t, 9, CellID(2, 2))
}
