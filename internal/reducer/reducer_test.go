package reducer

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.EmptyCell
)

func TestReduce(t *testing.T) {
	t.Run("Rotated boards share a class", func(t *testing.T) {
		// Given: X wins on the top row and, in a rotated game, on the left column
		top := entity.GameRecord{
			Board: entity.Board{{x, x, x}, {o, o, e}, {e, e, e}},
			Path:  entity.Path{1, 4, 2, 5, 3},
		}
		left := entity.GameRecord{
			Board: entity.Board{{x, e, e}, {x, o, e}, {x, o, e}},
			Path:  entity.Path{7, 8, 4, 5, 1},
		}

		// When: reducing them in both orders
		forward, err := Reduce([]entity.GameRecord{top, left})
		require.NoError(t, err)

		backward, err := Reduce([]entity.GameRecord{left, top})
		require.NoError(t, err)

		// Then: one class holds both paths in sorted order
		expected := []EquivalenceClass{{
			Key:   111223333,
			Paths: []entity.Path{{1, 4, 2, 5, 3}, {7, 8, 4, 5, 1}},
		}}
		assert.Equal(t, expected, forward)
		assert.Equal(t, expected, backward)
	})

	t.Run("Classes are ordered by key", func(t *testing.T) {
		// Given: single-move records with X in the center and in two corners
		records := []entity.GameRecord{
			{Board: entity.Board{{e, e, x}, {e, e, e}, {e, e, e}}, Path: entity.Path{3}},
			{Board: entity.Board{{e, e, e}, {e, x, e}, {e, e, e}}, Path: entity.Path{5}},
			{Board: entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}, Path: entity.Path{1}},
		}

		// When: reducing them
		classes, err := Reduce(records)

		// Then: the corner class comes before the center class
		require.NoError(t, err)
		assert.Equal(t, []EquivalenceClass{
			{Key: 133333333, Paths: []entity.Path{{1}, {3}}},
			{Key: 333313333, Paths: []entity.Path{{5}}},
		}, classes)
	})

	t.Run("Duplicate paths are kept once", func(t *testing.T) {
		record := entity.GameRecord{Board: entity.Board{{x, e, e}, {e, e, e}, {e, e, e}}, Path: entity.Path{1}}

		classes, err := Reduce([]entity.GameRecord{record, record})

		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.Equal(t, []entity.Path{{1}}, classes[0].Paths)
	})

	t.Run("No records", func(t *testing.T) {
		classes, err := Reduce(nil)

		require.NoError(t, err)
		assert.Empty(t, classes)
	})

	t.Run("Invalid board", func(t *testing.T) {
		record := entity.NewGameRecord()
		record.Board[1][0] = entity.Mark(4)

		_, err := Reduce([]entity.GameRecord{record})

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestReduce_FullWalk(t *testing.T) {
	// Given: every finished game
	result, err := tictactoe.NewWalker(4).Walk(context.Background())
	require.NoError(t, err)

	expected := map[entity.Outcome]int{
		entity.OutcomeDraw: 3,
		entity.OutcomeWinX: 91,
		entity.OutcomeWinO: 44,
	}

	for _, outcome := range entity.TerminalOutcomes {
		t.Run(outcome.String(), func(t *testing.T) {
			records, err := result.Buckets.Bucket(outcome)
			require.NoError(t, err)

			// When: reducing the bucket
			classes, err := Reduce(records)
			require.NoError(t, err)

			// Then: the class count is pinned and every path is accounted for
			assert.Len(t, classes, expected[outcome])

			paths := 0
			for _, class := range classes {
				paths += len(class.Paths)
				require.True(t, slices.IsSortedFunc(class.Paths, entity.Path.Compare))
			}
			assert.Equal(t, len(records), paths)
			assert.True(t, slices.IsSortedFunc(classes, func(a, b EquivalenceClass) int { return a.Key - b.Key }))

			// And: shuffling the input does not change the result
			shuffled := slices.Clone(records)
			rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			again, err := Reduce(shuffled)
			require.NoError(t, err)
			assert.Equal(t, classes, again)
		})
	}
}
