// Package reducer folds finished games into symmetry classes and encodes
// their move paths for export.
package reducer

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// EquivalenceClass groups every distinct path that ends on a board of the
// same shape, up to rotation and reflection.
type EquivalenceClass struct {
	Key   int
	Paths []entity.Path
}

// Reduce groups records by canonical key. Classes come out in ascending key
// order with their paths sorted lexicographically, so the result does not
// depend on the order of records.
func Reduce(records []entity.GameRecord) ([]EquivalenceClass, error) {
	groups := make(map[int][]entity.Path)

	for _, record := range records {
		canonical, err := record.Board.CanonicalKey()
		if err != nil {
			return nil, fmt.Errorf("failed to reduce record %v: %w", record.Path, err)
		}

		groups[canonical.Key] = append(groups[canonical.Key], record.Path)
	}

	classes := make([]EquivalenceClass, 0, len(groups))
	for key, paths := range groups {
		slices.SortFunc(paths, entity.Path.Compare)
		paths = slices.CompactFunc(paths, func(a, b entity.Path) bool {
			return a.Compare(b) == 0
		})

		classes = append(classes, EquivalenceClass{Key: key, Paths: paths})
	}

	slices.SortFunc(classes, func(a, b EquivalenceClass) int {
		return a.Key - b.Key
	})

	return classes, nil
}
