package reducer

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// EncodedClass is an equivalence class with its paths folded into integers.
type EncodedClass struct {
	Key            int   `json:"-"`
	Representative int   `json:"representative"`
	Synonyms       []int `json:"synonyms"`
}

// EncodePath reads the path as a decimal numeral, first move first.
func EncodePath(path entity.Path) (int, error) {
	if len(path) > entity.Cells {
		return 0, fmt.Errorf("%w: %d moves", apperror.ErrPathEncodingOverflow, len(path))
	}

	result := 0
	for _, cell := range path {
		if cell < 1 || cell > entity.Cells {
			return 0, fmt.Errorf("%w: cell %d in %v", apperror.ErrPathEncodingOverflow, cell, path)
		}

		result = 10*result + cell
	}

	return result, nil
}

// Encode folds the paths of every class. The representative is the first
// path in sorted order; synonyms list every path, representative included.
func Encode(classes []EquivalenceClass) ([]EncodedClass, error) {
	encoded := make([]EncodedClass, 0, len(classes))

	for _, class := range classes {
		if len(class.Paths) == 0 {
			return nil, fmt.Errorf("%w: class %d has no paths", apperror.ErrLookupMiss, class.Key)
		}

		synonyms := make([]int, 0, len(class.Paths))
		for _, path := range class.Paths {
			code, err := EncodePath(path)
			if err != nil {
				return nil, fmt.Errorf("failed to encode class %d: %w", class.Key, err)
			}

			synonyms = append(synonyms, code)
		}

		encoded = append(encoded, EncodedClass{
			Key:            class.Key,
			Representative: synonyms[0],
			Synonyms:       synonyms,
		})
	}

	return encoded, nil
}
