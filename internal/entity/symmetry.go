package entity

import "fmt"

// Transform maps a board onto one of its symmetry images.
type Transform func(Board) Board

// Symmetries is the dihedral group of the square, identity first.
var Symmetries = []Transform{
	func(b Board) Board { return b },
	Board.Rotate90,
	Board.Rotate180,
	Board.Rotate270,
	Board.ReflectHorizontal,
	Board.ReflectVertical,
	Board.ReflectDiagMain,
	Board.ReflectDiagAnti,
}

// CanonicalKey is the smallest hash over a board's symmetry orbit.
type CanonicalKey struct {
	Key int
	// IsSmallest reports whether the board's own hash is the orbit minimum.
	IsSmallest bool
}

// CanonicalKey hashes every image of the board and keeps the minimum.
func (that Board) CanonicalKey() (CanonicalKey, error) {
	own, err := that.Hash()
	if err != nil {
		return CanonicalKey{}, fmt.Errorf("failed to canonicalize board: %w", err)
	}

	smallest := own
	for _, transform := range Symmetries[1:] {
		hash, err := transform(that).Hash()
		if err != nil {
			return CanonicalKey{}, fmt.Errorf("failed to canonicalize board: %w", err)
		}

		smallest = min(smallest, hash)
	}

	return CanonicalKey{Key: smallest, IsSmallest: own == smallest}, nil
}
