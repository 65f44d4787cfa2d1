package entity

import "slices"

// Path is the order in which cells were filled, as 1-indexed row-major identifiers.
type Path []int

// Append returns a new path with cell added. The receiver is never shared with the result.
func (that Path) Append(cell int) Path {
	out := make(Path, len(that), len(that)+1)
	copy(out, that)

	return append(out, cell)
}

// Compare orders paths lexicographically.
func (that Path) Compare(other Path) int {
	return slices.Compare(that, other)
}

// GameRecord is a board together with the moves that produced it.
type GameRecord struct {
	Board Board
	Path  Path
}

// NewGameRecord returns the record of the empty board before the first move.
func NewGameRecord() GameRecord {
	return GameRecord{Path: Path{}}
}

// Ply is the number of moves played so far.
func (that GameRecord) Ply() int {
	return len(that.Path)
}
