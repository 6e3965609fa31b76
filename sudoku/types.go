// Package sudoku defines the Grid type, solver options, and sentinel
// errors shared by the checker and the solver.
package sudoku

import (
	"errors"
	"strings"
)

// Size is the grid side length; values run 1..Size.
const Size = 9

// boxSize is the side length of one block (Size must be boxSize²).
const boxSize = 3

// Sentinel errors for sudoku operations.
var (
	// ErrBadClue indicates an initial grid cell outside 0..9.
	ErrBadClue = errors.New("sudoku: clue out of range")
	// ErrValueRange indicates a candidate cell outside 1..9.
	ErrValueRange = errors.New("sudoku: value out of range")
	// ErrClueChanged indicates a candidate cell disagrees with a prefilled clue.
	ErrClueChanged = errors.New("sudoku: prefilled clue not preserved")
	// ErrDuplicate indicates a repeated value in a row, column or block.
	ErrDuplicate = errors.New("sudoku: duplicate value")
	// ErrBadInput indicates malformed text passed to Parse.
	ErrBadInput = errors.New("sudoku: malformed grid text")
)

// Grid is a 9×9 sudoku grid; Grid[row][col] holds 1..9, or 0 for an
// empty cell. Grid is a value type — passing it copies the cells, which
// is what the recursive solver relies on.
type Grid [Size][Size]int

// Options configures Solve.
//
// Fields:
//   - Limit — stop the search once this many completions are counted.
//     0 means count exhaustively. Limit 1 turns Solve into a plain
//     "find any solution" query; Limit 2 answers uniqueness.
type Options struct {
	Limit int
}

// DefaultOptions returns Options for an exhaustive count (no limit).
func DefaultOptions() Options {
	return Options{Limit: 0}
}

// String renders the grid as nine 9-character lines, '.' for empty
// cells. The inverse of Parse.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g[r][c]))
			}
		}
	}
	return sb.String()
}
