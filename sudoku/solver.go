// Package sudoku: exhaustive backtracking solution counter.
package sudoku

import "fmt"

// Solve counts the valid completions of g by recursive backtracking.
//
// The search fills the first empty cell in row-major order with each
// candidate value — {1..9} minus the values already present in the
// cell's row, column and block — and recurses. count is the number of
// completions found (capped by opts.Limit when non-zero) and solution
// is the first one discovered; when count is 0, solution is the zero
// Grid. A grid with contradictory clues simply counts 0. Clues outside
// 0..9 return ErrBadClue.
// Complexity: exponential in empty cells (exhaustive search)
func Solve(g Grid, opts Options) (count int, solution Grid, err error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] < 0 || g[r][c] > Size {
				return 0, Grid{}, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, g[r][c], ErrBadClue)
			}
		}
	}
	// A duplicate among the clues can hide from the candidate masks when
	// every empty cell sits outside the conflicting unit, so rule it out
	// before the search rather than during it.
	if cluesConflict(g) {
		return 0, Grid{}, nil
	}

	s := searcher{limit: opts.Limit}
	s.run(g)
	return s.count, s.first, nil
}

// Count returns the exhaustive completion count of g.
func Count(g Grid) (int, error) {
	n, _, err := Solve(g, DefaultOptions())
	return n, err
}

// searcher carries the running count and first solution through the
// recursion, so the hot path passes only the grid by value.
type searcher struct {
	limit int
	count int
	first Grid
}

// run recurses over g and reports whether the limit has been reached,
// so pending sibling frames unwind without revisiting their candidates.
// The grid is passed by value: each frame owns its copy, so
// backtracking is implicit in the return.
func (s *searcher) run(g Grid) bool {
	row, col, found := firstEmpty(g)
	if !found {
		if s.count == 0 {
			s.first = g
		}
		s.count++
		return s.limit > 0 && s.count >= s.limit
	}

	legal := candidates(g, row, col)
	for v := 1; v <= Size; v++ {
		if legal&(1<<v) == 0 {
			continue
		}
		g[row][col] = v
		if s.run(g) {
			return true
		}
	}
	return false
}

// cluesConflict reports whether the non-zero cells of g already repeat
// a value within some row, column or block. Such a grid has no valid
// completion regardless of how the empty cells are filled.
func cluesConflict(g Grid) bool {
	for i := 0; i < Size; i++ {
		if clueDuplicate(unitRow(g, i)) || clueDuplicate(unitCol(g, i)) {
			return true
		}
	}
	for br := 0; br < Size; br += boxSize {
		for bc := 0; bc < Size; bc += boxSize {
			if clueDuplicate(unitBlock(g, br, bc)) {
				return true
			}
		}
	}
	return false
}

// clueDuplicate reports a repeated non-zero value in the unit; empty
// cells are ignored, unlike uniqueUnit which demands a full unit.
func clueDuplicate(unit [Size]int) bool {
	var seen [Size + 1]bool
	for _, v := range unit {
		if v == 0 {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

// firstEmpty returns the row-major-first empty cell of g.
func firstEmpty(g Grid) (row, col int, found bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// candidates returns a bitmask of legal values for cell (row,col):
// bit v is set when v appears nowhere in the cell's row, column or
// block. Direct constraint elimination only — no further pruning.
func candidates(g Grid, row, col int) uint {
	used := uint(0)
	for i := 0; i < Size; i++ {
		used |= 1 << g[row][i]
		used |= 1 << g[i][col]
	}
	br, bc := row-row%boxSize, col-col%boxSize
	for i := br; i < br+boxSize; i++ {
		for j := bc; j < bc+boxSize; j++ {
			used |= 1 << g[i][j]
		}
	}
	// Bit 0 collects empty cells; mask to values 1..9.
	return ^used & (((1 << (Size + 1)) - 1) &^ 1)
}
