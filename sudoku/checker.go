// Package sudoku: candidate-grid validation against an initial clue set.
package sudoku

import "fmt"

// Check reports whether candidate is a valid completion of initial.
//
// It verifies, in order: every candidate value lies in 1..9, every
// prefilled clue of initial is preserved, and no row, column or 3×3
// block of candidate repeats a value. The first violation is returned
// wrapped with its position; nil means the candidate is valid.
// Complexity: O(Size²)
func Check(initial, candidate Grid) error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if candidate[r][c] < 1 || candidate[r][c] > Size {
				return fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, candidate[r][c], ErrValueRange)
			}
			if initial[r][c] != 0 && candidate[r][c] != initial[r][c] {
				return fmt.Errorf("cell (%d,%d) clue %d replaced by %d: %w",
					r, c, initial[r][c], candidate[r][c], ErrClueChanged)
			}
		}
	}

	for r := 0; r < Size; r++ {
		if err := uniqueUnit(unitRow(candidate, r)); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	for c := 0; c < Size; c++ {
		if err := uniqueUnit(unitCol(candidate, c)); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	for br := 0; br < Size; br += boxSize {
		for bc := 0; bc < Size; bc += boxSize {
			if err := uniqueUnit(unitBlock(candidate, br, bc)); err != nil {
				return fmt.Errorf("block (%d,%d): %w", br/boxSize, bc/boxSize, err)
			}
		}
	}
	return nil
}

// uniqueUnit returns ErrDuplicate when any value 1..9 appears twice in
// the unit. Values are assumed in range (checked by the caller).
func uniqueUnit(unit [Size]int) error {
	var seen [Size + 1]bool
	for _, v := range unit {
		if seen[v] {
			return fmt.Errorf("value %d repeated: %w", v, ErrDuplicate)
		}
		seen[v] = true
	}
	return nil
}

// unitRow extracts row r.
func unitRow(g Grid, r int) [Size]int {
	return g[r]
}

// unitCol extracts column c.
func unitCol(g Grid, c int) [Size]int {
	var unit [Size]int
	for r := 0; r < Size; r++ {
		unit[r] = g[r][c]
	}
	return unit
}

// unitBlock extracts the 3×3 block whose top-left corner is (br,bc).
func unitBlock(g Grid, br, bc int) [Size]int {
	var unit [Size]int
	for i := 0; i < boxSize; i++ {
		for j := 0; j < boxSize; j++ {
			unit[i*boxSize+j] = g[br+i][bc+j]
		}
	}
	return unit
}
