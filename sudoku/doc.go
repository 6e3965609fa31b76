// Package sudoku validates and exhaustively solves 9×9 sudoku grids.
//
// What:
//
//   - Grid is a fixed 9×9 array of small integers; 0 marks an empty cell.
//   - Check verifies a candidate grid is a valid completion of an initial
//     grid: every value in 1..9, all prefilled clues preserved, and no
//     duplicate in any row, column or 3×3 block.
//   - Solve counts every valid completion by recursive backtracking over
//     the first empty cell in row-major order, returning the count and
//     the first completion found.
//   - Parse and Grid.String convert to and from a 9-line text form
//     ('.' or '0' for empty cells) for files and fixtures.
//
// Why:
//
//   - Puzzle tooling: verify a published solution against its clues.
//   - Puzzle generation: a clue set is "proper" only when Solve counts
//     exactly one completion.
//
// Complexity:
//
//	Exhaustive backtracking with direct constraint elimination only —
//	candidates for a cell are {1..9} minus the values already present in
//	its row, column and block. Worst case is exponential in the number
//	of empty cells; Options.Limit bounds the search when only "zero, one
//	or many" matters.
//
// Errors:
//
//   - ErrBadClue: an initial cell outside 0..9.
//   - ErrValueRange: a candidate cell outside 1..9.
//   - ErrClueChanged: a candidate cell disagrees with a prefilled clue.
//   - ErrDuplicate: a row, column or block contains a repeated value.
//   - ErrBadInput: malformed text passed to Parse.
package sudoku
