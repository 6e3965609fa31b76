package sudoku_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3ic/dynarr/sudoku"
)

// puzzle has exactly one completion, solved.
var puzzle = sudoku.MustParse(`
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`)

var solved = sudoku.MustParse(`
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`)

//----------------------------------------------------------------------------//
// Check Tests
//----------------------------------------------------------------------------//

// TestCheck_Valid accepts the known completion of the fixture puzzle.
func TestCheck_Valid(t *testing.T) {
	assert.NoError(t, sudoku.Check(puzzle, solved))
}

// TestCheck_SelfSolved accepts a full grid as a completion of itself.
func TestCheck_SelfSolved(t *testing.T) {
	assert.NoError(t, sudoku.Check(solved, solved))
}

// TestCheck_Violations enumerates each rejection class.
func TestCheck_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(g *sudoku.Grid)
		want   error
	}{
		{"EmptyCell", func(g *sudoku.Grid) { g[0][2] = 0 }, sudoku.ErrValueRange},
		{"ValueTooBig", func(g *sudoku.Grid) { g[4][4] = 10 }, sudoku.ErrValueRange},
		{"ValueNegative", func(g *sudoku.Grid) { g[8][8] = -1 }, sudoku.ErrValueRange},
		// (0,0) is the clue 5; replacing it with a value that stays
		// row/column/block-consistent is impossible, so clue
		// preservation must trip first.
		{"ClueChanged", func(g *sudoku.Grid) { g[0][0] = 4 }, sudoku.ErrClueChanged},
		// (0,2) is empty in the puzzle; writing the row-neighbor's value
		// there duplicates within row 0 without touching any clue.
		{"RowDuplicate", func(g *sudoku.Grid) { g[0][2] = g[0][3] }, sudoku.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := solved
			tc.mutate(&g)
			assert.ErrorIs(t, sudoku.Check(puzzle, g), tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Solve Tests
//----------------------------------------------------------------------------//

// TestSolve_Unique counts exactly one completion of the fixture puzzle
// and returns it.
func TestSolve_Unique(t *testing.T) {
	count, got, err := sudoku.Solve(puzzle, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	if diff := cmp.Diff(solved, got); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, sudoku.Check(puzzle, got), "returned solution must pass Check")
}

// TestSolve_AlreadyComplete counts a full valid grid as its own single
// completion.
func TestSolve_AlreadyComplete(t *testing.T) {
	count, got, err := sudoku.Solve(solved, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, solved, got)
}

// TestSolve_TwoCompletions blanks an interchangeable rectangle of two
// values from the solved grid — cells (3,5),(3,8),(4,5),(4,8) hold
// 1,3 / 3,1 across two blocks of one band — yielding exactly two
// completions.
func TestSolve_TwoCompletions(t *testing.T) {
	g := solved
	g[3][5], g[3][8] = 0, 0
	g[4][5], g[4][8] = 0, 0

	count, first, err := sudoku.Solve(g, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, sudoku.Check(g, first))
}

// TestSolve_Limit stops the same two-completion search after one.
func TestSolve_Limit(t *testing.T) {
	g := solved
	g[3][5], g[3][8] = 0, 0
	g[4][5], g[4][8] = 0, 0

	count, first, err := sudoku.Solve(g, sudoku.Options{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, sudoku.Check(g, first))
}

// TestSolve_Unsolvable plants a conflicting 5 in column 0 (duplicating
// within row 8 as well) and blanks (0,0), whose only possible value was
// that 5: no completion exists.
func TestSolve_Unsolvable(t *testing.T) {
	g := solved
	g[0][0] = 0
	g[8][0] = 5

	count, first, err := sudoku.Solve(g, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, sudoku.Grid{}, first, "no completion means the zero Grid")
}

// TestSolve_ConflictingClues duplicates a clue inside row 8 while the
// only empty cell, (0,2), sits outside the conflicting row, column and
// block — the candidate masks of the search alone would never see the
// duplicate, yet the count must still be 0.
func TestSolve_ConflictingClues(t *testing.T) {
	g := solved
	g[8][8] = g[8][6] // row 8 now holds two equal clues
	g[0][2] = 0

	count, first, err := sudoku.Solve(g, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, count, "conflicting clues admit no completion")
	assert.Equal(t, sudoku.Grid{}, first)
}

// TestSolve_FullButConflicting verifies a complete grid with a unit
// duplicate is not counted as its own completion.
func TestSolve_FullButConflicting(t *testing.T) {
	g := solved
	g[8][8] = g[8][6]

	count, first, err := sudoku.Solve(g, sudoku.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, sudoku.Grid{}, first)
	assert.ErrorIs(t, sudoku.Check(g, g), sudoku.ErrDuplicate, "Check agrees the grid is invalid")
}

// TestSolve_BadClue rejects clues outside 0..9.
func TestSolve_BadClue(t *testing.T) {
	g := puzzle
	g[0][0] = 12
	_, _, err := sudoku.Solve(g, sudoku.DefaultOptions())
	assert.ErrorIs(t, err, sudoku.ErrBadClue)
}

// TestCount is the convenience wrapper over Solve.
func TestCount(t *testing.T) {
	n, err := sudoku.Count(puzzle)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

//----------------------------------------------------------------------------//
// Parse and String Tests
//----------------------------------------------------------------------------//

// TestParse_RoundTrip verifies String(Parse(x)) == canonical x.
func TestParse_RoundTrip(t *testing.T) {
	text := "53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79"
	g, err := sudoku.Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, puzzle, g)
	assert.Equal(t, text, g.String())
}

// TestParse_ZeroForEmpty accepts '0' as an empty-cell marker.
func TestParse_ZeroForEmpty(t *testing.T) {
	dotted := strings.ReplaceAll(puzzle.String(), ".", "0")
	g, err := sudoku.Parse(strings.NewReader(dotted))
	require.NoError(t, err)
	assert.Equal(t, puzzle, g)
}

// TestParse_Malformed enumerates rejection cases.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"TooFewRows", "53..7....\n6..195..."},
		{"ShortRow", strings.Replace(puzzle.String(), "....8..79", "....8..7", 1)},
		{"BadCharacter", strings.Replace(puzzle.String(), "5", "x", 1)},
		{"TooManyRows", puzzle.String() + "\n123456789"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sudoku.Parse(strings.NewReader(tc.text))
			assert.ErrorIs(t, err, sudoku.ErrBadInput)
		})
	}
}
