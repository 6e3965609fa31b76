// Package sudoku: text form parsing. The format is nine lines of nine
// characters; digits 1-9 are clues, '.' and '0' both mean empty.
// Blank lines and surrounding whitespace are ignored.
package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid from r in the 9-line text form produced by
// Grid.String. Returns ErrBadInput (wrapped with line context) on
// wrong dimensions or unexpected characters.
func Parse(r io.Reader) (Grid, error) {
	var g Grid
	row := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if row >= Size {
			return Grid{}, fmt.Errorf("more than %d rows: %w", Size, ErrBadInput)
		}
		if len(line) != Size {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(line), Size, ErrBadInput)
		}
		for c := 0; c < Size; c++ {
			ch := line[c]
			switch {
			case ch == '.' || ch == '0':
				g[row][c] = 0
			case ch >= '1' && ch <= '9':
				g[row][c] = int(ch - '0')
			default:
				return Grid{}, fmt.Errorf("row %d column %d: unexpected %q: %w", row, c, ch, ErrBadInput)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("sudoku: reading grid: %w", err)
	}
	if row != Size {
		return Grid{}, fmt.Errorf("got %d rows, want %d: %w", row, Size, ErrBadInput)
	}
	return g, nil
}

// MustParse is Parse over a string literal, panicking on error.
// Intended for fixtures and examples only.
func MustParse(s string) Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}
