// Command sudoku reads a 9×9 grid in the 9-line text form (digits 1-9,
// '.' or '0' for empty) from a file or stdin, counts its completions
// and prints the first one found.
//
// Usage:
//
//	sudoku puzzle.txt
//	cat puzzle.txt | sudoku
//	sudoku --count-only --limit 2 puzzle.txt   # uniqueness check
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/h3ic/dynarr/sudoku"
)

var (
	countOnly bool
	limit     int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "sudoku [file]",
	Short: "Count and print completions of a 9×9 sudoku grid",
	Long: `Reads a sudoku grid (nine lines of nine characters, '.' or '0'
for empty cells) from the given file or from stdin, counts its valid
completions by exhaustive backtracking, and prints the first solution.

Exits non-zero when the grid is malformed or has no completion.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop().Sugar()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer dev.Sync() //nolint:errcheck // stderr sync failure is unactionable
		logger = dev.Sugar()
	}

	in := io.Reader(os.Stdin)
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		in, source = f, args[0]
	}

	grid, err := sudoku.Parse(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}
	logger.Infow("grid parsed", "source", source, "clues", clueCount(grid))

	start := time.Now()
	count, solution, err := sudoku.Solve(grid, sudoku.Options{Limit: limit})
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	logger.Infow("search finished", "completions", count, "elapsed", time.Since(start))

	fmt.Fprintf(cmd.OutOrStdout(), "completions: %d\n", count)
	if count == 0 {
		return fmt.Errorf("grid has no valid completion")
	}
	if !countOnly {
		fmt.Fprintln(cmd.OutOrStdout(), solution)
	}
	return nil
}

// clueCount returns the number of prefilled cells.
func clueCount(g sudoku.Grid) int {
	n := 0
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func main() {
	rootCmd.Flags().BoolVar(&countOnly, "count-only", false, "print only the completion count")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "stop after this many completions (0 = exhaustive)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parse and timing details to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}
}
