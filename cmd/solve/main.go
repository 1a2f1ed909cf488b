package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"sudoku-classifier/internal/puzzle"
	"sudoku-classifier/internal/solver"
)

func main() {
	var puzzleStr string
	if len(os.Args) > 1 {
		puzzleStr = os.Args[1]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("Failed to solve puzzle: %v\n", err)
			os.Exit(0)
		}
		puzzleStr = strings.TrimSpace(string(data))
	}

	g, err := puzzle.Parse(puzzleStr)
	if err != nil {
		fmt.Printf("Failed to solve puzzle: %v\n", err)
		os.Exit(0)
	}

	used, err := solver.NewFixedOrder().Solve(g)
	if err != nil {
		fmt.Printf("Failed to solve puzzle: %v\n", err)
		fmt.Println(puzzle.Format(g))
		os.Exit(0)
	}

	fmt.Printf("Solved with strategies: %v\n", used)
	fmt.Println(puzzle.Format(g))
}
