// Package catalogue loads a JSON-backed store of sample puzzles and
// deterministically maps a seed string to an entry, for the HTTP
// transport's puzzle-lookup endpoint. The core solver has no dependency
// on this package.
package catalogue

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"

	"sudoku-classifier/pkg/constants"
)

// CompactPuzzle is one catalogue entry: a full solved grid plus, per
// difficulty key, the list of cell indices that remain given in a puzzle
// of that difficulty.
type CompactPuzzle struct {
	S string           `json:"s"`
	G map[string][]int `json:"g"`
}

// file is the top-level JSON document shape.
type file struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Store holds loaded puzzles and serves seed-based lookups.
type Store struct {
	mu      sync.RWMutex
	puzzles []CompactPuzzle
}

var (
	global     *Store
	globalOnce sync.Once
	globalErr  error
)

// Load reads and parses a catalogue JSON file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle catalogue: %w", err)
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle catalogue: %w", err)
	}
	return &Store{puzzles: f.Puzzles}, nil
}

// LoadGlobal loads the catalogue into the process-wide singleton once.
func LoadGlobal(path string) error {
	globalOnce.Do(func() {
		global, globalErr = Load(path)
	})
	return globalErr
}

// Global returns the process-wide catalogue singleton, or nil if
// LoadGlobal has not been called successfully.
func Global() *Store {
	return global
}

// NewStoreFromPuzzles builds a Store directly from entries, for tests.
func NewStoreFromPuzzles(puzzles []CompactPuzzle) *Store {
	return &Store{puzzles: puzzles}
}

// Count returns the number of loaded entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.puzzles)
}

// PuzzleBySeed deterministically selects an entry via an FNV-1a hash of
// seed modulo the catalogue size, then returns its givens string (for the
// requested difficulty key) and its full solution string.
func (s *Store) PuzzleBySeed(seed, difficulty string) (puzzleStr, solutionStr string, index int, err error) {
	s.mu.RLock()
	count := len(s.puzzles)
	s.mu.RUnlock()
	if count == 0 {
		return "", "", 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	index = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	puzzleStr, solutionStr, err = s.puzzleAt(index, difficulty)
	return
}

func (s *Store) puzzleAt(index int, difficulty string) (puzzleStr, solutionStr string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.puzzles) {
		return "", "", fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(s.puzzles)-1)
	}
	entry := s.puzzles[index]
	if len(entry.S) != constants.TotalCells {
		return "", "", fmt.Errorf("catalogue entry %d has malformed solution", index)
	}

	key, ok := constants.DifficultyKeys[difficulty]
	if !ok {
		return "", "", fmt.Errorf("unknown difficulty: %s", difficulty)
	}
	indices, ok := entry.G[key]
	if !ok {
		return "", "", fmt.Errorf("difficulty %s not present for this puzzle", difficulty)
	}

	givens := make([]byte, constants.TotalCells)
	for i := range givens {
		givens[i] = '.'
	}
	for _, idx := range indices {
		if idx < 0 || idx >= constants.TotalCells {
			continue
		}
		givens[idx] = entry.S[idx]
	}
	return string(givens), entry.S, nil
}
