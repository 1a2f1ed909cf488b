package catalogue

import (
	"os"
	"path/filepath"
	"testing"
)

const validCatalogueJSON = `{
	"version": 1,
	"count": 2,
	"puzzles": [
		{
			"s": "157924638362158974498736512531279486926483157784615293273561849619847325845392761",
			"g": {
				"e": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,32,33,34,35,36,37,38,39],
				"m": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30,31,32,33,34,35]
			}
		},
		{
			"s": "234978561978651432651342978492563817367814295815729346546297183789135624123486759",
			"g": {
				"e": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,32,33,34,35,36,37,38,39],
				"m": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30,31,32,33,34,35]
			}
		}
	]
}`

func createTempCatalogueFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp catalogue file: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := createTempCatalogueFile(t, validCatalogueJSON)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if store.Count() != 2 {
		t.Errorf("expected 2 puzzles, got %d", store.Count())
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/catalogue.json"); err == nil {
		t.Error("Load() should fail for a non-existent file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := createTempCatalogueFile(t, "{ not valid json }")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed JSON")
	}
}

func TestPuzzleBySeedDeterminism(t *testing.T) {
	path := createTempCatalogueFile(t, validCatalogueJSON)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p1, s1, idx1, err := store.PuzzleBySeed("seed-123", "easy")
	if err != nil {
		t.Fatalf("PuzzleBySeed() first call failed: %v", err)
	}
	p2, s2, idx2, err := store.PuzzleBySeed("seed-123", "easy")
	if err != nil {
		t.Fatalf("PuzzleBySeed() second call failed: %v", err)
	}
	if idx1 != idx2 || p1 != p2 || s1 != s2 {
		t.Fatalf("same seed must return the same entry: (%d,%q,%q) vs (%d,%q,%q)", idx1, p1, s1, idx2, p2, s2)
	}
	if len(p1) != 81 || len(s1) != 81 {
		t.Fatalf("expected 81-character strings, got puzzle len %d, solution len %d", len(p1), len(s1))
	}
}

func TestPuzzleBySeedGivensMatchSolution(t *testing.T) {
	path := createTempCatalogueFile(t, validCatalogueJSON)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	puzzle, solution, _, err := store.PuzzleBySeed("any-seed", "easy")
	if err != nil {
		t.Fatalf("PuzzleBySeed() failed: %v", err)
	}
	for i := 0; i < 81; i++ {
		if puzzle[i] != '.' && puzzle[i] != solution[i] {
			t.Errorf("given at index %d (%c) does not match solution (%c)", i, puzzle[i], solution[i])
		}
	}
}

func TestPuzzleBySeedEmptyStore(t *testing.T) {
	store := NewStoreFromPuzzles(nil)
	if _, _, _, err := store.PuzzleBySeed("any", "easy"); err == nil {
		t.Error("PuzzleBySeed() should fail with no puzzles loaded")
	}
}

func TestPuzzleBySeedUnknownDifficulty(t *testing.T) {
	path := createTempCatalogueFile(t, validCatalogueJSON)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, _, _, err := store.PuzzleBySeed("seed", "nightmare"); err == nil {
		t.Error("PuzzleBySeed() should fail for an unknown difficulty")
	}
}

func TestPuzzleBySeedMissingDifficultyOnEntry(t *testing.T) {
	path := createTempCatalogueFile(t, validCatalogueJSON)
	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// neither catalogue entry carries a "hard" bucket in this fixture
	if _, _, _, err := store.PuzzleBySeed("seed", "hard"); err == nil {
		t.Error("PuzzleBySeed() should fail when the entry lacks the requested difficulty")
	}
}
