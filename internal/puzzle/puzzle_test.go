package puzzle

import "testing"

func TestParseEmptyPuzzle(t *testing.T) {
	g, err := Parse(strings_repeat())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Candidates(0, 0).EqualsDigits(1, 2, 3, 4, 5, 6, 7, 8, 9) {
		t.Fatalf("expected full candidate set at (0,0)")
	}
}

func strings_repeat() string {
	b := make([]byte, 81)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}

func TestParseAlreadySolved(t *testing.T) {
	s := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsSolved() {
		t.Fatalf("expected grid to be solved")
	}
	if got := Format(g); got != s {
		t.Fatalf("round-trip mismatch: got %q want %q", got, s)
	}
}

func TestParseInvalidLength(t *testing.T) {
	_, err := Parse("11" + string(make([]byte, 5)))
	ile, ok := err.(*InvalidLength)
	if !ok {
		t.Fatalf("expected *InvalidLength, got %T (%v)", err, err)
	}
	if ile.N == 81 {
		t.Fatalf("expected a non-81 length to be reported")
	}
}

func TestParseInvalidChar(t *testing.T) {
	s := "53467891X" + string(make([]byte, 72))
	_, err := Parse(s)
	if _, ok := err.(*InvalidChar); !ok {
		t.Fatalf("expected *InvalidChar, got %T (%v)", err, err)
	}
}

func TestParseStripsWhitespace(t *testing.T) {
	s := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	withSpace := s[:40] + "\n " + s[40:]
	g, err := Parse(withSpace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Format(g) != s {
		t.Fatalf("expected whitespace to be stripped before parsing")
	}
}
