package passport

import "testing"

func TestLevenshteinProperties(t *testing.T) {
	pairs := [][2]string{{"JOHN", "JOHAN"}, {"SMITH", "SMYTHE"}, {"", "ABC"}, {"KITTEN", "SITTING"}}
	for _, p := range pairs {
		ab := Levenshtein(p[0], p[1])
		ba := Levenshtein(p[1], p[0])
		if ab != ba {
			t.Fatalf("distance not symmetric for %q/%q: %d vs %d", p[0], p[1], ab, ba)
		}
	}
	if d := Levenshtein("GARCIA", "GARCIA"); d != 0 {
		t.Fatalf("identity distance should be 0, got %d", d)
	}
	if d := Levenshtein("KITTEN", "SITTING"); d != 3 {
		t.Fatalf("expected 3 got %d", d)
	}
	if d := Levenshtein("", "ABCD"); d != 4 {
		t.Fatalf("expected 4 got %d", d)
	}
}

func TestCorrectIdempotentOnKnownNames(t *testing.T) {
	tbl := DefaultNameTable()
	for _, n := range []string{"JOHN", "SMITH", "MARIA", "GARCIA"} {
		if got := tbl.Correct(n); got != n {
			t.Fatalf("known name %q changed to %q", n, got)
		}
	}
}

func TestCorrectExactTable(t *testing.T) {
	tbl := DefaultNameTable()
	if got := tbl.Correct("J0HN"); got != "JOHN" {
		t.Fatalf("expected JOHN got %q", got)
	}
	if got := tbl.Correct("GARC1A"); got != "GARCIA" {
		t.Fatalf("expected GARCIA got %q", got)
	}
}

func TestCorrectFuzzyMatch(t *testing.T) {
	tbl := NewNameTable([]string{"JOHN", "MARIA"}, []string{"SMITH"}, nil)
	if got := tbl.Correct("JOHNN"); got != "JOHN" {
		t.Fatalf("expected JOHN got %q", got)
	}
	if got := tbl.Correct("SMTH"); got != "SMITH" {
		t.Fatalf("expected SMITH got %q", got)
	}
	// Too far from anything: returned unchanged.
	if got := tbl.Correct("XQZWVK"); got != "XQZWVK" {
		t.Fatalf("expected unchanged token got %q", got)
	}
}

func TestCorrectFuzzySimilarityFloor(t *testing.T) {
	// Distance 1 but similarity 0.5 on a two-letter name: fuzzy must refuse.
	tbl := NewNameTable([]string{"LI"}, nil, nil)
	if got := tbl.Correct("LA"); got != "LA" {
		t.Fatalf("expected LA unchanged got %q", got)
	}
}

func TestCorrectContextSubstitution(t *testing.T) {
	// O->I is triggered by the consonant neighbour and lands on a known
	// two-letter name that the similarity floor keeps out of fuzzy reach.
	tbl := NewNameTable([]string{"LI"}, nil, nil)
	if got := tbl.Correct("LO"); got != "LI" {
		t.Fatalf("expected LI got %q", got)
	}
}
