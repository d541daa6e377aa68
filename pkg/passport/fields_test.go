package passport

import "testing"

func testExtractor() *Extractor {
	e := New()
	e.Logf = func(string, ...any) {}
	return e
}

func TestExtractFieldsFullDocument(t *testing.T) {
	raw := "PASSPORT\nJOHN SMITH\nA1234567\nUSA\n15 MAR 1990\n20 MAR 2030"
	f := testExtractor().extractFields(raw)
	want := ParsedFields{
		Name:           "JOHN",
		Surname:        "SMITH",
		DocumentNumber: "A1234567",
		Nationality:    "USA",
		DateOfBirth:    "1990-03-15",
		ExpirationDate: "2030-03-20",
	}
	if f != want {
		t.Fatalf("extracted %+v want %+v", f, want)
	}
	if out := Validate(f); out.Confidence != 100 {
		t.Fatalf("expected confidence 100 got %d", out.Confidence)
	}
}

func TestExtractFieldsSparseDocument(t *testing.T) {
	f := testExtractor().extractFields("B7654321\n01/06/1985")
	if f.DocumentNumber != "B7654321" {
		t.Fatalf("expected B7654321 got %q", f.DocumentNumber)
	}
	if f.DateOfBirth != "1985-06-01" || f.ExpirationDate != "" {
		t.Fatalf("expected DOB only, got dob=%q expiry=%q", f.DateOfBirth, f.ExpirationDate)
	}
	out := Validate(f)
	missing := map[string]bool{}
	for _, e := range out.Errors {
		missing[e] = true
	}
	for _, want := range []string{"Name not found", "Surname not found", "Nationality not found", "Expiration date not found"} {
		if !missing[want] {
			t.Fatalf("expected error %q in %v", want, out.Errors)
		}
	}
}

func TestExtractFieldsEmptyText(t *testing.T) {
	f := testExtractor().extractFields("")
	if f != (ParsedFields{}) {
		t.Fatalf("expected all-empty fields got %+v", f)
	}
}

func TestExtractFieldsDigitOnlyDocumentNumber(t *testing.T) {
	f := testExtractor().extractFields("NO 123456789 HERE")
	if f.DocumentNumber != "123456789" {
		t.Fatalf("expected digit-run fallback got %q", f.DocumentNumber)
	}
}

func TestExtractNameSkipsLabelsAndCountries(t *testing.T) {
	raw := "UNITED STATES\nSURNAME SMITH\nJOHN SMITH\nUSA"
	name, surname := testExtractor().extractName(raw)
	if name != "JOHN" || surname != "SMITH" {
		t.Fatalf("expected JOHN SMITH got %q %q", name, surname)
	}
}

func TestExtractNameLineScanFallback(t *testing.T) {
	// No adjacent all-caps pair: tokens are picked line by line.
	raw := "P<USA\nMARIA\n12 JUL 1992\nGARCIA\nUSA"
	name, surname := testExtractor().extractName(raw)
	if name != "MARIA" || surname != "GARCIA" {
		t.Fatalf("expected MARIA GARCIA got %q %q", name, surname)
	}
}

func TestExtractNationalityFallbackToFullText(t *testing.T) {
	// Keyword split across a line boundary only matches the normalized
	// full-text fallback, never the line scan.
	got := extractNationality("UNITED\nSTATES OF AMERICA\nXYZ")
	if got != "UNITED STATES OF AMERICA" {
		t.Fatalf("expected full form got %q", got)
	}
}
