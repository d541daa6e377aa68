package passport

import "testing"

func TestValidateFullRecord(t *testing.T) {
	out := Validate(ParsedFields{
		Name:           "JOHN",
		Surname:        "SMITH",
		DocumentNumber: "A1234567",
		Nationality:    "USA",
		DateOfBirth:    "1990-03-15",
		ExpirationDate: "2030-03-20",
	})
	if !out.IsValid || out.Confidence != 100 || len(out.Errors) != 0 {
		t.Fatalf("expected valid 100%% record got %+v", out)
	}
}

func TestValidateEmptyRecord(t *testing.T) {
	out := Validate(ParsedFields{})
	if out.IsValid || out.Confidence != 0 {
		t.Fatalf("expected invalid zero-confidence record got %+v", out)
	}
	if len(out.Errors) != 6 {
		t.Fatalf("expected 6 missing-field errors got %d: %v", len(out.Errors), out.Errors)
	}
}

func TestValidatePartialRecordRounds(t *testing.T) {
	out := Validate(ParsedFields{DocumentNumber: "B7654321", DateOfBirth: "1985-06-01"})
	// 2 of 6 fields -> 33 after rounding.
	if out.Confidence != 33 {
		t.Fatalf("expected confidence 33 got %d", out.Confidence)
	}
	if out.IsValid {
		t.Fatalf("partial record must not be valid")
	}
}
