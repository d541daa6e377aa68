package passport

import "testing"

func TestNormalizeDateMonthAbbr(t *testing.T) {
	if got := NormalizeDate("01 JAN 1970"); got != "1970-01-01" {
		t.Fatalf("expected 1970-01-01 got %q", got)
	}
	if got := NormalizeDate("15 MAR 1990"); got != "1990-03-15" {
		t.Fatalf("expected 1990-03-15 got %q", got)
	}
}

func TestNormalizeDateNumericIsDayMonthYear(t *testing.T) {
	// 15/03 must be day 15 month 03, never March 15 as month-day.
	if got := NormalizeDate("15/03/1990"); got != "1990-03-15" {
		t.Fatalf("expected 1990-03-15 got %q", got)
	}
	if got := NormalizeDate("1-6-1985"); got != "1985-06-01" {
		t.Fatalf("expected 1985-06-01 got %q", got)
	}
	if got := NormalizeDate("09.12.2027"); got != "2027-12-09" {
		t.Fatalf("expected 2027-12-09 got %q", got)
	}
}

func TestNormalizeDateRejectsImpossibleDates(t *testing.T) {
	for _, in := range []string{"31/02/2020", "00/01/2020", "15/13/2020", "32 JAN 2020", "10 XXX 2020", "not a date", ""} {
		if got := NormalizeDate(in); got != "" {
			t.Fatalf("expected empty for %q got %q", in, got)
		}
	}
}
