package passport

import (
	"strings"
	"testing"
)

func TestSelectBestEmptySentinel(t *testing.T) {
	win := selectBest(nil)
	if win.RawText != "" || win.EngineConfidence != 0 {
		t.Fatalf("expected empty sentinel got %+v", win)
	}
	if win.method() != "none" {
		t.Fatalf("expected method none got %q", win.method())
	}
}

func TestSelectBestPrefersDocumentSignals(t *testing.T) {
	garbage := RecognitionAttempt{VariantKind: VariantOriginal, ConfigName: "standard", RawText: "x7 q", EngineConfidence: 60}
	document := RecognitionAttempt{
		VariantKind:      VariantHighContrastBW,
		ConfigName:       "standard",
		RawText:          "PASSPORT\nJOHN SMITH\nA1234567\nUSA\n15 MAR 1990\n20 MAR 2030\n" + strings.Repeat("X", 20),
		EngineConfidence: 40,
	}
	win := selectBest([]RecognitionAttempt{garbage, document})
	if win.VariantKind != VariantHighContrastBW {
		t.Fatalf("expected document attempt to win, got %+v", win.RecognitionAttempt)
	}
	if win.method() != "high-contrast-bw/standard" {
		t.Fatalf("unexpected method %q", win.method())
	}
}

func TestSelectBestTieKeepsFirst(t *testing.T) {
	a := RecognitionAttempt{VariantKind: VariantOriginal, ConfigName: "standard", RawText: "SAME TEXT", EngineConfidence: 50}
	b := a
	b.VariantKind = VariantUpscaled
	win := selectBest([]RecognitionAttempt{a, b})
	if win.VariantKind != VariantOriginal {
		t.Fatalf("tie should keep first-encountered attempt, got %s", win.VariantKind)
	}
}

func TestScoreAttemptLengthPenalties(t *testing.T) {
	short := RecognitionAttempt{RawText: "TINY", EngineConfidence: 50}
	if got := scoreAttempt(short); got != 30 {
		t.Fatalf("expected short-text penalty 50-20=30 got %v", got)
	}
	long := RecognitionAttempt{RawText: strings.Repeat("z", 2500), EngineConfidence: 50}
	if got := scoreAttempt(long); got != 40 {
		t.Fatalf("expected long-text penalty 50-10=40 got %v", got)
	}
}
