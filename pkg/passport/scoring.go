package passport

import (
	"regexp"
	"strings"
)

// documentKeywords mark text that plausibly came from a travel document.
var documentKeywords = []string{"PASSPORT", "PASSEPORT", "PASAPORTE", "REISEPASS"}

var (
	reDigitRun  = regexp.MustCompile(`[0-9]{6,12}`)
	reDateToken = regexp.MustCompile(`\b[0-9]{1,2}[/.\-][0-9]{1,2}[/.\-][0-9]{4}\b|\b[0-9]{1,2} +(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC) +[0-9]{4}\b`)
	reNamePair  = regexp.MustCompile(`\b([A-Z]{2,20})[ \t]+([A-Z]{2,20})\b`)
)

type scoredAttempt struct {
	RecognitionAttempt
	score float64
}

func (s scoredAttempt) method() string {
	if s.ConfigName == "" {
		return "none"
	}
	return string(s.VariantKind) + "/" + s.ConfigName
}

// scoreAttempt layers document-specific heuristics on top of the engine's
// own confidence: keyword presence, expected patterns, length plausibility.
func scoreAttempt(a RecognitionAttempt) float64 {
	s := a.EngineConfidence
	up := normalizeText(strings.ToUpper(a.RawText))
	if containsAny(up, documentKeywords) {
		s += 20
	}
	if containsAny(up, nationalityKeywords) {
		s += 15
	}
	if reDigitRun.MatchString(up) {
		s += 10
	}
	if reDateToken.MatchString(strings.ToUpper(a.RawText)) {
		s += 15
	}
	if reNamePair.MatchString(strings.ToUpper(a.RawText)) {
		s += 10
	}
	if len(a.RawText) < 50 {
		s -= 20
	}
	if len(a.RawText) > 2000 {
		s -= 10
	}
	return s
}

// selectBest picks the attempt with the maximum score; ties keep the
// first-encountered attempt so the result is deterministic for a fixed
// variant/config enumeration order. An empty attempt list yields the
// empty sentinel rather than an error.
func selectBest(attempts []RecognitionAttempt) scoredAttempt {
	if len(attempts) == 0 {
		return scoredAttempt{}
	}
	best := scoredAttempt{attempts[0], scoreAttempt(attempts[0])}
	for _, a := range attempts[1:] {
		if sc := scoreAttempt(a); sc > best.score {
			best = scoredAttempt{a, sc}
		}
	}
	return best
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
