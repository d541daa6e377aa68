package passport

import "strings"

// NameTable holds the reference data used to repair OCR-garbled name tokens:
// an exact-correction table for systematically misread outputs, and curated
// given-name/surname lists for fuzzy matching. Instances are immutable after
// construction; tests inject synthetic tables.
type NameTable struct {
	Given       []string
	Surnames    []string
	Corrections map[string]string

	lookup map[string]struct{}
}

// NewNameTable builds a table from the provided lists. Corrections may be nil.
func NewNameTable(given, surnames []string, corrections map[string]string) *NameTable {
	t := &NameTable{
		Given:       given,
		Surnames:    surnames,
		Corrections: corrections,
		lookup:      make(map[string]struct{}, len(given)+len(surnames)),
	}
	for _, n := range given {
		t.lookup[n] = struct{}{}
	}
	for _, n := range surnames {
		t.lookup[n] = struct{}{}
	}
	return t
}

// DefaultNameTable returns the built-in reference data.
func DefaultNameTable() *NameTable {
	return NewNameTable(defaultGivenNames, defaultSurnames, defaultCorrections)
}

func (t *NameTable) isKnown(token string) bool {
	_, ok := t.lookup[token]
	return ok
}

// confusionSubs are single-letter OCR confusions applied only when the
// neighbouring characters match the trigger set; the substituted token must
// exactly match a reference name to be accepted.
var confusionSubs = []struct {
	from, to byte
	triggers string
}{
	{'F', 'H', "AEIOU"},
	{'H', 'F', "AEIOU"},
	{'I', 'O', "BCDFGHJKLMNPQRSTVWXZ"},
	{'O', 'I', "BCDFGHJKLMNPQRSTVWXZ"},
	{'A', 'N', "AEIOU"},
	{'N', 'A', "BCDFGHJKLMNPQRSTVWXZ"},
}

// Correct repairs a single name token. Tiers, first success wins: exact
// correction table, Levenshtein nearest neighbour against the reference
// lists, context-triggered character substitution. An unrepairable token is
// returned unchanged.
func (t *NameTable) Correct(token string) string {
	if t == nil || token == "" {
		return token
	}
	up := strings.ToUpper(token)
	if fixed, ok := t.Corrections[up]; ok {
		return fixed
	}
	if t.isKnown(up) {
		return up
	}
	if best := t.nearestName(up); best != "" {
		return best
	}
	if sub := t.substituteConfusions(up); sub != "" {
		return sub
	}
	return token
}

// nearestName returns the closest reference name when the edit distance is
// at most 3 and the length-normalized similarity exceeds 0.6, else "".
func (t *NameTable) nearestName(up string) string {
	best := ""
	bestDist := -1
	scan := func(refs []string) {
		for _, ref := range refs {
			d := Levenshtein(up, ref)
			if bestDist == -1 || d < bestDist {
				bestDist = d
				best = ref
			}
		}
	}
	scan(t.Given)
	scan(t.Surnames)
	if best == "" || bestDist > 3 {
		return ""
	}
	maxLen := len(up)
	if len(best) > maxLen {
		maxLen = len(best)
	}
	if maxLen == 0 {
		return ""
	}
	similarity := 1 - float64(bestDist)/float64(maxLen)
	if similarity <= 0.6 {
		return ""
	}
	return best
}

// substituteConfusions tries each context-triggered single substitution and
// accepts the first result that is a known reference name.
func (t *NameTable) substituteConfusions(up string) string {
	b := []byte(up)
	for i := range b {
		for _, cs := range confusionSubs {
			if b[i] != cs.from {
				continue
			}
			trigger := false
			if i > 0 && strings.IndexByte(cs.triggers, b[i-1]) >= 0 {
				trigger = true
			}
			if i+1 < len(b) && strings.IndexByte(cs.triggers, b[i+1]) >= 0 {
				trigger = true
			}
			if !trigger {
				continue
			}
			cand := string(b[:i]) + string(cs.to) + string(b[i+1:])
			if t.isKnown(cand) {
				return cand
			}
		}
	}
	return ""
}

// Levenshtein computes the standard dynamic-programming edit distance with
// unit costs for insertion, deletion and substitution.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			m := prev[j] + 1 // deletion
			if v := cur[j-1] + 1; v < m { // insertion
				m = v
			}
			if v := prev[j-1] + cost; v < m { // substitution
				m = v
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
