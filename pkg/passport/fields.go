package passport

import (
	"regexp"
	"strings"
)

var (
	// Document numbers: letter-prefixed (A1234567) preferred over bare digit runs.
	reDocNumAlpha  = regexp.MustCompile(`\b[A-Z]{1,3}[0-9]{6,9}\b`)
	reDocNumDigits = regexp.MustCompile(`\b[0-9]{6,12}\b`)
	reCapsToken    = regexp.MustCompile(`^[A-Z]{3,20}$`)
)

// nationalityKeywords is scanned in order; the first hit wins. Full names
// before their abbreviations so a line like "UNITED STATES OF AMERICA"
// reports the full form.
var nationalityKeywords = []string{
	"UNITED STATES OF AMERICA", "UNITED STATES", "USA",
	"UNITED KINGDOM", "GREAT BRITAIN", "GBR", "UK",
	"FRANCE", "FRA",
	"GERMANY", "DEUTSCHLAND", "DEU",
	"SPAIN", "ESPANA", "ESP",
	"ITALY", "ITALIA", "ITA",
	"PORTUGAL", "PRT",
	"NETHERLANDS", "NLD",
	"BELGIUM", "BEL",
	"SWITZERLAND", "CHE",
	"AUSTRIA", "AUT",
	"IRELAND", "IRL",
	"CANADA", "CAN",
	"MEXICO", "MEX",
	"BRAZIL", "BRASIL", "BRA",
	"ARGENTINA", "ARG",
	"COLOMBIA", "COL",
	"CHILE", "CHL",
	"PERU", "PER",
	"AUSTRALIA", "AUS",
	"NEW ZEALAND", "NZL",
	"JAPAN", "JPN",
	"CHINA", "CHN",
	"INDIA", "IND",
	"INDONESIA", "IDN",
	"PHILIPPINES", "PHL",
	"SINGAPORE", "SGP",
	"MALAYSIA", "MYS",
	"THAILAND", "THA",
	"VIETNAM", "VNM",
	"SOUTH KOREA", "KOREA", "KOR",
	"RUSSIA", "RUS",
	"POLAND", "POL",
	"UKRAINE", "UKR",
	"TURKEY", "TUR",
	"EGYPT", "EGY",
	"MOROCCO",
	"SOUTH AFRICA", "ZAF",
	"NIGERIA", "NGA",
	"SAUDI ARABIA", "SAU",
	"UNITED ARAB EMIRATES", "ARE",
}

// fieldLabels are words that appear on a document's data page but are never
// part of the holder's name; the name pattern skips pairs containing them.
var fieldLabels = []string{
	"SURNAME", "GIVEN", "NAMES", "NAME", "NATIONALITY", "DATE", "BIRTH",
	"PLACE", "ISSUE", "EXPIRY", "EXPIRATION", "AUTHORITY", "TYPE", "CODE",
	"SEX", "DOCUMENT", "NUMBER", "HOLDER", "SIGNATURE", "REPUBLIC", "KINGDOM",
}

// extractFields parses the winning raw text with ordered pattern rules.
// Each field is independent: a miss leaves an empty string and never blocks
// the other fields.
func (e *Extractor) extractFields(raw string) ParsedFields {
	var f ParsedFields
	up := strings.ToUpper(raw)

	f.DocumentNumber = extractDocumentNumber(up)
	f.DateOfBirth, f.ExpirationDate = extractDates(up)
	f.Name, f.Surname = e.extractName(up)
	f.Nationality = extractNationality(up)
	return f
}

func extractDocumentNumber(up string) string {
	if m := reDocNumAlpha.FindString(up); m != "" {
		return m
	}
	return reDocNumDigits.FindString(up)
}

// extractDates treats the first date in reading order as the date of birth
// and the second as the expiration date; a single date is birth only.
func extractDates(up string) (dob, expiry string) {
	matches := reDateToken.FindAllString(up, -1)
	if len(matches) >= 1 {
		dob = NormalizeDate(matches[0])
	}
	if len(matches) >= 2 {
		expiry = NormalizeDate(matches[1])
	}
	return dob, expiry
}

// extractName tries the two-token all-caps pattern line by line first, then
// falls back to scanning the leading lines token by token.
func (e *Extractor) extractName(up string) (name, surname string) {
	lines := strings.Split(up, "\n")
	for _, line := range lines {
		for _, m := range reNamePair.FindAllStringSubmatch(line, -1) {
			if isNameStopword(m[1]) || isNameStopword(m[2]) {
				continue
			}
			return e.Names.Correct(m[1]), e.Names.Correct(m[2])
		}
	}
	// Fallback: first two qualifying all-caps tokens in the leading lines.
	scanned := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > 10 {
			break
		}
		for _, tok := range strings.Fields(line) {
			if !reCapsToken.MatchString(tok) || isNameStopword(tok) {
				continue
			}
			if name == "" {
				name = e.Names.Correct(tok)
				continue
			}
			if tok == name || e.Names.Correct(tok) == name {
				continue
			}
			surname = e.Names.Correct(tok)
			return name, surname
		}
	}
	return name, surname
}

// nameStopwords collects every token that can never be a name: document
// keywords, field labels, month abbreviations and the individual words of
// the country keywords ("UNITED", "STATES", ...).
var nameStopwords = buildNameStopwords()

func buildNameStopwords() map[string]struct{} {
	s := make(map[string]struct{})
	for _, k := range documentKeywords {
		s[k] = struct{}{}
	}
	for _, k := range fieldLabels {
		s[k] = struct{}{}
	}
	for _, k := range nationalityKeywords {
		for _, w := range strings.Fields(k) {
			s[w] = struct{}{}
		}
	}
	for m := range monthAbbr {
		s[m] = struct{}{}
	}
	return s
}

func isNameStopword(tok string) bool {
	_, ok := nameStopwords[tok]
	return ok
}

// extractNationality scans lines for a known country keyword; if no line
// matches, a direct search over the whole text is the fallback.
func extractNationality(up string) string {
	for _, line := range strings.Split(up, "\n") {
		for _, k := range nationalityKeywords {
			if strings.Contains(line, k) {
				return k
			}
		}
	}
	// Whitespace-normalized pass catches keywords broken across lines.
	norm := normalizeText(up)
	for _, k := range nationalityKeywords {
		if strings.Contains(norm, k) {
			return k
		}
	}
	return ""
}
