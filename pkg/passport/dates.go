package passport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthAbbr = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04",
	"MAY": "05", "JUN": "06", "JUL": "07", "AUG": "08",
	"SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

var (
	reDateAbbr    = regexp.MustCompile(`^([0-9]{1,2})\s+([A-Z]{3})\s+([0-9]{4})$`)
	reDateNumeric = regexp.MustCompile(`^([0-9]{1,2})[/.\-]([0-9]{1,2})[/.\-]([0-9]{4})$`)
)

// NormalizeDate converts date text from a travel document into ISO form
// (YYYY-MM-DD). Numeric dates are day-month-year regardless of separator;
// that is the document convention, not a locale choice. Anything that does
// not form a valid calendar date yields "".
func NormalizeDate(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if m := reDateAbbr.FindStringSubmatch(s); m != nil {
		month, ok := monthAbbr[m[2]]
		if !ok {
			return ""
		}
		return buildISO(m[3], month, m[1])
	}
	if m := reDateNumeric.FindStringSubmatch(s); m != nil {
		return buildISO(m[3], m[2], m[1])
	}
	return ""
}

// buildISO zero-pads and validates by round-tripping through time.Date;
// an impossible date (month 13, 31 Feb) comes back shifted and is rejected.
func buildISO(year, month, day string) string {
	y, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return ""
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return ""
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
}
