package passport

import "math"

// ValidationOutcome reports completeness of a parsed record.
type ValidationOutcome struct {
	IsValid    bool     `json:"isValid"`
	Errors     []string `json:"errors"`
	Confidence int      `json:"confidence"`
}

// Validate checks that every required field was populated and scores the
// record: 100 * populated / required, rounded. Pure function.
func Validate(f ParsedFields) ValidationOutcome {
	required := []struct {
		label string
		value string
	}{
		{"Name", f.Name},
		{"Surname", f.Surname},
		{"Document number", f.DocumentNumber},
		{"Nationality", f.Nationality},
		{"Date of birth", f.DateOfBirth},
		{"Expiration date", f.ExpirationDate},
	}
	outcome := ValidationOutcome{Errors: []string{}}
	present := 0
	for _, r := range required {
		if r.value == "" {
			outcome.Errors = append(outcome.Errors, r.label+" not found")
		} else {
			present++
		}
	}
	outcome.Confidence = int(math.Round(100 * float64(present) / float64(len(required))))
	outcome.IsValid = len(outcome.Errors) == 0
	return outcome
}
