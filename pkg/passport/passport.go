package passport

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// ParsedFields holds the structured fields read off a travel document.
// A field the extractor could not find is left as an empty string.
type ParsedFields struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	DocumentNumber string `json:"documentNumber"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"dateOfBirth"`
	ExpirationDate string `json:"expirationDate"`
}

// ExtractionResult is the single output of one pipeline invocation.
type ExtractionResult struct {
	Success    bool          `json:"success"`
	Data       *ParsedFields `json:"data"`
	RawText    string        `json:"rawText"`
	Confidence int           `json:"confidence"`
	Method     string        `json:"method"`
	Error      *string       `json:"error"`
}

// Options tunes how thorough (and how slow) a single extraction is.
// MaxVariants caps the number of image variants attempted (0 = all);
// Configs overrides the recognition configurations (nil = defaults).
type Options struct {
	MaxVariants int
	Configs     []Config
	ScratchDir  string
}

// Extractor runs the passport extraction pipeline. The zero value is not
// usable; construct with New and override fields before first use if needed.
type Extractor struct {
	Recognizer Recognizer
	Options    Options
	Names      *NameTable
	Logf       func(format string, args ...any)
}

// New returns an Extractor wired to the Tesseract engine, the built-in
// reference name tables and stdlib logging.
func New() *Extractor {
	return &Extractor{
		Recognizer: tesseractRecognizer{},
		Names:      DefaultNameTable(),
		Logf:       log.Printf,
	}
}

func (e *Extractor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// ExtractFromImage runs the full pipeline against one source image:
// variant generation, recognition per variant/config, best-attempt
// selection, field extraction and validation. Derived variant files are
// removed on every exit path; the source file is never touched.
func (e *Extractor) ExtractFromImage(path string) ExtractionResult {
	variants, err := e.generateVariants(path)
	if err != nil {
		msg := fmt.Sprintf("open source image: %v", err)
		e.logf("passport: %s", msg)
		return ExtractionResult{Success: false, RawText: "", Confidence: 0, Method: "none", Error: &msg}
	}
	defer func() {
		for _, v := range variants {
			if !v.temp {
				continue
			}
			if rmErr := os.Remove(v.path); rmErr != nil && !os.IsNotExist(rmErr) {
				e.logf("passport: cleanup variant %s: %v", v.path, rmErr)
			}
		}
	}()

	configs := e.Options.Configs
	if configs == nil {
		configs = DefaultConfigs()
	}

	var attempts []RecognitionAttempt
	for _, v := range variants {
		attempts = append(attempts, e.runRecognition(v, configs)...)
	}
	e.logf("passport: %s variants=%d attempts=%d", path, len(variants), len(attempts))

	win := selectBest(attempts)
	if strings.TrimSpace(win.RawText) == "" {
		e.logf("passport: no usable text for %s", path)
	} else {
		e.logf("passport: %s winner=%s raw=%q", path, win.method(), snippet(normalizeText(win.RawText), 160))
	}
	fields := e.extractFields(win.RawText)
	outcome := Validate(fields)
	return ExtractionResult{
		Success:    true,
		Data:       &fields,
		RawText:    win.RawText,
		Confidence: outcome.Confidence,
		Method:     win.method(),
		Error:      nil,
	}
}

// ExtractFromImage is a convenience wrapper over a default Extractor.
func ExtractFromImage(path string) ExtractionResult {
	return New().ExtractFromImage(path)
}
