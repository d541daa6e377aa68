package passport

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

type stubRecognizer struct {
	text string
	conf float64
	err  error
}

func (s stubRecognizer) Recognize(string, Config) (string, float64, error) {
	return s.text, s.conf, s.err
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := imaging.New(80, 48, color.NRGBA{255, 255, 255, 255})
	path := filepath.Join(t.TempDir(), "src.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save source image: %v", err)
	}
	return path
}

func newStubExtractor(t *testing.T, rec Recognizer) (*Extractor, string) {
	t.Helper()
	scratch := t.TempDir()
	e := New()
	e.Recognizer = rec
	e.Options.ScratchDir = scratch
	e.Options.MaxVariants = 4
	e.Logf = func(string, ...any) {}
	return e, scratch
}

func assertScratchEmpty(t *testing.T, scratch string) {
	t.Helper()
	entries, err := os.ReadDir(scratch)
	if err != nil {
		t.Fatalf("read scratch dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("variant files leaked: %d left in %s", len(entries), scratch)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	src := writeTestImage(t)
	e, scratch := newStubExtractor(t, stubRecognizer{
		text: "PASSPORT\nJOHN SMITH\nA1234567\nUSA\n15 MAR 1990\n20 MAR 2030",
		conf: 80,
	})
	res := e.ExtractFromImage(src)
	if !res.Success || res.Error != nil {
		t.Fatalf("expected success got %+v", res)
	}
	if res.Data == nil || res.Data.Name != "JOHN" || res.Data.Surname != "SMITH" ||
		res.Data.DocumentNumber != "A1234567" || res.Data.Nationality != "USA" ||
		res.Data.DateOfBirth != "1990-03-15" || res.Data.ExpirationDate != "2030-03-20" {
		t.Fatalf("unexpected fields %+v", res.Data)
	}
	if res.Confidence != 100 {
		t.Fatalf("expected confidence 100 got %d", res.Confidence)
	}
	assertScratchEmpty(t, scratch)
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source image must never be deleted: %v", err)
	}
}

func TestPipelineAllRecognitionsFail(t *testing.T) {
	src := writeTestImage(t)
	e, scratch := newStubExtractor(t, stubRecognizer{err: errors.New("engine exploded")})
	res := e.ExtractFromImage(src)
	if !res.Success {
		t.Fatalf("recognition failure must degrade, not fail: %+v", res)
	}
	if res.Confidence != 0 || res.RawText != "" || res.Method != "none" {
		t.Fatalf("expected empty sentinel result got %+v", res)
	}
	if res.Data == nil || *res.Data != (ParsedFields{}) {
		t.Fatalf("expected all-empty fields got %+v", res.Data)
	}
	assertScratchEmpty(t, scratch)
}

func TestPipelineUnreadableSource(t *testing.T) {
	e, scratch := newStubExtractor(t, stubRecognizer{text: "ignored"})
	res := e.ExtractFromImage(filepath.Join(t.TempDir(), "missing.png"))
	if res.Success {
		t.Fatalf("unreadable source must fail: %+v", res)
	}
	if res.Error == nil {
		t.Fatalf("expected error message in result")
	}
	assertScratchEmpty(t, scratch)
}

func TestPipelineVariantOrderIsDeterministic(t *testing.T) {
	src := writeTestImage(t)
	e, _ := newStubExtractor(t, stubRecognizer{text: "SOME DOCUMENT TEXT", conf: 10})
	variants, err := e.generateVariants(src)
	if err != nil {
		t.Fatalf("generate variants: %v", err)
	}
	defer func() {
		for _, v := range variants {
			if v.temp {
				_ = os.Remove(v.path)
			}
		}
	}()
	if len(variants) == 0 || variants[0].kind != VariantOriginal {
		t.Fatalf("original must always be first, got %+v", variants)
	}
	if variants[0].path != src {
		t.Fatalf("original variant must reference the source file")
	}
	if len(variants) > 4 {
		t.Fatalf("MaxVariants=4 not honored: %d variants", len(variants))
	}
}
