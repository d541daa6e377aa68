package passport

import (
	"github.com/otiai10/gosseract/v2"
)

// documentWhitelist restricts recognition to characters that occur on the
// data page of a travel document: uppercase letters, digits, space and the
// separators used in dates and document numbers.
const documentWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 /-.,"

// Config is a named parameter set for one recognition engine invocation.
type Config struct {
	Name        string
	Whitelist   string
	PageSegMode gosseract.PageSegMode
	// EngineMode selects tessedit_ocr_engine_mode; empty uses the engine default.
	EngineMode string
	// MinLineSize sets textord_min_linesize to suppress noise amplification
	// on very small or very large renders; empty uses the engine default.
	MinLineSize string
}

// DefaultConfigs returns the standard configuration set: a baseline
// single-block pass, a stricter noise-reducing pass, and a raw-line pass
// for single text lines. Declaration order is the scoring tie-break order.
func DefaultConfigs() []Config {
	return []Config{
		{
			Name:        "standard",
			Whitelist:   documentWhitelist,
			PageSegMode: gosseract.PSM_SINGLE_BLOCK,
		},
		{
			Name:        "strict",
			Whitelist:   documentWhitelist,
			PageSegMode: gosseract.PSM_SINGLE_BLOCK,
			EngineMode:  "1", // LSTM only
			MinLineSize: "2.5",
		},
		{
			Name:        "rawline",
			Whitelist:   documentWhitelist,
			PageSegMode: gosseract.PSM_RAW_LINE,
		},
	}
}

// RecognitionAttempt is the result of one engine call against one variant
// under one configuration. Immutable once produced.
type RecognitionAttempt struct {
	VariantKind      VariantKind
	ConfigName       string
	RawText          string
	EngineConfidence float64 // 0..100
}

// Recognizer abstracts the OCR engine so the pipeline can be tested without
// a Tesseract installation.
type Recognizer interface {
	Recognize(imagePath string, cfg Config) (text string, confidence float64, err error)
}

type tesseractRecognizer struct{}

func (tesseractRecognizer) Recognize(imagePath string, cfg Config) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	if cfg.Whitelist != "" {
		_ = client.SetWhitelist(cfg.Whitelist)
	}
	_ = client.SetPageSegMode(cfg.PageSegMode)
	if cfg.EngineMode != "" {
		_ = client.SetVariable(gosseract.SettableVariable("tessedit_ocr_engine_mode"), cfg.EngineMode)
	}
	if cfg.MinLineSize != "" {
		_ = client.SetVariable(gosseract.SettableVariable("textord_min_linesize"), cfg.MinLineSize)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", 0, err
	}
	text, err := client.Text()
	if err != nil {
		return "", 0, err
	}
	return text, meanWordConfidence(client), nil
}

// meanWordConfidence averages per-word confidences (0..100). Zero when the
// engine reports no words.
func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes))
}

// runRecognition runs every configuration against one variant. An engine
// failure drops that attempt and moves on; it never aborts the rest.
func (e *Extractor) runRecognition(v imageVariant, configs []Config) []RecognitionAttempt {
	out := make([]RecognitionAttempt, 0, len(configs))
	for _, cfg := range configs {
		text, conf, err := e.Recognizer.Recognize(v.path, cfg)
		if err != nil {
			e.logf("passport: recognize %s/%s: %v", v.kind, cfg.Name, err)
			continue
		}
		out = append(out, RecognitionAttempt{
			VariantKind:      v.kind,
			ConfigName:       cfg.Name,
			RawText:          text,
			EngineConfidence: conf,
		})
	}
	return out
}
