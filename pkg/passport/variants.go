package passport

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// VariantKind tags a preprocessed derivative of the source image.
type VariantKind string

const (
	VariantOriginal          VariantKind = "original"
	VariantHighContrastBW    VariantKind = "high-contrast-bw"
	VariantEnhancedContrast  VariantKind = "enhanced-contrast"
	VariantDenoisedSharpened VariantKind = "denoised-sharpened"
	VariantUpscaled          VariantKind = "upscaled"
	VariantAdaptiveThreshold VariantKind = "adaptive-threshold"
	VariantHighQuality       VariantKind = "high-quality"
)

type imageVariant struct {
	kind VariantKind
	path string
	temp bool // derived file owned by the pipeline, removed on return
}

// target heights for the resize-based variants
const (
	upscaleHeight     = 1500
	highQualityHeight = 3000
)

// generateVariants produces the ordered variant set for one source image,
// original first. A failing transform degrades to skipping that variant;
// only an unreadable source image is an error.
func (e *Extractor) generateVariants(path string) ([]imageVariant, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	out := []imageVariant{{kind: VariantOriginal, path: path}}

	transforms := []struct {
		kind  VariantKind
		apply func(image.Image) image.Image
	}{
		{VariantHighContrastBW, func(img image.Image) image.Image {
			g := normalize(imaging.Grayscale(img))
			return binarize(g, 180)
		}},
		{VariantEnhancedContrast, func(img image.Image) image.Image {
			g := normalize(imaging.Grayscale(img))
			return imaging.AdjustContrast(g, 25)
		}},
		{VariantDenoisedSharpened, func(img image.Image) image.Image {
			g := normalize(imaging.Grayscale(img))
			g = imaging.Blur(g, 0.5)
			return imaging.Sharpen(g, 1.2)
		}},
		{VariantUpscaled, func(img image.Image) image.Image {
			r := imaging.Resize(img, 0, upscaleHeight, imaging.Lanczos)
			return normalize(imaging.Grayscale(r))
		}},
		{VariantAdaptiveThreshold, func(img image.Image) image.Image {
			g := imaging.Grayscale(img)
			return dilate(adaptiveThreshold(g, 15, 7), 1)
		}},
		{VariantHighQuality, func(img image.Image) image.Image {
			r := imaging.Resize(img, 0, highQualityHeight, imaging.Lanczos)
			g := normalize(imaging.Grayscale(r))
			g = imaging.Sharpen(g, 0.7)
			return imaging.AdjustContrast(g, 15)
		}},
	}

	max := e.Options.MaxVariants
	for _, tr := range transforms {
		if max > 0 && len(out) >= max {
			break
		}
		tmp, err := e.saveVariant(tr.apply(src))
		if err != nil {
			e.logf("passport: variant %s failed: %v", tr.kind, err)
			continue
		}
		out = append(out, imageVariant{kind: tr.kind, path: tmp, temp: true})
	}
	return out, nil
}

func (e *Extractor) saveVariant(img image.Image) (string, error) {
	f, err := os.CreateTemp(e.Options.ScratchDir, "passport-*.png")
	if err != nil {
		return "", err
	}
	name := f.Name()
	_ = f.Close()
	if err := imaging.Save(img, name); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
