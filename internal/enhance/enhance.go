// Package enhance produces a second, recognition-friendly rendition of an
// inspection photo. GPS overlays are small white-on-photo text; inverting a
// grayscale copy, boosting contrast and sharpness, then upscaling gives the
// recognizer a far better shot than the raw photo.
package enhance

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/sawala-tech/lembar/internal/utils"
)

// Config controls the enhancement chain.
type Config struct {
	// Scale is the integer upscale factor applied last.
	Scale int
	// Contrast is the percentage passed to contrast adjustment.
	Contrast float64
	// Sharpen is the sigma passed to the sharpening filter.
	Sharpen float64
	// Invert flips the grayscale copy so overlay text reads dark-on-light.
	Invert bool
	// TempDir receives the enhanced file; empty means the OS temp dir.
	TempDir string
}

// DefaultConfig mirrors the preprocessing that field photos needed in
// practice: invert, strong contrast, mild sharpening, 3x upscale.
func DefaultConfig() Config {
	return Config{Scale: 3, Contrast: 40, Sharpen: 1.5, Invert: true}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Scale < 1 || c.Scale > 8 {
		return fmt.Errorf("invalid scale %d (must be 1..8)", c.Scale)
	}
	if c.Contrast < -100 || c.Contrast > 100 {
		return fmt.Errorf("invalid contrast %v (must be -100..100)", c.Contrast)
	}
	if c.Sharpen < 0 {
		return fmt.Errorf("invalid sharpen sigma %v", c.Sharpen)
	}
	return nil
}

// Enhancer writes enhanced copies of photos to transient files.
type Enhancer struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Enhancer. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Enhancer{cfg: cfg, logger: logger}
}

// Enhance loads the photo, runs the enhancement chain and writes the result
// to a temporary PNG. The caller owns deletion of the returned file. Errors
// here are never fatal to extraction; callers fall back to the original.
func (e *Enhancer) Enhance(imagePath string) (string, error) {
	img, meta, err := utils.LoadImage(imagePath)
	if err != nil {
		return "", fmt.Errorf("enhance: %w", err)
	}

	out := imaging.Grayscale(img)
	if e.cfg.Invert {
		out = imaging.Invert(out)
	}
	if e.cfg.Contrast != 0 {
		out = imaging.AdjustContrast(out, e.cfg.Contrast)
	}
	if e.cfg.Sharpen > 0 {
		out = imaging.Sharpen(out, e.cfg.Sharpen)
	}
	if e.cfg.Scale > 1 {
		out = imaging.Resize(out, meta.Width*e.cfg.Scale, 0, imaging.Lanczos)
	}

	path, err := utils.SaveTempPNG(out, e.cfg.TempDir, "lembar-enhanced-*.png")
	if err != nil {
		return "", fmt.Errorf("enhance: %w", err)
	}

	e.logger.Debug("wrote enhanced image",
		"source", imagePath,
		"enhanced", path,
		"scale", e.cfg.Scale)
	return path, nil
}
