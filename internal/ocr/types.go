// Package ocr defines the boundary to the text-recognition engine. The
// engine is treated as an opaque collaborator: it receives an image and
// returns candidate text fragments, optionally with confidence and position
// information that the coordinate pipeline does not require.
package ocr

import (
	"context"
	"image"
)

// Fragment is one recognized piece of text.
type Fragment struct {
	Text       string
	Confidence float64         // -1 if the backend does not report one
	BBox       image.Rectangle // zero if the backend does not report one
}

// Options controls backend behavior for one recognition pass.
type Options struct {
	// Languages is the tesseract-style language list, e.g. "eng" or
	// "eng+ind".
	Languages string

	// Whitelist restricts recognition to the given characters. Empty
	// means no restriction.
	Whitelist string

	// PageSegModes lists the page segmentation modes to sweep, in order.
	// Backends that have no such concept may ignore it.
	PageSegModes []int
}

// DefaultOptions is tuned for GPS overlays on inspection photos: the
// character whitelist covers digits, DMS punctuation and hemisphere
// letters, and the segmentation sweep moves from block to raw-line modes.
func DefaultOptions() Options {
	return Options{
		Languages:    "eng",
		Whitelist:    `0123456789°'".,NSEW+- `,
		PageSegModes: []int{6, 7, 8, 13},
	}
}

// Recognizer turns an image file into recognized text fragments. A nil
// error with zero fragments means the engine found no legible text.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string, opts Options) ([]Fragment, error)
}

// NewRecognizer returns the recognizer linked into this build. The default
// build carries no engine; enable one via build tags (-tags=ocr_tesseract).
func NewRecognizer() (Recognizer, error) { return newDefaultRecognizer() }
