//go:build !ocr_tesseract

package ocr

import (
	"context"
	"errors"
)

// ErrNoBackend is returned when no recognition engine is linked into the
// binary. Build with -tags=ocr_tesseract to enable the tesseract backend.
var ErrNoBackend = errors.New("ocr: no recognition backend linked; build with -tags=ocr_tesseract")

type defaultRecognizer struct{}

func newDefaultRecognizer() (Recognizer, error) { return &defaultRecognizer{}, nil }

func (d *defaultRecognizer) Recognize(_ context.Context, _ string, _ Options) ([]Fragment, error) {
	return nil, ErrNoBackend
}
