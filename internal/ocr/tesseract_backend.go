//go:build ocr_tesseract

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// newDefaultRecognizer returns the gosseract-backed recognizer when the
// build tag is enabled.
func newDefaultRecognizer() (Recognizer, error) { return &tesseractRecognizer{}, nil }

type tesseractRecognizer struct{}

// Recognize sweeps the configured page segmentation modes over the image
// and returns the distinct non-empty texts. Individual mode failures are
// skipped; an error is returned only when every pass fails.
func (t *tesseractRecognizer) Recognize(ctx context.Context, imagePath string, opts Options) ([]Fragment, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if opts.Languages != "" {
		langs := strings.Split(opts.Languages, "+")
		if err := client.SetLanguage(langs...); err != nil {
			return nil, fmt.Errorf("set language %q: %w", opts.Languages, err)
		}
	}
	if opts.Whitelist != "" {
		if err := client.SetWhitelist(opts.Whitelist); err != nil {
			return nil, fmt.Errorf("set whitelist: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("set image %s: %w", imagePath, err)
	}

	modes := opts.PageSegModes
	if len(modes) == 0 {
		modes = []int{int(gosseract.PSM_SINGLE_BLOCK)}
	}

	var (
		fragments []Fragment
		seen      = make(map[string]struct{})
		lastErr   error
	)
	for _, mode := range modes {
		if err := ctx.Err(); err != nil {
			return fragments, err
		}
		if err := client.SetPageSegMode(gosseract.PageSegMode(mode)); err != nil {
			lastErr = err
			continue
		}
		text, err := client.Text()
		if err != nil {
			lastErr = err
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		fragments = append(fragments, Fragment{Text: text, Confidence: -1})
	}

	if len(fragments) == 0 && lastErr != nil {
		return nil, fmt.Errorf("tesseract recognition failed: %w", lastErr)
	}
	return fragments, nil
}
