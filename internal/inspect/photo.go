package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sawala-tech/lembar/internal/utils"
)

// ResolvePhoto turns an entry's photo reference into a plain image path.
// Regular image files pass through untouched. Photos delivered as scanned
// PDFs are unwrapped: the embedded page images are extracted to a temp
// directory and the first one becomes the photo. The returned cleanup must
// be called when the image is no longer needed; it is never nil.
func ResolvePhoto(path string) (string, func(), error) {
	noop := func() {}
	if path == "" {
		return "", noop, fmt.Errorf("empty photo reference")
	}
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		if _, err := os.Stat(path); err != nil {
			return "", noop, fmt.Errorf("photo not accessible: %w", err)
		}
		return path, noop, nil
	}

	tempDir, err := os.MkdirTemp("", "lembar-photo-*")
	if err != nil {
		return "", noop, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tempDir) }

	if err := api.ExtractImagesFile(path, tempDir, nil, nil); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("extract images from %s: %w", path, err)
	}

	img, err := firstExtractedImage(tempDir)
	if err != nil {
		cleanup()
		return "", noop, fmt.Errorf("no usable image in %s: %w", path, err)
	}
	return img, cleanup, nil
}

// firstExtractedImage returns the lexically first decodable image below dir.
// pdfcpu names extracted files by page and resource, so lexical order is
// page order for single-digit documents, which scanned forms are.
func firstExtractedImage(dir string) (string, error) {
	var candidates []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && utils.IsSupportedImage(path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	sort.Strings(candidates)
	for _, c := range candidates {
		if _, _, err := utils.LoadImage(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("no decodable image among %d extracted files", len(candidates))
}
