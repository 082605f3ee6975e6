package utils

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// SupportedImageExtensions lists the photo formats accepted from form intake.
var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// ImageError wraps an image IO failure with the operation that caused it.
type ImageError struct {
	Operation string
	Err       error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s: %v", e.Operation, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ImageMetadata captures lightweight file and pixel information about a photo.
type ImageMetadata struct {
	Path      string
	Format    string
	SizeBytes int64
	Width     int
	Height    int
}

// LoadImage opens and decodes a photo, returning the image and its metadata.
func LoadImage(path string) (image.Image, ImageMetadata, error) {
	if path == "" {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: errors.New("empty path")}
	}
	if !IsSupportedImage(path) {
		return nil, ImageMetadata{}, &ImageError{
			Operation: "load",
			Err:       fmt.Errorf("unsupported format: %s", filepath.Ext(path)),
		}
	}

	f, err := os.Open(path) //nolint:gosec // G304: reading a user-provided photo path is expected
	if err != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: err}
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "load", Err: err}
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, ImageMetadata{}, &ImageError{Operation: "decode", Err: err}
	}

	b := img.Bounds()
	meta := ImageMetadata{
		Path:      path,
		Format:    format,
		SizeBytes: fi.Size(),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	return img, meta, nil
}

// SaveTempPNG encodes img into a fresh temporary PNG file and returns its
// path. The caller owns deletion. An empty dir uses the OS temp directory.
func SaveTempPNG(img image.Image, dir, pattern string) (string, error) {
	if img == nil {
		return "", &ImageError{Operation: "save", Err: errors.New("nil image")}
	}
	if pattern == "" {
		pattern = "lembar-*.png"
	}
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", &ImageError{Operation: "save", Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", &ImageError{Operation: "save", Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", &ImageError{Operation: "save", Err: err}
	}
	return f.Name(), nil
}
