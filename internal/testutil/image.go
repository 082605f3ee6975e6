// Package testutil generates synthetic fixtures for tests: photo-like
// images with an overlay text line, written to temp files.
package testutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextImageConfig holds configuration for generated test images.
type TextImageConfig struct {
	Text       string
	Width      int
	Height     int
	Background color.Color
	Foreground color.Color
}

// DefaultTextImageConfig mimics a photo overlay: light text near the
// bottom of a dark frame.
func DefaultTextImageConfig() TextImageConfig {
	return TextImageConfig{
		Text:       "-6.876583, 107.576589",
		Width:      640,
		Height:     480,
		Background: color.RGBA{40, 40, 40, 255},
		Foreground: color.White,
	}
}

// GenerateTextImage draws the configured text onto a solid background.
func GenerateTextImage(cfg TextImageConfig) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{cfg.Background}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{cfg.Foreground},
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(20),
			Y: fixed.I(cfg.Height - 40),
		},
	}
	drawer.DrawString(cfg.Text)
	return img
}

// WriteTestImage saves a generated image as PNG under dir and returns its
// path.
func WriteTestImage(t *testing.T, dir, name string, cfg TextImageConfig) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // test fixture path
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, GenerateTextImage(cfg)))
	require.NoError(t, f.Close())
	return path
}

// WritePhotoFixture writes a default photo-like fixture and returns its path.
func WritePhotoFixture(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteTestImage(t, dir, name, DefaultTextImageConfig())
}
