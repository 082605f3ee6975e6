package testutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawala-tech/lembar/internal/utils"
)

func TestGenerateTextImage(t *testing.T) {
	cfg := DefaultTextImageConfig()
	img := GenerateTextImage(cfg)

	b := img.Bounds()
	assert.Equal(t, cfg.Width, b.Dx())
	assert.Equal(t, cfg.Height, b.Dy())

	// Corner pixel carries the background, not the text.
	assert.Equal(t, color.RGBA{40, 40, 40, 255}, img.RGBAAt(0, 0))

	// At least one pixel in the text band differs from the background.
	found := false
	for x := 0; x < cfg.Width && !found; x++ {
		for y := cfg.Height - 60; y < cfg.Height-20 && !found; y++ {
			if img.RGBAAt(x, y) != img.RGBAAt(0, 0) {
				found = true
			}
		}
	}
	assert.True(t, found, "overlay text should be drawn")
}

func TestWritePhotoFixture(t *testing.T) {
	path := WritePhotoFixture(t, t.TempDir(), "fixture.png")

	_, meta, err := utils.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "png", meta.Format)
	assert.Equal(t, 640, meta.Width)
	assert.Equal(t, 480, meta.Height)
}
