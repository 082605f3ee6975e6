package enhance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawala-tech/lembar/internal/testutil"
	"github.com/sawala-tech/lembar/internal/utils"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default is valid", cfg: DefaultConfig(), wantErr: false},
		{name: "scale of one", cfg: Config{Scale: 1}, wantErr: false},
		{name: "zero scale", cfg: Config{Scale: 0}, wantErr: true},
		{name: "scale too large", cfg: Config{Scale: 9}, wantErr: true},
		{name: "contrast out of range", cfg: Config{Scale: 2, Contrast: 150}, wantErr: true},
		{name: "negative sharpen", cfg: Config{Scale: 2, Sharpen: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnhance(t *testing.T) {
	src := testutil.WritePhotoFixture(t, t.TempDir(), "photo.png")

	cfg := DefaultConfig()
	cfg.TempDir = t.TempDir()
	enhanced, err := New(cfg, nil).Enhance(src)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(enhanced) })

	assert.Equal(t, cfg.TempDir, filepath.Dir(enhanced))

	_, srcMeta, err := utils.LoadImage(src)
	require.NoError(t, err)
	_, outMeta, err := utils.LoadImage(enhanced)
	require.NoError(t, err)

	// Default chain upscales by the configured factor.
	assert.Equal(t, srcMeta.Width*cfg.Scale, outMeta.Width)
	assert.Equal(t, srcMeta.Height*cfg.Scale, outMeta.Height)
}

func TestEnhance_NoScale(t *testing.T) {
	src := testutil.WritePhotoFixture(t, t.TempDir(), "photo.png")

	cfg := Config{Scale: 1, TempDir: t.TempDir()}
	enhanced, err := New(cfg, nil).Enhance(src)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(enhanced) })

	_, srcMeta, err := utils.LoadImage(src)
	require.NoError(t, err)
	_, outMeta, err := utils.LoadImage(enhanced)
	require.NoError(t, err)

	assert.Equal(t, srcMeta.Width, outMeta.Width)
	assert.Equal(t, srcMeta.Height, outMeta.Height)
}

func TestEnhance_MissingSource(t *testing.T) {
	_, err := New(DefaultConfig(), nil).Enhance(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestEnhance_UnsupportedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0o644))

	_, err := New(DefaultConfig(), nil).Enhance(path)
	assert.Error(t, err)
}
