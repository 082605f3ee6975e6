package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawala-tech/lembar/internal/testutil"
)

func TestResolvePhoto_ImagePassThrough(t *testing.T) {
	path := testutil.WritePhotoFixture(t, t.TempDir(), "photo.png")

	resolved, cleanup, err := ResolvePhoto(path)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, path, resolved)

	// Cleanup of a pass-through photo must not delete the original.
	cleanup()
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestResolvePhoto_EmptyReference(t *testing.T) {
	_, cleanup, err := ResolvePhoto("")
	require.Error(t, err)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestResolvePhoto_MissingImage(t *testing.T) {
	_, cleanup, err := ResolvePhoto(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestResolvePhoto_BrokenPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, cleanup, err := ResolvePhoto(path)
	require.Error(t, err)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestFirstExtractedImage(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePhotoFixture(t, dir, "page_2_img.png")
	testutil.WritePhotoFixture(t, dir, "page_1_img.png")
	// A corrupt file that sorts first must be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page_0_img.png"), []byte("junk"), 0o644))

	img, err := firstExtractedImage(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page_1_img.png"), img)
}

func TestFirstExtractedImage_NoImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	_, err := firstExtractedImage(dir)
	assert.Error(t, err)
}
