package imagevariants

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/image-variants/pkg/processing"
	"github.com/menta2k/image-variants/pkg/sizes"
)

// createTestImage creates a simple gradient test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	return img
}

func TestNew(t *testing.T) {
	g, err := New("photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, 4, g.Catalog().Len())

	_, err = New("")
	assert.Error(t, err)
}

func TestGenerateVariants(t *testing.T) {
	src := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, imaging.Save(createTestImage(2000, 1500), src))

	paths, err := GenerateVariants(src, nil)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(filepath.Dir(src), "photo-xs.jpg"), paths[0])
	assert.Equal(t, filepath.Join(filepath.Dir(src), "photo-l.jpg"), paths[3])

	img, err := imaging.Open(paths[0])
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 480, 360), img.Bounds())
}

func TestGenerateVariant(t *testing.T) {
	src := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, imaging.Save(createTestImage(1000, 250), src))

	path, err := GenerateVariant(src, sizes.Spec{Label: "hero", MaxWidth: 400, MaxHeight: 400})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(src), "banner-hero.png"), path)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 100), img.Bounds())

	_, err = GenerateVariant(src, sizes.Spec{Label: "bad", MaxWidth: 0, MaxHeight: 10})
	assert.ErrorIs(t, err, sizes.ErrInvalidDimensions)
}

func TestGenerateVariantsMissingSource(t *testing.T) {
	_, err := GenerateVariants(filepath.Join(t.TempDir(), "gone.jpg"), nil)
	assert.ErrorIs(t, err, processing.ErrDecode)
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
