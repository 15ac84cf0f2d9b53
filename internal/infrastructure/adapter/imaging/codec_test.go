package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, format
}

func TestCodecNormalize(t *testing.T) {
	codec := NewCodec()

	t.Run("JPEG becomes PNG with the same size", func(t *testing.T) {
		out, err := codec.Normalize(encodeJPEG(t, 40, 30))
		require.NoError(t, err)

		img, format := decode(t, out)
		assert.Equal(t, "png", format)
		assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
	})

	t.Run("Transparent pixels are flattened onto white", func(t *testing.T) {
		out, err := codec.Normalize(encodePNG(t, 4, 4, color.NRGBA{}))
		require.NoError(t, err)

		img, _ := decode(t, out)
		r, g, b, a := img.At(1, 1).RGBA()
		assert.Equal(t, uint32(0xffff), a)
		assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	})

	t.Run("Garbage is rejected as an invalid image", func(t *testing.T) {
		_, err := codec.Normalize([]byte("definitely not an image"))
		assert.ErrorIs(t, err, errs.ErrInvalidImage)

		_, err = codec.Normalize(nil)
		assert.ErrorIs(t, err, errs.ErrInvalidImage)
	})

	t.Run("Pixel limit", func(t *testing.T) {
		small := NewCodec(WithMaxPixels(100))
		_, err := small.Normalize(encodePNG(t, 20, 20, color.Black))
		assert.ErrorIs(t, err, errs.ErrInvalidImage)
	})
}

func TestCodecFit(t *testing.T) {
	codec := NewCodec()

	t.Run("Landscape is bounded by width", func(t *testing.T) {
		out, err := codec.Fit(encodePNG(t, 400, 200, color.Black), 100)
		require.NoError(t, err)

		img, _ := decode(t, out)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy())
	})

	t.Run("Portrait is bounded by height", func(t *testing.T) {
		out, err := codec.Fit(encodePNG(t, 150, 300, color.Black), 100)
		require.NoError(t, err)

		img, _ := decode(t, out)
		assert.Equal(t, 50, img.Bounds().Dx())
		assert.Equal(t, 100, img.Bounds().Dy())
	})

	t.Run("Small images are returned unchanged", func(t *testing.T) {
		in := encodePNG(t, 64, 64, color.Black)
		out, err := codec.Fit(in, 1024)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestCodecThumbnail(t *testing.T) {
	codec := NewCodec()

	out, err := codec.Thumbnail(encodePNG(t, 800, 600, color.Black), 200)
	require.NoError(t, err)

	img, format := decode(t, out)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	_, err = codec.Thumbnail(encodePNG(t, 8, 8, color.Black), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
