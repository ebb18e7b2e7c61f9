package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateFilename(t *testing.T) {
	t.Run("AllowedExtensions", func(t *testing.T) {
		for _, name := range []string{"heart.png", "heart.jpg", "heart.jpeg", "HEART.PNG"} {
			assert.NoError(t, ValidateFilename(name), name)
		}
	})

	t.Run("RejectedExtensions", func(t *testing.T) {
		for _, name := range []string{"heart.gif", "heart.bmp", "heart.pdf", "heart.png.exe"} {
			assert.Error(t, ValidateFilename(name), name)
		}
	})

	t.Run("NoExtension", func(t *testing.T) {
		assert.ErrorContains(t, ValidateFilename("heart"), "no extension")
	})
}

func TestPrepare(t *testing.T) {
	t.Run("ResizesToSquareTarget", func(t *testing.T) {
		p := NewPreparer(32)
		out, err := p.Prepare(encodePNG(t, 640, 480))
		require.NoError(t, err)

		decoded, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, image.Rect(0, 0, 32, 32), decoded.Bounds())
	})

	t.Run("DefaultTargetSize", func(t *testing.T) {
		p := NewPreparer(0)
		out, err := p.Prepare(encodePNG(t, 100, 100))
		require.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, DefaultTargetSize, decoded.Bounds().Dx())
		assert.Equal(t, DefaultTargetSize, decoded.Bounds().Dy())
	})

	t.Run("UpscalesSmallImages", func(t *testing.T) {
		p := NewPreparer(64)
		out, err := p.Prepare(encodePNG(t, 8, 8))
		require.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 64, decoded.Bounds().Dx())
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		_, err := NewPreparer(32).Prepare(nil)
		assert.ErrorContains(t, err, "empty image payload")
	})

	t.Run("OversizedPayload", func(t *testing.T) {
		_, err := NewPreparer(32).Prepare(make([]byte, MaxPayloadBytes+1))
		assert.ErrorContains(t, err, "exceeds maximum")
	})

	t.Run("UndecodablePayload", func(t *testing.T) {
		_, err := NewPreparer(32).Prepare([]byte("not an image at all"))
		assert.ErrorContains(t, err, "decode image")
	})
}
