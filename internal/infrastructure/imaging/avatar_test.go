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
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAvatarProcessor_Process(t *testing.T) {
	p := NewAvatarProcessor(0, 0)

	tests := []struct {
		name string
		w, h int
	}{
		{"landscape", 640, 320},
		{"portrait", 100, 300},
		{"small square", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.Process(encodePNG(t, tt.w, tt.h))
			require.NoError(t, err)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, DefaultAvatarSize, cfg.Width)
			assert.Equal(t, DefaultAvatarSize, cfg.Height)
		})
	}
}

func TestAvatarProcessor_AcceptsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 50, 80)), nil))

	out, err := NewAvatarProcessor(64, 90).Process(buf.Bytes())
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
}

func TestAvatarProcessor_RejectsNonImages(t *testing.T) {
	p := NewAvatarProcessor(0, 0)

	_, err := p.Process([]byte("%PDF-1.7 not an avatar"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = p.Process([]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestCenterSquare(t *testing.T) {
	assert.Equal(t, image.Rect(100, 0, 300, 200), centerSquare(image.Rect(0, 0, 400, 200)))
	assert.Equal(t, image.Rect(0, 50, 100, 150), centerSquare(image.Rect(0, 0, 100, 200)))
}
