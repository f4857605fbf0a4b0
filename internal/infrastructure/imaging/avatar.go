// Package imaging normalizes uploaded pictures.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultAvatarSize    = 256
	DefaultAvatarQuality = 82

	// OutputContentType is the type of every processed avatar.
	OutputContentType = "image/jpeg"
	OutputExtension   = ".jpg"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedAvatarMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// AvatarProcessor turns any accepted upload into a square JPEG.
type AvatarProcessor struct {
	size    int
	quality int
}

func NewAvatarProcessor(size, quality int) *AvatarProcessor {
	if size <= 0 {
		size = DefaultAvatarSize
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultAvatarQuality
	}
	return &AvatarProcessor{size: size, quality: quality}
}

// Process sniffs the real content type, center-crops the image to a square
// ("cover" fit) and scales it to size x size.
func (p *AvatarProcessor) Process(data []byte) ([]byte, error) {
	detected := mimetype.Detect(data).String()
	if !allowedAvatarMIMETypes[detected] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, detected)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.size, p.size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}

func centerSquare(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
