package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// EquipImage is a character icon used to recognise who a relic is equipped on.
type EquipImage struct {
	Name  string      `json:"name"`
	Image *image.RGBA `json:"-"`
}

// Bounds returns the image size, or an empty rectangle when nothing is loaded.
func (e *EquipImage) Bounds() image.Rectangle {
	if e == nil || e.Image == nil {
		return image.Rectangle{}
	}
	return e.Image.Bounds()
}

// decodeRGBA decodes a png or webp icon. When size is positive the icon is
// scaled to size×size.
func decodeRGBA(r io.Reader, size int) (*image.RGBA, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode icon: %w", err)
	}

	if size > 0 {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst, format, nil
	}

	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba, format, nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, format, nil
}

// encodePNG renders img as png bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}
