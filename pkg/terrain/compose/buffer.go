package compose

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
)

// ColorBuffer is a square row-major pixel grid matching a noise field.
type ColorBuffer struct {
	Size int
	Pix  []color.RGBA
}

// NewColorBuffer returns a size × size buffer of transparent black pixels.
// A negative size yields an empty buffer.
func NewColorBuffer(size int) ColorBuffer {
	if size < 0 {
		size = 0
	}
	return ColorBuffer{Size: size, Pix: make([]color.RGBA, size*size)}
}

// At returns the pixel at column x, row y.
func (b ColorBuffer) At(x, y int) color.RGBA {
	return b.Pix[y*b.Size+x]
}

// Grayscale renders field as black (0) to white (1).
func Grayscale(field noise.Field) ColorBuffer {
	buf := NewColorBuffer(field.Size)
	for i, v := range field.Values {
		buf.Pix[i] = gray(v)
	}
	return buf
}

func gray(v float64) color.RGBA {
	g := uint8(clamp01(v)*255 + 0.5)
	return color.RGBA{R: g, G: g, B: g, A: 0xff}
}

// Image copies the buffer into an *image.RGBA.
func (b ColorBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Size, b.Size))
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			img.SetRGBA(x, y, b.At(x, y))
		}
	}
	return img
}

// Texture returns the buffer resampled to size × size with point
// filtering. A non-positive size returns the buffer at its own size.
func (b ColorBuffer) Texture(size int) *image.RGBA {
	src := b.Image()
	if size <= 0 || size == b.Size || b.Size == 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
