package buffer

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"picto/color"
	"picto/pixel"
	"picto/view"
)

// Image adapts a read view to image.Image.
type Image[C pixel.Channel, P color.Pixel[P]] struct {
	view.Read[C, P]
}

var _ image.Image = Image[uint8, color.Rgb]{}

// ColorModel returns the model of the pixel kind P.
func (m Image[C, P]) ColorModel() stdcolor.Model {
	return color.ModelOf[P]()
}

// Bounds returns the view rectangle anchored at the origin.
func (m Image[C, P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.Width()), int(m.Height()))
}

// At returns the pixel at (x, y), or a transparent pixel outside the bounds
// as image.Image requires.
func (m Image[C, P]) At(x, y int) stdcolor.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Rgba{}
	}
	return m.Get(uint32(x), uint32(y))
}

// ImageOf returns v as an image.Image sharing its storage. The pixel kind
// must be one of the canonical color kinds.
func ImageOf[C pixel.Channel, P color.Pixel[P]](v view.Read[C, P]) Image[C, P] {
	return Image[C, P]{v}
}

// FromImage copies img into a new buffer. The source is drawn into a 16-bit
// straight-alpha canvas first, then the buffer is filled in row order.
func FromImage[C pixel.Channel, P color.Pixel[P]](img image.Image) *Buffer[C, P] {
	r := img.Bounds()

	src, ok := img.(*image.NRGBA64)
	if !ok || r.Min != (image.Point{}) {
		src = image.NewNRGBA64(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(src, src.Bounds(), img, r.Min, draw.Src)
	}

	b := New[C, P](uint32(r.Dx()), uint32(r.Dy()))
	var zero P
	for y := range b.area.Height {
		row := src.Pix[int(y)*src.Stride:]
		for x := range b.area.Width {
			px := row[int(x)*8:]
			b.Set(x, y, zero.FromRgba(color.Rgba{
				R: unit(px[0], px[1]),
				G: unit(px[2], px[3]),
				B: unit(px[4], px[5]),
				A: unit(px[6], px[7]),
			}))
		}
	}

	return b
}

func unit(hi, lo uint8) float32 {
	return float32(uint16(hi)<<8|uint16(lo)) / 0xffff
}
