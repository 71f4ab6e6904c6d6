// Package color provides the canonical pixel kinds: Rgb, Rgba, Luma and
// Lumaa. Components are float32 in [0, 1].
//
// All kinds convert to each other through Rgba, and all of them implement
// image/color.Color so buffers can be handed to the standard encoders.
package color

import (
	stdcolor "image/color"

	"picto/pixel"
)

// Pixel is a pixel kind that can be converted to and from Rgba.
type Pixel[P any] interface {
	pixel.Pixel[P]
	stdcolor.Color

	ToRgba() Rgba
	FromRgba(Rgba) P
}

var (
	_ Pixel[Rgb]   = Rgb{}
	_ Pixel[Rgba]  = Rgba{}
	_ Pixel[Luma]  = Luma{}
	_ Pixel[Lumaa] = Lumaa{}
)

// Convert converts p to the pixel kind PO. The conversion is total: alpha
// defaults to opaque, alpha-less targets drop it and gray targets use the
// Rec. 709 luminance weights.
func Convert[PO Pixel[PO], PI Pixel[PI]](p PI) PO {
	var out PO
	return out.FromRgba(p.ToRgba())
}

// luminance weights (Rec. 709)
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Rgb is an opaque color.
type Rgb struct {
	R, G, B float32
}

// NewRgb returns an Rgb color.
func NewRgb(r, g, b float32) Rgb {
	return Rgb{R: r, G: g, B: b}
}

func (Rgb) Channels() int { return 3 }

func (c Rgb) Values() pixel.Values { return pixel.Values{c.R, c.G, c.B} }

func (Rgb) FromValues(v pixel.Values) Rgb { return Rgb{R: v[0], G: v[1], B: v[2]} }

func (c Rgb) ToRgba() Rgba { return Rgba{R: c.R, G: c.G, B: c.B, A: 1} }

func (Rgb) FromRgba(c Rgba) Rgb { return Rgb{R: c.R, G: c.G, B: c.B} }

func (c Rgb) RGBA() (uint32, uint32, uint32, uint32) { return c.ToRgba().RGBA() }

// Rgba is a color with straight (non-premultiplied) alpha.
type Rgba struct {
	R, G, B, A float32
}

// NewRgba returns an Rgba color.
func NewRgba(r, g, b, a float32) Rgba {
	return Rgba{R: r, G: g, B: b, A: a}
}

func (Rgba) Channels() int { return 4 }

func (c Rgba) Values() pixel.Values { return pixel.Values{c.R, c.G, c.B, c.A} }

func (Rgba) FromValues(v pixel.Values) Rgba { return Rgba{R: v[0], G: v[1], B: v[2], A: v[3]} }

func (c Rgba) ToRgba() Rgba { return c }

func (Rgba) FromRgba(c Rgba) Rgba { return c }

// RGBA returns alpha-premultiplied 16-bit components, as image/color expects.
func (c Rgba) RGBA() (uint32, uint32, uint32, uint32) {
	a := unit16(c.A)
	return premul(c.R, a), premul(c.G, a), premul(c.B, a), a
}

// Luma is an opaque gray level.
type Luma struct {
	L float32
}

// NewLuma returns a Luma color.
func NewLuma(l float32) Luma {
	return Luma{L: l}
}

func (Luma) Channels() int { return 1 }

func (c Luma) Values() pixel.Values { return pixel.Values{c.L} }

func (Luma) FromValues(v pixel.Values) Luma { return Luma{L: v[0]} }

func (c Luma) ToRgba() Rgba { return Rgba{R: c.L, G: c.L, B: c.L, A: 1} }

func (Luma) FromRgba(c Rgba) Luma { return Luma{L: luminance(c)} }

func (c Luma) RGBA() (uint32, uint32, uint32, uint32) { return c.ToRgba().RGBA() }

// Lumaa is a gray level with alpha.
type Lumaa struct {
	L, A float32
}

// NewLumaa returns a Lumaa color.
func NewLumaa(l, a float32) Lumaa {
	return Lumaa{L: l, A: a}
}

func (Lumaa) Channels() int { return 2 }

func (c Lumaa) Values() pixel.Values { return pixel.Values{c.L, c.A} }

func (Lumaa) FromValues(v pixel.Values) Lumaa { return Lumaa{L: v[0], A: v[1]} }

func (c Lumaa) ToRgba() Rgba { return Rgba{R: c.L, G: c.L, B: c.L, A: c.A} }

func (Lumaa) FromRgba(c Rgba) Lumaa { return Lumaa{L: luminance(c), A: c.A} }

func (c Lumaa) RGBA() (uint32, uint32, uint32, uint32) { return c.ToRgba().RGBA() }

func luminance(c Rgba) float32 {
	return lumaR*c.R + lumaG*c.G + lumaB*c.B
}

func unit16(f float32) uint32 {
	return uint32(pixel.FromFloat[uint16](f))
}

func premul(f float32, a uint32) uint32 {
	return unit16(f) * a / 0xffff
}
