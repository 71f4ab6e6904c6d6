package color

import (
	stdcolor "image/color"
)

// Models converting any image/color.Color into the canonical kinds.
var (
	RgbModel   = stdcolor.ModelFunc(rgbConvert)
	RgbaModel  = stdcolor.ModelFunc(rgbaConvert)
	LumaModel  = stdcolor.ModelFunc(lumaConvert)
	LumaaModel = stdcolor.ModelFunc(lumaaConvert)
)

// canonical is implemented by all kinds of this package.
type canonical interface {
	ToRgba() Rgba
}

// FromColor converts any image/color.Color to Rgba, keeping full precision
// for the kinds of this package.
func FromColor(c stdcolor.Color) Rgba {
	if cc, ok := c.(canonical); ok {
		return cc.ToRgba()
	}

	n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
	return Rgba{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

// ModelOf returns the image/color model producing values of kind P.
func ModelOf[P Pixel[P]]() stdcolor.Model {
	return stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
		if p, ok := c.(P); ok {
			return p
		}
		var p P
		return p.FromRgba(FromColor(c))
	})
}

func rgbConvert(c stdcolor.Color) stdcolor.Color {
	if _, ok := c.(Rgb); ok {
		return c
	}
	return Rgb{}.FromRgba(FromColor(c))
}

func rgbaConvert(c stdcolor.Color) stdcolor.Color {
	if _, ok := c.(Rgba); ok {
		return c
	}
	return FromColor(c)
}

func lumaConvert(c stdcolor.Color) stdcolor.Color {
	if _, ok := c.(Luma); ok {
		return c
	}
	return Luma{}.FromRgba(FromColor(c))
}

func lumaaConvert(c stdcolor.Color) stdcolor.Color {
	if _, ok := c.(Lumaa); ok {
		return c
	}
	return Lumaa{}.FromRgba(FromColor(c))
}
