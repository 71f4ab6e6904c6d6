package palette

import (
	"image"

	"golang.org/x/image/draw"

	"picto/buffer"
	"picto/color"
	"picto/pixel"
	"picto/view"
)

// Quantize replaces every pixel of v with its nearest palette color in
// place. Alpha is preserved.
func Quantize[C pixel.Channel, P color.Pixel[P]](v view.View[C, P], pal Palette) {
	m := newMatcher(pal)
	var zero P
	for pt, p := range v.Pixels() {
		v.Set(pt.X, pt.Y, zero.FromRgba(m.convert(p.ToRgba())))
	}
}

// Dither returns src reduced to pal with Floyd-Steinberg error diffusion.
// The result is opaque.
func Dither[C pixel.Channel, P color.Pixel[P]](src view.Read[C, P], pal Palette) *buffer.Buffer[C, P] {
	img := buffer.ImageOf(src)
	r := img.Bounds()
	dst := image.NewPaletted(r, pal.Std())
	draw.FloydSteinberg.Draw(dst, r, img, r.Min)

	return buffer.FromImage[C, P](dst)
}
