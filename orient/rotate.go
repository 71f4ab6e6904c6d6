package orient

import (
	"picto/buffer"
	"picto/color"
	"picto/pixel"
	"picto/view"
)

// Rotate returns src turned clockwise by the given number of degrees,
// converted to the pixel kind PO stored in channel domain CO. Negative
// degrees turn counter-clockwise.
//
// It panics unless by is a multiple of 90.
func Rotate[CO pixel.Channel, PO color.Pixel[PO], C pixel.Channel, P color.Pixel[P]](src view.Read[C, P], by int) *buffer.Buffer[CO, PO] {
	if by%90 != 0 {
		panic("rotation must be a multiple of 90 degrees")
	}

	w, h := src.Dimensions()
	switch Degrees(by) {
	case 0:
		return buffer.ConvertView[CO, PO](src)
	case 90:
		dst := buffer.New[CO, PO](h, w)
		for pt, p := range src.Pixels() {
			dst.Set(h-1-pt.Y, pt.X, color.Convert[PO](p))
		}
		return dst
	case 180:
		dst := buffer.New[CO, PO](w, h)
		for pt, p := range src.Pixels() {
			dst.Set(w-1-pt.X, h-1-pt.Y, color.Convert[PO](p))
		}
		return dst
	case 270:
		dst := buffer.New[CO, PO](h, w)
		for pt, p := range src.Pixels() {
			dst.Set(pt.Y, w-1-pt.X, color.Convert[PO](p))
		}
		return dst
	}

	panic("unreachable rotation")
}

// Degrees normalizes by into [0, 360).
func Degrees(by int) int {
	if by < 0 {
		return (360 - (-by)%360) % 360
	}
	return by % 360
}
