package buffer

import (
	"picto/color"
	"picto/pixel"
	"picto/view"
)

// Convert returns a new buffer of the same size holding every pixel of b
// converted to the pixel kind PO, stored in the channel domain CO.
func Convert[CO pixel.Channel, PO color.Pixel[PO], C pixel.Channel, P color.Pixel[P]](b *Buffer[C, P]) *Buffer[CO, PO] {
	return ConvertFunc[CO](b, color.Convert[PO, P])
}

// ConvertFunc is like Convert with an explicit pixel conversion. Pixels are
// processed in address order.
func ConvertFunc[CO pixel.Channel, PO pixel.Pixel[PO], C pixel.Channel, P pixel.Pixel[P]](b *Buffer[C, P], f func(P) PO) *Buffer[CO, PO] {
	out := New[CO, PO](b.area.Width, b.area.Height)

	n, m := pixel.Channels[P](), pixel.Channels[PO]()
	for i, j := 0, 0; i < len(b.data); i, j = i+n, j+m {
		pixel.Write(f(pixel.Read[C, P](b.data[i:i+n])), out.data[j:j+m])
	}

	return out
}

// ConvertView returns a new buffer holding the pixels of v converted to the
// pixel kind PO.
func ConvertView[CO pixel.Channel, PO color.Pixel[PO], C pixel.Channel, P color.Pixel[P]](v view.Read[C, P]) *Buffer[CO, PO] {
	out := New[CO, PO](v.Width(), v.Height())
	for pt, p := range v.Pixels() {
		out.Set(pt.X, pt.Y, color.Convert[PO](p))
	}
	return out
}
