// Package orient implements geometric transforms on views and the orient
// command that normalizes a folder of pictures to one orientation.
package orient

import (
	"fmt"

	"picto/area"
	"picto/pixel"
	"picto/view"
)

// Orientation selects the flip axis.
type Orientation = area.Orientation

const (
	// Vertical swaps rows top to bottom.
	Vertical = area.Vertical
	// Horizontal swaps columns left to right.
	Horizontal = area.Horizontal
)

// Flip mirrors v in place. An odd middle row or column stays where it is,
// and a view of size 1 or less along the axis is left untouched.
func Flip[C pixel.Channel, P pixel.Pixel[P]](v view.View[C, P], o Orientation) {
	width, height := v.Dimensions()

	switch o {
	case Vertical:
		for y := uint32(0); y < height/2; y++ {
			mirror := height - 1 - y
			for x := range width {
				top, bottom := v.Get(x, y), v.Get(x, mirror)
				v.Set(x, y, bottom)
				v.Set(x, mirror, top)
			}
		}
	case Horizontal:
		for x := uint32(0); x < width/2; x++ {
			mirror := width - 1 - x
			for y := range height {
				left, right := v.Get(x, y), v.Get(mirror, y)
				v.Set(x, y, right)
				v.Set(mirror, y, left)
			}
		}
	default:
		panic(fmt.Sprintf("invalid orientation %v", o))
	}
}
