// Package area implements rectangle arithmetic in pixel-index space.
//
// An Area is either the full extent of an owning buffer (X and Y are zero)
// or a window relative to an owner. All coordinates are unsigned; sums that
// could overflow uint32 are computed in uint64.
package area

import (
	"fmt"
	"iter"
	"math"
)

// Area is an axis-aligned rectangle.
type Area struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// Point is a coordinate pair.
type Point struct {
	X uint32
	Y uint32
}

// From returns the area at (x, y) with the given size.
func From(x, y, width, height uint32) Area {
	return Area{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the area covers no pixel.
func (a Area) Empty() bool {
	return a.Width == 0 || a.Height == 0
}

// Absolute iterates the area in row-major order, yielding owner-space
// coordinates (X+x, Y+y).
func (a Area) Absolute() iter.Seq2[uint32, uint32] {
	return func(yield func(uint32, uint32) bool) {
		for y := range a.Height {
			for x := range a.Width {
				if !yield(a.X+x, a.Y+y) {
					return
				}
			}
		}
	}
}

// Relative iterates the area in row-major order, yielding coordinates
// relative to the area origin.
func (a Area) Relative() iter.Seq2[uint32, uint32] {
	return func(yield func(uint32, uint32) bool) {
		for y := range a.Height {
			for x := range a.Width {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Contains reports whether the relative coordinate (x, y) lies inside the area.
func (a Area) Contains(x, y uint32) bool {
	return x < a.Width && y < a.Height
}

// Within reports whether the area fits inside owner's extent.
func (a Area) Within(owner Area) bool {
	return uint64(a.X)+uint64(a.Width) <= uint64(owner.Width) &&
		uint64(a.Y)+uint64(a.Height) <= uint64(owner.Height)
}

// Overlaps reports whether a and b share at least one pixel. Both areas
// must be expressed in the same coordinate space.
func (a Area) Overlaps(b Area) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return uint64(a.X) < uint64(b.X)+uint64(b.Width) &&
		uint64(b.X) < uint64(a.X)+uint64(a.Width) &&
		uint64(a.Y) < uint64(b.Y)+uint64(b.Height) &&
		uint64(b.Y) < uint64(a.Y)+uint64(a.Height)
}

// Len returns Width*Height*channels, the number of channel values needed to
// store the area. It panics if the product does not fit in an int.
func (a Area) Len(channels int) int {
	if channels < 0 {
		panic("negative channel count")
	}

	n := uint64(a.Width) * uint64(a.Height)
	if channels != 0 && n > math.MaxInt/uint64(channels) {
		panic(fmt.Sprintf("area %dx%dx%d too large", a.Width, a.Height, channels))
	}

	return int(n) * channels
}

func (a Area) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", a.Width, a.Height, a.X, a.Y)
}
