// Package buffer implements owned image storage.
//
// A Buffer stores Width*Height pixels of kind P as a flat slice of channel
// values of domain C, row by row with no padding. Coordinates passed to Get,
// Set and the view constructors are programmer-controlled: out-of-range
// values panic rather than being clamped.
package buffer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"picto/area"
	"picto/color"
	"picto/pixel"
	"picto/view"
)

// ErrDimensionMismatch is returned when raw storage does not match the
// requested dimensions.
var ErrDimensionMismatch = errors.New("buffer: dimension mismatch")

// Buffer owns the channel storage of an image. Buffers must not be copied
// after first use.
type Buffer[C pixel.Channel, P pixel.Pixel[P]] struct {
	area    area.Area
	data    []C
	borrows view.Borrows
}

// New returns a buffer with every channel set to zero.
func New[C pixel.Channel, P pixel.Pixel[P]](width, height uint32) *Buffer[C, P] {
	a := area.From(0, 0, width, height)
	return &Buffer[C, P]{
		area: a,
		data: make([]C, a.Len(pixel.Channels[P]())),
	}
}

// FromPixel returns a buffer filled with p.
func FromPixel[C pixel.Channel, P pixel.Pixel[P]](width, height uint32, p P) *Buffer[C, P] {
	b := New[C, P](width, height)
	b.Fill(p)
	return b
}

// FromFunc returns a buffer whose pixels are produced by f. f is called
// exactly once per coordinate, in row-major order.
func FromFunc[C pixel.Channel, P pixel.Pixel[P]](width, height uint32, f func(x, y uint32) P) *Buffer[C, P] {
	b := New[C, P](width, height)
	for x, y := range b.area.Absolute() {
		b.Set(x, y, f(x, y))
	}
	return b
}

// FromGradient returns a buffer painted with g along o: Vertical varies
// color from top to bottom, Horizontal from left to right.
func FromGradient[C pixel.Channel, P pixel.Pixel[P]](width, height uint32, o area.Orientation, g color.Gradient[P]) *Buffer[C, P] {
	b := New[C, P](width, height)

	switch o {
	case area.Vertical:
		y := uint32(0)
		for p := range g.Take(int(height)) {
			for x := range width {
				b.Set(x, y, p)
			}
			y++
		}
	case area.Horizontal:
		x := uint32(0)
		for p := range g.Take(int(width)) {
			for y := range height {
				b.Set(x, y, p)
			}
			x++
		}
	default:
		panic(fmt.Sprintf("invalid orientation %v", o))
	}

	return b
}

// FromRaw wraps data without copying. It returns ErrDimensionMismatch if
// len(data) is not width*height*channels.
func FromRaw[C pixel.Channel, P pixel.Pixel[P]](width, height uint32, data []C) (*Buffer[C, P], error) {
	a := area.From(0, 0, width, height)
	if want := a.Len(pixel.Channels[P]()); len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d channel values, got %d",
			ErrDimensionMismatch, width, height, want, len(data))
	}

	return &Buffer[C, P]{area: a, data: data}, nil
}

// Raw returns the backing storage.
func (b *Buffer[C, P]) Raw() []C {
	return b.data
}

// Area returns the buffer extent; X and Y are always zero.
func (b *Buffer[C, P]) Area() area.Area {
	return b.area
}

// Width returns the width in pixels.
func (b *Buffer[C, P]) Width() uint32 {
	return b.area.Width
}

// Height returns the height in pixels.
func (b *Buffer[C, P]) Height() uint32 {
	return b.area.Height
}

// Dimensions returns width and height.
func (b *Buffer[C, P]) Dimensions() (uint32, uint32) {
	return b.area.Width, b.area.Height
}

// Get returns the pixel at (x, y).
//
// It panics unless x < Width() and y < Height().
func (b *Buffer[C, P]) Get(x, y uint32) P {
	n := pixel.Channels[P]()
	i := b.index(x, y, n)
	return pixel.Read[C, P](b.data[i : i+n])
}

// Set stores p at (x, y).
//
// It panics unless x < Width() and y < Height().
func (b *Buffer[C, P]) Set(x, y uint32, p P) {
	n := p.Channels()
	i := b.index(x, y, n)
	pixel.Write(p, b.data[i:i+n])
}

func (b *Buffer[C, P]) index(x, y uint32, channels int) int {
	if !b.area.Contains(x, y) {
		panic("out of bounds")
	}
	return channels * (int(y)*int(b.area.Width) + int(x))
}

// Fill stores p in every pixel.
func (b *Buffer[C, P]) Fill(p P) {
	n := p.Channels()
	for chunk := range slices.Chunk(b.data, n) {
		pixel.Write(p, chunk)
	}
}

// Pixels iterates all pixels in row-major order.
func (b *Buffer[C, P]) Pixels() iter.Seq2[area.Point, P] {
	return b.AsRead().Pixels()
}

// Clone returns a deep copy.
func (b *Buffer[C, P]) Clone() *Buffer[C, P] {
	return &Buffer[C, P]{area: b.area, data: slices.Clone(b.data)}
}

// Equal reports whether both buffers have the same size and storage.
func (b *Buffer[C, P]) Equal(other *Buffer[C, P]) bool {
	return b.area == other.area && slices.Equal(b.data, other.data)
}

func (b *Buffer[C, P]) window(builder area.Builder) area.Area {
	a := builder.Complete(b.area)
	if !a.Within(b.area) {
		panic("out of bounds")
	}
	return a
}

// Readable returns a read view of the given window.
//
// It panics if the window does not fit in the buffer.
func (b *Buffer[C, P]) Readable(builder area.Builder) view.Read[C, P] {
	return view.NewRead[C, P](b.data, b.area, b.window(builder))
}

// Writable returns a write view of the given window. The view borrows its
// region until Release is called.
//
// It panics if the window does not fit in the buffer or overlaps a live
// write borrow.
func (b *Buffer[C, P]) Writable(builder area.Builder) view.Write[C, P] {
	a := b.window(builder)
	return view.NewWrite[C, P](b.data, b.area, a).Tracked(b.borrows.Acquire(a))
}

// View returns a read-write view of the given window. The view borrows its
// region until Release is called.
//
// It panics if the window does not fit in the buffer or overlaps a live
// write borrow.
func (b *Buffer[C, P]) View(builder area.Builder) view.View[C, P] {
	a := b.window(builder)
	return view.New[C, P](b.data, b.area, a).Tracked(b.borrows.Acquire(a))
}

// AsRead returns a read view of the whole buffer.
func (b *Buffer[C, P]) AsRead() view.Read[C, P] {
	return b.Readable(area.Builder{})
}

// AsWrite returns a write view of the whole buffer.
func (b *Buffer[C, P]) AsWrite() view.Write[C, P] {
	return b.Writable(area.Builder{})
}

// AsView returns a read-write view of the whole buffer.
func (b *Buffer[C, P]) AsView() view.View[C, P] {
	return b.View(area.Builder{})
}

// Borrowed returns the number of live write borrows.
func (b *Buffer[C, P]) Borrowed() int {
	return b.borrows.Live()
}
