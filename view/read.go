package view

import (
	"iter"

	"picto/area"
	"picto/pixel"
)

// Read is a read-only window.
type Read[C pixel.Channel, P pixel.Reader[P]] struct {
	window[C]
}

// NewRead returns a read view of the window a inside owner, whose channels
// are stored in data. It panics if a does not fit in owner.
func NewRead[C pixel.Channel, P pixel.Reader[P]](data []C, owner, a area.Area) Read[C, P] {
	return Read[C, P]{newWindow(data, owner, a, pixel.Channels[P]())}
}

// Get returns the pixel at (x, y), relative to the window.
//
// It panics unless x < Width() and y < Height().
func (r Read[C, P]) Get(x, y uint32) P {
	return pixel.Read[C, P](r.pixel(x, y, pixel.Channels[P]()))
}

// Readable returns a read view of b, resolved relative to this window.
//
// It panics if the result does not fit in this window.
func (r Read[C, P]) Readable(b area.Builder) Read[C, P] {
	return Read[C, P]{r.narrow(b)}
}

// Pixels iterates the window in row-major order.
func (r Read[C, P]) Pixels() iter.Seq2[area.Point, P] {
	return func(yield func(area.Point, P) bool) {
		for x, y := range r.area.Relative() {
			if !yield(area.Point{X: x, Y: y}, r.Get(x, y)) {
				return
			}
		}
	}
}
