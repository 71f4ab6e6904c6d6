// Package view implements borrowed windows into a buffer's channel storage.
//
// A view never allocates. It keeps the owner's full area, needed for the
// row stride, and its own window in owner coordinates, so narrowing a view
// of a view still resolves every pixel with a single index computation:
//
//	index = channels * ((window.Y + y) * owner.Width + (window.X + x))
//
// Read, Write and View share that addressing through an embedded window.
package view

import (
	"picto/area"
	"picto/pixel"
)

type window[C pixel.Channel] struct {
	data  []C
	owner area.Area
	area  area.Area
}

// Area returns the window in owner coordinates.
func (w window[C]) Area() area.Area {
	return w.area
}

// Owner returns the full area of the storage owner.
func (w window[C]) Owner() area.Area {
	return w.owner
}

// Width returns the window width.
func (w window[C]) Width() uint32 {
	return w.area.Width
}

// Height returns the window height.
func (w window[C]) Height() uint32 {
	return w.area.Height
}

// Dimensions returns width and height.
func (w window[C]) Dimensions() (uint32, uint32) {
	return w.area.Width, w.area.Height
}

// index returns the offset of the relative pixel (x, y), panicking when the
// coordinate lies outside the window.
func (w window[C]) index(x, y uint32, channels int) int {
	if !w.area.Contains(x, y) {
		panic("out of bounds")
	}

	return channels * (int(w.area.Y+y)*int(w.owner.Width) + int(w.area.X+x))
}

func (w window[C]) pixel(x, y uint32, channels int) []C {
	i := w.index(x, y, channels)
	return w.data[i : i+channels : i+channels]
}

// narrow resolves b against the current window and re-bases the result in
// owner coordinates.
func (w window[C]) narrow(b area.Builder) window[C] {
	a := b.Complete(area.From(0, 0, w.area.Width, w.area.Height))
	if !a.Within(w.area) {
		panic("out of bounds")
	}

	a.X += w.area.X
	a.Y += w.area.Y
	return window[C]{data: w.data, owner: w.owner, area: a}
}

func newWindow[C pixel.Channel](data []C, owner, a area.Area, channels int) window[C] {
	if !a.Within(owner) {
		panic("out of bounds")
	}
	if len(data) < owner.Len(channels) {
		panic("storage smaller than owner area")
	}

	return window[C]{data: data, owner: owner, area: a}
}
