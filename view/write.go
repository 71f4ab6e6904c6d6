package view

import (
	"picto/area"
	"picto/pixel"
)

// Write is a write-only window.
//
// A Write acquired from a buffer holds a borrow on its region until
// Release is called; see Borrows.
type Write[C pixel.Channel, P pixel.Writer] struct {
	window[C]
	release func()
}

// NewWrite returns an untracked write view of the window a inside owner.
// It panics if a does not fit in owner.
func NewWrite[C pixel.Channel, P pixel.Writer](data []C, owner, a area.Area) Write[C, P] {
	return Write[C, P]{window: newWindow(data, owner, a, pixel.Channels[P]())}
}

// Set stores p at (x, y), relative to the window.
//
// It panics unless x < Width() and y < Height().
func (w Write[C, P]) Set(x, y uint32, p P) {
	pixel.Write(p, w.pixel(x, y, p.Channels()))
}

// Fill stores p at every coordinate of the window.
func (w Write[C, P]) Fill(p P) {
	for x, y := range w.area.Relative() {
		w.Set(x, y, p)
	}
}

// Writable returns a write view of b, resolved relative to this window. The
// result lives under this view's borrow and its Release is a no-op.
//
// It panics if the result does not fit in this window.
func (w Write[C, P]) Writable(b area.Builder) Write[C, P] {
	return Write[C, P]{window: w.narrow(b)}
}

// Release ends the borrow held by the view. It is safe to call more than
// once and on views that hold no borrow.
func (w Write[C, P]) Release() {
	if w.release != nil {
		w.release()
	}
}

// Tracked returns a copy of w whose Release calls release.
func (w Write[C, P]) Tracked(release func()) Write[C, P] {
	w.release = release
	return w
}
