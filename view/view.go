package view

import (
	"iter"

	"picto/area"
	"picto/pixel"
)

// View is a read-write window, composing Read and Write.
type View[C pixel.Channel, P pixel.Pixel[P]] struct {
	window[C]
	release func()
}

// New returns an untracked read-write view of the window a inside owner.
// It panics if a does not fit in owner.
func New[C pixel.Channel, P pixel.Pixel[P]](data []C, owner, a area.Area) View[C, P] {
	return View[C, P]{window: newWindow(data, owner, a, pixel.Channels[P]())}
}

// Get returns the pixel at (x, y), relative to the window.
func (v View[C, P]) Get(x, y uint32) P {
	return v.Read().Get(x, y)
}

// Set stores p at (x, y), relative to the window.
func (v View[C, P]) Set(x, y uint32, p P) {
	v.Write().Set(x, y, p)
}

// Fill stores p at every coordinate of the window.
func (v View[C, P]) Fill(p P) {
	v.Write().Fill(p)
}

// Pixels iterates the window in row-major order.
func (v View[C, P]) Pixels() iter.Seq2[area.Point, P] {
	return v.Read().Pixels()
}

// Read returns the read-only half of the view.
func (v View[C, P]) Read() Read[C, P] {
	return Read[C, P]{v.window}
}

// Write returns the write-only half of the view. It holds the same borrow,
// so releasing either one releases both.
func (v View[C, P]) Write() Write[C, P] {
	return Write[C, P]{window: v.window, release: v.release}
}

// Readable returns a read view of b, resolved relative to this window.
func (v View[C, P]) Readable(b area.Builder) Read[C, P] {
	return Read[C, P]{v.narrow(b)}
}

// Writable returns a write view of b, resolved relative to this window. The
// result lives under this view's borrow and its Release is a no-op.
func (v View[C, P]) Writable(b area.Builder) Write[C, P] {
	return Write[C, P]{window: v.narrow(b)}
}

// View returns a read-write view of b, resolved relative to this window. The
// result lives under this view's borrow and its Release is a no-op.
func (v View[C, P]) View(b area.Builder) View[C, P] {
	return View[C, P]{window: v.narrow(b)}
}

// Release ends the borrow held by the view.
func (v View[C, P]) Release() {
	if v.release != nil {
		v.release()
	}
}

// Tracked returns a copy of v whose Release calls release.
func (v View[C, P]) Tracked(release func()) View[C, P] {
	v.release = release
	return v
}
