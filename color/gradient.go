package color

import (
	"iter"

	"picto/pixel"
)

// Gradient interpolates linearly between evenly spaced color stops. The zero
// value has no stops; build gradients with NewGradient.
type Gradient[P pixel.Pixel[P]] struct {
	stops []P
}

// NewGradient returns a gradient through the given stops. It panics if no
// stop is given.
func NewGradient[P pixel.Pixel[P]](stops ...P) Gradient[P] {
	if len(stops) == 0 {
		panic("gradient needs at least one stop")
	}
	return Gradient[P]{stops: stops}
}

// At returns the color at t in [0, 1]; t outside that range is clamped.
// It panics on a gradient without stops.
func (g Gradient[P]) At(t float32) P {
	if len(g.stops) == 0 {
		panic("gradient has no stops")
	}
	if len(g.stops) == 1 || t <= 0 {
		return g.stops[0]
	}
	last := len(g.stops) - 1
	if t >= 1 {
		return g.stops[last]
	}

	pos := t * float32(last)
	i := int(pos)
	return Mix(g.stops[i], g.stops[i+1], pos-float32(i))
}

// Take yields n samples evenly spaced from the first to the last stop.
func (g Gradient[P]) Take(n int) iter.Seq[P] {
	return func(yield func(P) bool) {
		for i := range n {
			var t float32
			if n > 1 {
				t = float32(i) / float32(n-1)
			}
			if !yield(g.At(t)) {
				return
			}
		}
	}
}

// Mix interpolates component-wise between a and b.
func Mix[P pixel.Pixel[P]](a, b P, t float32) P {
	va, vb := a.Values(), b.Values()
	var out pixel.Values
	for i := range a.Channels() {
		out[i] = va[i] + (vb[i]-va[i])*t
	}
	return a.FromValues(out)
}
