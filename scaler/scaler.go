// Package scaler resamples views into new buffers with a separable,
// two-pass convolution.
//
// The horizontal pass resamples every source row into an intermediate
// float64 plane of shape (width, source height); the vertical pass then
// accumulates whole plane rows into each output row. Contributions are
// edge-clamped and normalized by the weights actually used, so borders keep
// their brightness.
package scaler

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"picto/buffer"
	"picto/pixel"
	"picto/sampler"
	"picto/view"
)

// contrib is the run of source samples feeding one output sample.
type contrib struct {
	start   int
	weights []float64
}

// Scale resamples src to width x height using s and returns the result in
// channel domain CO.
//
// It panics if width or height is zero or if src is empty.
func Scale[CO, C pixel.Channel, P pixel.Pixel[P]](src view.Read[C, P], width, height uint32, s sampler.Sampler) *buffer.Buffer[CO, P] {
	if width == 0 || height == 0 {
		panic("zero target dimension")
	}
	sw, sh := src.Dimensions()
	if sw == 0 || sh == 0 {
		panic("empty source")
	}

	if sampler.IsNearest(s) {
		return nearest[CO](src, width, height)
	}

	n := pixel.Channels[P]()
	cols := table(sw, width, s)
	rows := table(sh, height, s)

	// horizontal pass
	stride := int(width) * n
	plane := make([]float64, int(sh)*stride)
	line := make([]float64, int(sw)*n)
	for y := range sh {
		for x := range sw {
			v := src.Get(x, y).Values()
			for c := range n {
				line[int(x)*n+c] = float64(v[c])
			}
		}

		out := plane[int(y)*stride : int(y+1)*stride]
		for x, k := range cols {
			acc := out[x*n : x*n+n]
			for i, w := range k.weights {
				in := line[(k.start+i)*n:]
				for c := range n {
					acc[c] += w * in[c]
				}
			}
		}
	}

	// vertical pass
	dst := buffer.New[CO, P](width, height)
	data := dst.Raw()
	acc := make([]float64, stride)
	scratch := make([]float64, stride)
	for y, k := range rows {
		clear(acc)
		for i, w := range k.weights {
			j := k.start + i
			vecmath.ScaleBlock(scratch, plane[j*stride:(j+1)*stride], w)
			vecmath.AddBlockInPlace(acc, scratch)
		}

		out := data[y*stride : (y+1)*stride]
		for i, v := range acc {
			out[i] = pixel.FromFloat[CO](float32(v))
		}
	}

	return dst
}

// Resize resamples src keeping its channel domain.
func Resize[C pixel.Channel, P pixel.Pixel[P]](src view.Read[C, P], width, height uint32, s sampler.Sampler) *buffer.Buffer[C, P] {
	return Scale[C](src, width, height, s)
}

// Blur returns a Gaussian blur of src with standard deviation sigma, in
// pixels.
//
// It panics unless sigma is positive.
func Blur[C pixel.Channel, P pixel.Pixel[P]](src view.Read[C, P], sigma float64) *buffer.Buffer[C, P] {
	w, h := src.Dimensions()
	return Scale[C](src, w, h, sampler.NewGaussian(sigma))
}

// Sharpen applies an unsharp mask: every channel moves away from its
// Gaussian-blurred value by amount times the difference.
func Sharpen[C pixel.Channel, P pixel.Pixel[P]](src view.Read[C, P], sigma, amount float64) *buffer.Buffer[C, P] {
	dst := Blur(src, sigma)
	n := pixel.Channels[P]()
	data := dst.Raw()

	i := 0
	for _, p := range src.Pixels() {
		v := p.Values()
		for c := range n {
			orig := float64(v[c])
			blur := float64(pixel.Float(data[i]))
			data[i] = pixel.FromFloat[C](float32(orig + amount*(orig-blur)))
			i++
		}
	}

	return dst
}

func nearest[CO, C pixel.Channel, P pixel.Pixel[P]](src view.Read[C, P], width, height uint32) *buffer.Buffer[CO, P] {
	sw, sh := src.Dimensions()
	xs := lookup(sw, width)
	ys := lookup(sh, height)

	dst := buffer.New[CO, P](width, height)
	for y, sy := range ys {
		for x, sx := range xs {
			dst.Set(uint32(x), uint32(y), src.Get(sx, sy))
		}
	}

	return dst
}

// lookup maps every output index to floor((i+0.5)*src/dst), in integer
// arithmetic so exact ratios never round the wrong way.
func lookup(src, dst uint32) []uint32 {
	idx := make([]uint32, dst)
	for i := range idx {
		j := (2*uint64(i) + 1) * uint64(src) / (2 * uint64(dst))
		idx[i] = uint32(min(j, uint64(src-1)))
	}
	return idx
}

// table computes the normalized contributions of src samples to each of the
// dst output samples along one axis.
func table(src, dst uint32, s sampler.Sampler) []contrib {
	ratio := float64(src) / float64(dst)
	support := s.Support()
	last := int(src) - 1

	t := make([]contrib, dst)
	for i := range t {
		center := (float64(i)+0.5)*ratio - 0.5
		lo := max(int(math.Floor(center-support)), 0)
		hi := min(int(math.Ceil(center+support)), last)

		weights := make([]float64, 0, max(hi-lo+1, 1))
		sum := 0.0
		for j := lo; j <= hi; j++ {
			w := s.Kernel(center - float64(j))
			weights = append(weights, w)
			sum += w
		}

		if sum == 0 {
			j := min(max(int(math.Round(center)), 0), last)
			t[i] = contrib{start: j, weights: []float64{1}}
			continue
		}

		for j := range weights {
			weights[j] /= sum
		}
		t[i] = contrib{start: lo, weights: weights}
	}

	return t
}
