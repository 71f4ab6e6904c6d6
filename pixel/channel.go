// Package pixel defines channel domains and how pixels move in and out of
// flat channel slices.
//
// Every channel domain converts to and from a canonical unit-interval
// float32 representation; pixel types are expressed in that representation
// and never see the storage domain directly.
package pixel

import "math"

// Channel is a numeric domain a single pixel component is stored in.
type Channel interface {
	uint8 | uint16 | float32 | float64
}

// Float converts a channel value to the canonical unit interval.
func Float[C Channel](c C) float32 {
	switch v := any(c).(type) {
	case uint8:
		return float32(v) / math.MaxUint8
	case uint16:
		return float32(v) / math.MaxUint16
	case float32:
		return v
	case float64:
		return float32(v)
	}
	panic("unreachable")
}

// FromFloat converts a canonical value into the channel domain. Integer
// domains clamp to [0, 1] and round to nearest; float domains store the
// value unchanged.
func FromFloat[C Channel](f float32) C {
	var c C
	switch p := any(&c).(type) {
	case *uint8:
		*p = uint8(quantize(f, math.MaxUint8))
	case *uint16:
		*p = uint16(quantize(f, math.MaxUint16))
	case *float32:
		*p = f
	case *float64:
		*p = float64(f)
	}
	return c
}

// Max returns the channel value representing 1.0.
func Max[C Channel]() C {
	return FromFloat[C](1)
}

// Zero returns the channel value representing 0.0.
func Zero[C Channel]() C {
	var c C
	return c
}

func quantize(f float32, scale float32) float32 {
	// NaN compares false on both branches and ends up as 0
	switch {
	case f >= 1:
		return scale
	case f > 0:
		return float32(math.Floor(float64(f*scale) + 0.5))
	default:
		return 0
	}
}
