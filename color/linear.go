// based on:
// https://bottosson.github.io/posts/colorwrong/#what-can-we-do%3F

package color

import "math"

// ToLinear maps an sRGB-encoded component to linear light.
func ToLinear(x float32) float32 {
	return float32(toLinear(float64(x)))
}

// FromLinear maps a linear-light component back to sRGB encoding.
func FromLinear(x float32) float32 {
	return float32(fromLinear(float64(x)))
}

// Linear returns the color with its RGB components in linear light. Alpha
// is left untouched.
func (c Rgba) Linear() Rgba {
	return Rgba{
		R: ToLinear(c.R),
		G: ToLinear(c.G),
		B: ToLinear(c.B),
		A: c.A,
	}
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	} else {
		return x / 12.92
	}
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	} else {
		return x * 12.92
	}
}
