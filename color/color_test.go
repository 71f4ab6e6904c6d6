package color

import (
	stdcolor "image/color"
	"math"
	"slices"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestConvert(t *testing.T) {
	if got := Convert[Rgba](NewRgb(1, 0, 1)); got != NewRgba(1, 0, 1, 1) {
		t.Errorf("Rgb->Rgba = %v, want opaque", got)
	}
	if got := Convert[Rgb](NewRgba(0.2, 0.4, 0.6, 0.5)); got != NewRgb(0.2, 0.4, 0.6) {
		t.Errorf("Rgba->Rgb = %v", got)
	}
	if got := Convert[Rgb](NewLuma(0.25)); got != NewRgb(0.25, 0.25, 0.25) {
		t.Errorf("Luma->Rgb = %v", got)
	}
	if got := Convert[Lumaa](NewRgba(1, 1, 1, 0.5)); !near(got.L, 1) || got.A != 0.5 {
		t.Errorf("Rgba->Lumaa = %v", got)
	}

	gray := Convert[Luma](NewRgb(1, 0, 0))
	if !near(gray.L, lumaR) {
		t.Errorf("Rgb(red)->Luma = %v, want %v", gray.L, lumaR)
	}
}

func TestImageColorInterop(t *testing.T) {
	tests := []struct {
		name string
		c    stdcolor.Color
		want [4]uint32
	}{
		{"opaque rgb", NewRgb(1, 0, 1), [4]uint32{0xffff, 0, 0xffff, 0xffff}},
		{"half alpha", NewRgba(1, 1, 1, 0.5), [4]uint32{0x8000, 0x8000, 0x8000, 0x8000}},
		{"transparent", NewRgba(1, 1, 1, 0), [4]uint32{0, 0, 0, 0}},
		{"luma", NewLuma(0), [4]uint32{0, 0, 0, 0xffff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if got := [4]uint32{r, g, b, a}; got != tt.want {
				t.Errorf("RGBA() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestModels(t *testing.T) {
	if got := RgbaModel.Convert(stdcolor.NRGBA{R: 255, A: 255}); got != NewRgba(1, 0, 0, 1) {
		t.Errorf("RgbaModel.Convert = %v", got)
	}
	if got := RgbModel.Convert(NewRgba(0, 1, 0, 0.5)); got != NewRgb(0, 1, 0) {
		t.Errorf("RgbModel.Convert = %v", got)
	}
	if got := LumaModel.Convert(stdcolor.Gray{Y: 255}).(Luma); !near(got.L, 1) {
		t.Errorf("LumaModel.Convert = %v", got)
	}
	if got := LumaaModel.Convert(NewLumaa(0.5, 0.25)); got != NewLumaa(0.5, 0.25) {
		t.Errorf("LumaaModel.Convert = %v", got)
	}
	if got := ModelOf[Rgb]().Convert(stdcolor.White); got != NewRgb(1, 1, 1) {
		t.Errorf("ModelOf[Rgb].Convert = %v", got)
	}
}

func TestLinear(t *testing.T) {
	for _, x := range []float32{0, 0.01, 0.2, 0.5, 0.8, 1} {
		if got := FromLinear(ToLinear(x)); !near(got, x) {
			t.Errorf("FromLinear(ToLinear(%v)) = %v", x, got)
		}
	}
	if got := NewRgba(0.5, 0.5, 0.5, 0.3).Linear(); !near(got.R, 0.21404) || got.A != 0.3 {
		t.Errorf("Linear() = %v", got)
	}
}

func TestGradient(t *testing.T) {
	g := NewGradient(NewRgb(0, 0, 0), NewRgb(1, 1, 1), NewRgb(0, 0, 0))

	var got []Rgb
	for c := range g.Take(5) {
		got = append(got, c)
	}
	want := []Rgb{
		NewRgb(0, 0, 0),
		NewRgb(0.5, 0.5, 0.5),
		NewRgb(1, 1, 1),
		NewRgb(0.5, 0.5, 0.5),
		NewRgb(0, 0, 0),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Take(5) = %v, want %v", got, want)
	}

	if got := NewGradient(NewLuma(0.3)).At(0.7); got != NewLuma(0.3) {
		t.Errorf("single stop At = %v", got)
	}
	if got := g.At(-1); got != NewRgb(0, 0, 0) {
		t.Errorf("At(-1) = %v", got)
	}

	for _, tt := range []struct {
		name string
		f    func()
	}{
		{"NewGradient without stops", func() { NewGradient[Rgb]() }},
		{"At on zero value", func() { Gradient[Rgb]{}.At(0.5) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("did not panic")
				}
			}()
			tt.f()
		})
	}
}
