package area

import (
	"math"
	"slices"
	"testing"
)

func collect(seq func(func(uint32, uint32) bool)) []Point {
	var pts []Point
	for x, y := range seq {
		pts = append(pts, Point{x, y})
	}
	return pts
}

func TestIteration(t *testing.T) {
	a := From(10, 20, 2, 2)

	abs := collect(a.Absolute())
	wantAbs := []Point{{10, 20}, {11, 20}, {10, 21}, {11, 21}}
	if !slices.Equal(abs, wantAbs) {
		t.Errorf("Absolute() = %v, want %v", abs, wantAbs)
	}

	rel := collect(a.Relative())
	wantRel := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !slices.Equal(rel, wantRel) {
		t.Errorf("Relative() = %v, want %v", rel, wantRel)
	}

	// sequences are restartable
	if again := collect(a.Relative()); !slices.Equal(again, wantRel) {
		t.Errorf("second Relative() = %v, want %v", again, wantRel)
	}
}

func TestIterationEarlyStop(t *testing.T) {
	n := 0
	for range From(0, 0, 10, 10).Absolute() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestComplete(t *testing.T) {
	owner := From(0, 0, 50, 40)

	tests := []struct {
		name    string
		builder Builder
		want    Area
	}{
		{"zero builder", New(), From(0, 0, 50, 40)},
		{"offset only", New().X(10).Y(5), From(10, 5, 40, 35)},
		{"explicit size", New().X(10).Y(10).Width(4).Height(4), From(10, 10, 4, 4)},
		{"width only", New().Width(7), From(0, 0, 7, 40)},
		{"offset past edge", New().X(60), From(60, 0, 0, 40)},
		{"from area", From(3, 4, 0, 9).Builder(), From(3, 4, 0, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.builder.Complete(owner); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	owner := From(0, 0, 50, 50)

	tests := []struct {
		name string
		area Area
		want bool
	}{
		{"full", From(0, 0, 50, 50), true},
		{"inner", From(10, 10, 4, 4), true},
		{"touching edge", From(46, 46, 4, 4), true},
		{"past right", From(47, 0, 4, 4), false},
		{"past bottom", From(0, 47, 4, 4), false},
		{"overflowing sum", From(math.MaxUint32, 0, 2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.area.Within(owner); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := From(0, 0, 4, 4)

	tests := []struct {
		b    Area
		want bool
	}{
		{From(3, 3, 2, 2), true},
		{From(4, 0, 2, 2), false},
		{From(0, 4, 2, 2), false},
		{From(1, 1, 1, 1), true},
		{From(1, 1, 0, 1), false},
	}

	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", a, tt.b, got, tt.want)
		}
		if got := tt.b.Overlaps(a); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, a, got, tt.want)
		}
	}
}

func TestLen(t *testing.T) {
	if got := From(0, 0, 2, 3).Len(4); got != 24 {
		t.Errorf("Len() = %d, want 24", got)
	}
	if got := From(0, 0, math.MaxUint32, math.MaxUint32).Len(0); got != 0 {
		t.Errorf("Len(0) = %d, want 0", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Len did not panic on overflow")
		}
	}()
	From(0, 0, math.MaxUint32, math.MaxUint32).Len(math.MaxInt32)
}

func TestParseOrientation(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		got, err := ParseOrientation(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOrientation(%q) = %v, %v", o.String(), got, err)
		}
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Error("ParseOrientation(diagonal) succeeded")
	}
}
