package view_test

import (
	"slices"
	"testing"

	"picto/area"
	"picto/color"
	"picto/view"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func absolute(a area.Area) []area.Point {
	var pts []area.Point
	for x, y := range a.Absolute() {
		pts = append(pts, area.Point{X: x, Y: y})
	}
	return pts
}

func TestWritableNarrowing(t *testing.T) {
	owner := area.From(0, 0, 50, 50)
	data := make([]uint8, owner.Len(3))

	w := view.NewWrite[uint8, color.Rgb](data, owner, owner).
		Writable(area.New().X(10).Y(10).Width(4).Height(4))

	want := []area.Point{
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}, {X: 13, Y: 10},
		{X: 10, Y: 11}, {X: 11, Y: 11}, {X: 12, Y: 11}, {X: 13, Y: 11},
		{X: 10, Y: 12}, {X: 11, Y: 12}, {X: 12, Y: 12}, {X: 13, Y: 12},
		{X: 10, Y: 13}, {X: 11, Y: 13}, {X: 12, Y: 13}, {X: 13, Y: 13},
	}
	if got := absolute(w.Area()); !slices.Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}

	w = w.Writable(area.New().X(1).Y(1).Width(2).Height(2))
	want = []area.Point{{X: 11, Y: 11}, {X: 12, Y: 11}, {X: 11, Y: 12}, {X: 12, Y: 12}}
	if got := absolute(w.Area()); !slices.Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}

	w = w.Writable(area.New().Width(2).Height(1))
	want = []area.Point{{X: 11, Y: 11}, {X: 12, Y: 11}}
	if got := absolute(w.Area()); !slices.Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}

	if w.Owner() != owner {
		t.Errorf("Owner() = %v, want %v", w.Owner(), owner)
	}

	w.Set(1, 0, color.NewRgb(1, 1, 1))
	i := 3 * (11*50 + 12)
	if got := data[i : i+3]; !slices.Equal(got, []uint8{255, 255, 255}) {
		t.Errorf("storage at (12, 11) = %v", got)
	}

	mustPanic(t, "Set outside window", func() { w.Set(2, 0, color.Rgb{}) })
	mustPanic(t, "narrowing past window", func() { w.Writable(area.New().X(1).Width(2)) })
}

func TestReadNarrowing(t *testing.T) {
	owner := area.From(0, 0, 4, 4)
	data := make([]uint8, owner.Len(1))
	for i := range data {
		data[i] = uint8(i)
	}

	r := view.NewRead[uint8, color.Luma](data, owner, area.From(1, 1, 3, 3)).
		Readable(area.New().X(1).Y(1))

	if w, h := r.Dimensions(); w != 2 || h != 2 {
		t.Fatalf("Dimensions() = %d, %d", w, h)
	}

	var got []uint8
	for pt, p := range r.Pixels() {
		got = append(got, uint8(p.L*255+0.5))
		if r.Get(pt.X, pt.Y) != p {
			t.Errorf("Pixels() and Get disagree at %v", pt)
		}
	}
	if want := []uint8{10, 11, 14, 15}; !slices.Equal(got, want) {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}

	mustPanic(t, "Get outside window", func() { r.Get(0, 2) })
}

func TestViewFill(t *testing.T) {
	owner := area.From(0, 0, 3, 3)
	data := make([]uint8, owner.Len(2))

	v := view.New[uint8, color.Lumaa](data, owner, area.From(1, 0, 2, 3))
	v.Fill(color.NewLumaa(1, 1))
	v.View(area.New().Y(1).Height(1)).Set(0, 0, color.NewLumaa(0, 1))

	want := []uint8{
		0, 0, 255, 255, 255, 255,
		0, 0, 0, 255, 255, 255,
		0, 0, 255, 255, 255, 255,
	}
	if !slices.Equal(data, want) {
		t.Errorf("storage = %v, want %v", data, want)
	}

	if got := v.Readable(area.New().Y(1)).Get(0, 0); got != color.NewLumaa(0, 1) {
		t.Errorf("Get() = %v", got)
	}
	if got := v.Get(1, 2); got != color.NewLumaa(1, 1) {
		t.Errorf("Get(1, 2) = %v", got)
	}
}

func TestConstruction(t *testing.T) {
	owner := area.From(0, 0, 2, 2)

	mustPanic(t, "window past owner", func() {
		view.NewRead[uint8, color.Rgb](make([]uint8, 12), owner, area.From(1, 1, 2, 1))
	})
	mustPanic(t, "short storage", func() {
		view.New[uint8, color.Rgb](make([]uint8, 11), owner, owner)
	})
}

func TestBorrows(t *testing.T) {
	var b view.Borrows

	release := b.Acquire(area.From(0, 0, 2, 2))
	mustPanic(t, "overlapping Acquire", func() { b.Acquire(area.From(1, 1, 2, 2)) })

	other := b.Acquire(area.From(2, 0, 2, 2))
	if n := b.Live(); n != 2 {
		t.Errorf("Live() = %d, want 2", n)
	}

	release()
	release()
	if n := b.Live(); n != 1 {
		t.Errorf("Live() = %d, want 1", n)
	}

	b.Acquire(area.From(1, 1, 1, 1))()
	other()
	if n := b.Live(); n != 0 {
		t.Errorf("Live() = %d, want 0", n)
	}
}
