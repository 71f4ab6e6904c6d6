// Package palette maps pixels onto fixed color sets, either built in or
// loaded from RIFF PAL files.
package palette

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	stdpalette "image/color/palette"
	"math"
	"os"
	"slices"
	"strings"

	"picto/color"
)

// ErrUnknownPalette is returned by LoadPalette for names that are neither
// built in nor readable PAL files.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Palette is an ordered set of opaque colors.
type Palette []color.Rgb

func rgb(hex uint32) color.Rgb {
	return color.NewRgb(
		float32(hex>>16&0xff)/0xff,
		float32(hex>>8&0xff)/0xff,
		float32(hex&0xff)/0xff,
	)
}

func gray(n int) Palette {
	p := make(Palette, n)
	for i := range p {
		v := float32(i) / float32(n-1)
		p[i] = color.NewRgb(v, v, v)
	}
	return p
}

func fromStd(std stdcolor.Palette) Palette {
	p := make(Palette, len(std))
	for i, c := range std {
		p[i] = color.Convert[color.Rgb](color.FromColor(c))
	}
	return p
}

var builtin = map[string]func() Palette{
	"bw":     func() Palette { return gray(2) },
	"gray4":  func() Palette { return gray(4) },
	"gray16": func() Palette { return gray(16) },
	"vga16": func() Palette {
		return Palette{
			rgb(0x000000), rgb(0x0000aa), rgb(0x00aa00), rgb(0x00aaaa),
			rgb(0xaa0000), rgb(0xaa00aa), rgb(0xaa5500), rgb(0xaaaaaa),
			rgb(0x555555), rgb(0x5555ff), rgb(0x55ff55), rgb(0x55ffff),
			rgb(0xff5555), rgb(0xff55ff), rgb(0xffff55), rgb(0xffffff),
		}
	},
	// six-color e-paper panels
	"spectra6": func() Palette {
		return Palette{
			rgb(0x000000), rgb(0xffffff), rgb(0xff0000),
			rgb(0xffff00), rgb(0x0000ff), rgb(0x00ff00),
		}
	},
	"websafe": func() Palette { return fromStd(stdpalette.WebSafe) },
	"plan9":   func() Palette { return fromStd(stdpalette.Plan9) },
}

// Names lists the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// LoadPalette returns the built-in palette called name or, failing that,
// the concatenation of every palette in the PAL file at path name.
func LoadPalette(name string) (Palette, error) {
	if f, ok := builtin[strings.ToLower(name)]; ok {
		return f(), nil
	}

	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
		}
		return nil, fmt.Errorf("could not open palette file %q: %w", name, err)
	}
	defer file.Close()

	pals, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("could not load palette file %q: %w", name, err)
	}

	var res Palette
	for _, p := range pals {
		res = append(res, p...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette file %q has no colors", name)
	}
	return res, nil
}

// Std returns p as a standard library palette.
func (p Palette) Std() stdcolor.Palette {
	std := make(stdcolor.Palette, len(p))
	for i, c := range p {
		std[i] = c
	}
	return std
}

// Index returns the index of the palette color closest to c in linear
// light. It panics on an empty palette.
func (p Palette) Index(c color.Rgba) int {
	return newMatcher(p).index(c)
}

// Convert returns the palette color closest to c, keeping c's alpha.
func (p Palette) Convert(c color.Rgba) color.Rgba {
	return newMatcher(p).convert(c)
}

// matcher caches the palette in linear light.
type matcher struct {
	pal Palette
	lin []color.Rgba
}

func newMatcher(p Palette) matcher {
	if len(p) == 0 {
		panic("empty palette")
	}

	lin := make([]color.Rgba, len(p))
	for i, c := range p {
		lin[i] = c.ToRgba().Linear()
	}
	return matcher{pal: p, lin: lin}
}

func (m matcher) index(c color.Rgba) int {
	lc := c.Linear()
	best, bestSum := 0, math.MaxFloat64
	for i, v := range m.lin {
		dr := float64(lc.R - v.R)
		dg := float64(lc.G - v.G)
		db := float64(lc.B - v.B)
		sum := dr*dr + dg*dg + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			best, bestSum = i, sum
		}
	}
	return best
}

func (m matcher) convert(c color.Rgba) color.Rgba {
	out := m.pal[m.index(c)].ToRgba()
	out.A = c.A
	return out
}
