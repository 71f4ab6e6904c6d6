// Package format identifies image encodings from their leading bytes.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFormat is returned by Parse for names it does not know.
var ErrUnknownFormat = errors.New("format: unknown format")

// Format is an image encoding.
type Format int

const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	WebP
	TIFF
	BMP
	ICO
	HDR
)

var names = [...]string{
	Unknown: "unknown",
	PNG:     "png",
	JPEG:    "jpeg",
	GIF:     "gif",
	WebP:    "webp",
	TIFF:    "tiff",
	BMP:     "bmp",
	ICO:     "ico",
	HDR:     "hdr",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f]
}

// Parse returns the format called name, case-insensitively. "jpg" and "tif"
// are accepted as aliases.
func Parse(name string) (Format, error) {
	switch n := strings.ToLower(name); n {
	case "jpg":
		return JPEG, nil
	case "tif":
		return TIFF, nil
	default:
		for f, s := range names {
			if f != int(Unknown) && s == n {
				return Format(f), nil
			}
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// magic is checked in order; the first matching prefix wins. Bytes at the skip
// offsets match whatever is there.
var magic = []struct {
	prefix string
	skip   []int
	format Format
}{
	{"\x89PNG\r\n\x1a\n", nil, PNG},
	{"\xff\xd8\xff", nil, JPEG},
	{"GIF89a", nil, GIF},
	{"GIF87a", nil, GIF},
	{"WEBP", nil, WebP},
	{"RIFF\x00\x00\x00\x00WEBP", []int{4, 5, 6, 7}, WebP},
	{"MM\x00*", []int{2}, TIFF},
	{"II*\x00", []int{3}, TIFF},
	{"BM", nil, BMP},
	{"\x00\x00\x01\x00", nil, ICO},
	{"#?RADIANCE", nil, HDR},
}

// MaxMagic is the number of leading bytes Guess may need to look at.
var MaxMagic = func() int {
	n := 0
	for _, m := range magic {
		n = max(n, len(m.prefix))
	}
	return n
}()

// Guess identifies the format whose signature prefixes buf.
func Guess(buf []byte) (Format, bool) {
	for _, m := range magic {
		if match(buf, m.prefix, m.skip) {
			return m.format, true
		}
	}
	return Unknown, false
}

func match(buf []byte, prefix string, skip []int) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range len(prefix) {
		if buf[i] != prefix[i] && !slices.Contains(skip, i) {
			return false
		}
	}
	return true
}
