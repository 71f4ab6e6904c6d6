package format

import (
	"errors"
	"testing"
)

func TestGuess(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Format
		ok   bool
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), PNG, true},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, JPEG, true},
		{"gif89a", []byte("GIF89a\x01\x00"), GIF, true},
		{"gif87a", []byte("GIF87a"), GIF, true},
		{"bare webp", []byte("WEBPVP8 "), WebP, true},
		{"riff webp", []byte("RIFF\x24\x01\x00\x00WEBPVP8L"), WebP, true},
		{"riff pal", []byte("RIFF\x24\x01\x00\x00PAL data"), Unknown, false},
		{"tiff big endian", []byte("MM\x00*\x00\x00\x00\x08"), TIFF, true},
		{"tiff little endian", []byte("II*\x00\x08\x00\x00\x00"), TIFF, true},
		{"bmp", []byte("BM6\x00"), BMP, true},
		{"ico", []byte{0, 0, 1, 0, 1, 0}, ICO, true},
		{"hdr", []byte("#?RADIANCE\n"), HDR, true},
		{"zeros", make([]byte, 16), Unknown, false},
		{"short", []byte{0x89, 'P'}, Unknown, false},
		{"empty", nil, Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Guess(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Guess() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMaxMagic(t *testing.T) {
	if MaxMagic != 12 {
		t.Errorf("MaxMagic = %d, want 12", MaxMagic)
	}

	buf := []byte("RIFF\x24\x01\x00\x00WEBP")
	if _, ok := Guess(buf[:MaxMagic-1]); ok {
		t.Error("Guess() matched a truncated RIFF header")
	}
	if got, _ := Guess(buf[:MaxMagic]); got != WebP {
		t.Errorf("Guess() = %v, want %v", got, WebP)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"png", PNG, nil},
		{"JPEG", JPEG, nil},
		{"jpg", JPEG, nil},
		{"tif", TIFF, nil},
		{"webp", WebP, nil},
		{"unknown", Unknown, ErrUnknownFormat},
		{"xcf", Unknown, ErrUnknownFormat},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("Parse(%q) = %v, %v, want %v, %v", tt.in, got, err, tt.want, tt.err)
		}
	}

	if s := Format(42).String(); s != "Format(42)" {
		t.Errorf("String() = %q", s)
	}
}
