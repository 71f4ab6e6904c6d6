package decode

import (
	"bytes"
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"picto/color"
	"picto/format"
)

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: uint8(x * 100), G: uint8(y * 200), B: 50, A: 255})
		}
	}
	return img
}

func encode(t *testing.T, enc func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFromMemory(t *testing.T) {
	tests := []struct {
		name string
		enc  func(io.Writer, image.Image) error
		want format.Format
	}{
		{"png", png.Encode, format.PNG},
		{"bmp", bmp.Encode, format.BMP},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }, format.TIFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(t, tt.enc)

			b, err := FromMemory[uint8, color.Rgba](data)
			if err != nil {
				t.Fatalf("FromMemory() error = %v", err)
			}
			if w, h := b.Dimensions(); w != 3 || h != 2 {
				t.Fatalf("Dimensions() = %d, %d", w, h)
			}

			src := sample()
			for pt, p := range b.Pixels() {
				c := src.NRGBAAt(int(pt.X), int(pt.Y))
				want := []uint8{c.R, c.G, c.B, c.A}
				i := 4 * (int(pt.Y)*3 + int(pt.X))
				if got := b.Raw()[i : i+4]; !bytes.Equal(got, want) {
					t.Errorf("pixel %v = %v (%v), want %v", pt, got, p, want)
				}
			}

			_, f, err := Image(bytes.NewReader(data))
			if err != nil || f != tt.want {
				t.Errorf("Image() format = %v, %v, want %v", f, err, tt.want)
			}
		})
	}
}

func TestFromConverts(t *testing.T) {
	data := encode(t, png.Encode)
	b, err := From[uint16, color.Luma](bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Raw()); got != 6 {
		t.Errorf("len(Raw()) = %d, want 6", got)
	}
}

func TestWithFormat(t *testing.T) {
	data := encode(t, png.Encode)

	if _, err := WithFormat[uint8, color.Rgb](bytes.NewReader(data), format.PNG); err != nil {
		t.Errorf("WithFormat(PNG) error = %v", err)
	}

	_, err := WithFormat[uint8, color.Rgb](bytes.NewReader(data), format.BMP)
	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Format != format.BMP {
		t.Errorf("WithFormat(BMP) error = %v, want DecodeError", err)
	}

	if _, err := WithFormat[uint8, color.Rgb](bytes.NewReader(data), format.HDR); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WithFormat(HDR) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		unsup     bool
		decodeErr bool
	}{
		{"empty", nil, true, false},
		{"garbage", []byte("not an image at all"), true, false},
		{"hdr", []byte("#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n"), true, false},
		{"truncated png", []byte("\x89PNG\r\n\x1a\n\x00\x00"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMemory[uint8, color.Rgb](tt.data)
			if got := errors.Is(err, ErrUnsupportedFormat); got != tt.unsup {
				t.Errorf("errors.Is(%v, ErrUnsupportedFormat) = %v", err, got)
			}
			var derr *DecodeError
			if got := errors.As(err, &derr); got != tt.decodeErr {
				t.Errorf("errors.As(%v, DecodeError) = %v", err, got)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	conf, f, err := Config(bytes.NewReader(encode(t, png.Encode)))
	if err != nil {
		t.Fatal(err)
	}
	if f != format.PNG || conf.Width != 3 || conf.Height != 2 {
		t.Errorf("Config() = %+v, %v", conf, f)
	}
}

func TestSupported(t *testing.T) {
	for _, f := range []format.Format{format.PNG, format.JPEG, format.GIF, format.BMP, format.TIFF} {
		if !Supported(f) {
			t.Errorf("Supported(%v) = false", f)
		}
	}
	if Supported(format.ICO) {
		t.Error("Supported(ICO) = true")
	}
}
