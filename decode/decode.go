// Package decode loads encoded images into buffers.
//
// The format is sniffed from the leading bytes with format.Guess and the
// stream is handed to the capability registered for it. Which capabilities
// exist is decided at build time; see the picto_nowebp build tag.
package decode

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"picto/buffer"
	"picto/color"
	"picto/format"
	"picto/pixel"
)

// ErrUnsupportedFormat is returned when the format is not recognized or no
// decoder for it was built in.
var ErrUnsupportedFormat = errors.New("decode: unsupported image format")

// DecodeError reports a failure inside a format decoder.
type DecodeError struct {
	Format format.Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: could not decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder is a decoding capability for one format.
type Decoder struct {
	Decode       func(io.Reader) (image.Image, error)
	DecodeConfig func(io.Reader) (image.Config, error)
}

var decoders = map[format.Format]Decoder{}

// register is called from init functions only.
func register(f format.Format, d Decoder) {
	decoders[f] = d
}

// Supported reports whether a decoder for f is built in.
func Supported(f format.Format) bool {
	_, ok := decoders[f]
	return ok
}

// From decodes r, guessing its format.
func From[C pixel.Channel, P color.Pixel[P]](r io.Reader) (*buffer.Buffer[C, P], error) {
	img, _, err := Image(r)
	if err != nil {
		return nil, err
	}
	return buffer.FromImage[C, P](img), nil
}

// FromMemory decodes data, guessing its format.
func FromMemory[C pixel.Channel, P color.Pixel[P]](data []byte) (*buffer.Buffer[C, P], error) {
	return From[C, P](bytes.NewReader(data))
}

// WithFormat decodes r as f without sniffing.
func WithFormat[C pixel.Channel, P color.Pixel[P]](r io.Reader, f format.Format) (*buffer.Buffer[C, P], error) {
	img, err := decodeAs(r, f)
	if err != nil {
		return nil, err
	}
	return buffer.FromImage[C, P](img), nil
}

// Image decodes r into an image.Image, guessing its format.
func Image(r io.Reader) (image.Image, format.Format, error) {
	br, f, err := sniff(r)
	if err != nil {
		return nil, f, err
	}
	img, err := decodeAs(br, f)
	return img, f, err
}

// Config returns the dimensions and color model of r without decoding the
// pixels.
func Config(r io.Reader) (image.Config, format.Format, error) {
	br, f, err := sniff(r)
	if err != nil {
		return image.Config{}, f, err
	}

	d, ok := decoders[f]
	if !ok {
		return image.Config{}, f, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	conf, err := d.DecodeConfig(br)
	if err != nil {
		return image.Config{}, f, &DecodeError{Format: f, Err: err}
	}
	return conf, f, nil
}

func sniff(r io.Reader) (*bufio.Reader, format.Format, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(format.MaxMagic)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, format.Unknown, fmt.Errorf("could not read image header: %w", err)
	}

	f, ok := format.Guess(head)
	if !ok {
		return nil, format.Unknown, ErrUnsupportedFormat
	}
	return br, f, nil
}

func decodeAs(r io.Reader, f format.Format) (image.Image, error) {
	d, ok := decoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	img, err := d.Decode(r)
	if err != nil {
		return nil, &DecodeError{Format: f, Err: err}
	}
	return img, nil
}
