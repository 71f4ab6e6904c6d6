// Package imagefile reads and writes image files.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"picto/buffer"
	"picto/color"
	"picto/decode"
	"picto/format"
	"picto/pixel"
)

// ErrNoEncoder is returned when saving to a format that can only be read.
var ErrNoEncoder = errors.New("imagefile: no encoder for format")

// Open decodes the image file at path into a buffer.
func Open[C pixel.Channel, P color.Pixel[P]](path string) (*buffer.Buffer[C, P], format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, format.Unknown, fmt.Errorf("could not open image: %w", err)
	}
	defer file.Close()

	img, f, err := decode.Image(file)
	if err != nil {
		return nil, f, err
	}
	return buffer.FromImage[C, P](img), f, nil
}

// Config returns the header of the image file at path.
func Config(path string) (image.Config, format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, format.Unknown, fmt.Errorf("could not open image: %w", err)
	}
	defer file.Close()

	return decode.Config(file)
}

// Encodable reports whether Encode supports f.
func Encodable(f format.Format) bool {
	switch f {
	case format.PNG, format.JPEG, format.GIF, format.BMP, format.TIFF:
		return true
	}
	return false
}

// OutputFormat resolves an output selection against the source format.
// "same" keeps src; a name prefixed with "unsup:" is used only when src
// cannot be encoded; any other name is used as is.
func OutputFormat(sel string, src format.Format) (format.Format, error) {
	name, unsupOnly := strings.CutPrefix(sel, "unsup:")
	if name == "same" || (unsupOnly && Encodable(src)) {
		return src, nil
	}
	return format.Parse(name)
}

// Encode writes img to w as f.
func Encode(w io.Writer, img image.Image, f format.Format) error {
	switch f {
	case format.GIF:
		return gif.Encode(w, img, nil)
	case format.JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case format.PNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case format.BMP:
		return bmp.Encode(w, img)
	case format.TIFF:
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %s", ErrNoEncoder, f)
}

// DestName returns name with its extension replaced by the one for f.
func DestName(name string, f format.Format) string {
	return fmt.Sprintf("%s.%s", strings.TrimSuffix(name, filepath.Ext(name)), f)
}

// Save encodes img as f into destDir, named after srcName with the
// extension of f, and returns the path written. The file is written to a
// temporary name and renamed into place once complete, so an existing file
// is replaced atomically.
func Save(img image.Image, f format.Format, destDir, srcName string) (path string, err error) {
	if !Encodable(f) {
		return "", fmt.Errorf("%w: %s", ErrNoEncoder, f)
	}

	destName := DestName(srcName, f)
	path = filepath.Join(destDir, destName)

	outFile, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return "", fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
			path = ""
		}
	}()

	if err = Encode(outFile, img, f); err != nil {
		return path, fmt.Errorf("could not encode %s destination %q: %w", strings.ToUpper(f.String()), destName, err)
	}

	canRename = true
	return path, nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
