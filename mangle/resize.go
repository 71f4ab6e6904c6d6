package mangle

import (
	"log/slog"
	"math"

	"picto/area"
	"picto/buffer"
	"picto/color"
	"picto/sampler"
	"picto/scaler"
)

type picture = buffer.Buffer[uint16, color.Rgba]

// resize fits img into width x height. With crop the source is trimmed to
// the target aspect ratio; otherwise the result keeps the source aspect
// ratio and, when fill is set, is centered on a canvas of the full target
// size painted with fill.
func resize(logger *slog.Logger, img *picture, width, height int, crop bool, fill *color.Rgba, s sampler.Sampler) *picture {
	srcW, srcH := img.Dimensions()
	srcWidth := float64(srcW)
	srcHeight := float64(srcH)

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}

	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img
	}

	srcBounds := img.Area()
	destSize := area.From(0, 0, uint32(destWidth), uint32(destHeight))
	destBounds := destSize

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	if crop {
		if srcAR < destAR {
			dh := min(uint32(math.Round(srcHeight-srcWidth/destAR)), srcH-1)
			srcBounds.Y += dh / 2
			srcBounds.Height -= dh
		} else if srcAR > destAR {
			dw := min(uint32(math.Round(srcWidth-srcHeight*destAR)), srcW-1)
			srcBounds.X += dw / 2
			srcBounds.Width -= dw
		}
	} else {
		if srcAR < destAR {
			dw := span(destHeight * srcAR)
			if fill == nil {
				destSize.Width = dw
				destBounds.Width = dw
			} else if destSize.Width > dw {
				destBounds.X = (destSize.Width - dw) / 2
				destBounds.Width = dw
			}
		} else if srcAR > destAR {
			dh := span(destWidth / srcAR)
			if fill == nil {
				destSize.Height = dh
				destBounds.Height = dh
			} else if destSize.Height > dh {
				destBounds.Y = (destSize.Height - dh) / 2
				destBounds.Height = dh
			}
		}
	}

	logger.Info("resizing", "width", destBounds.Width, "height", destBounds.Height)
	scaled := scaler.Resize(img.Readable(srcBounds.Builder()), destBounds.Width, destBounds.Height, s)
	if destBounds == destSize {
		return scaled
	}

	dest := buffer.FromPixel[uint16](destSize.Width, destSize.Height, *fill)
	w := dest.Writable(destBounds.Builder())
	defer w.Release()
	for pt, p := range scaled.Pixels() {
		w.Set(pt.X, pt.Y, p)
	}

	return dest
}

// span rounds a length to whole pixels, never below one.
func span(f float64) uint32 {
	return uint32(max(math.Round(f), 1))
}
