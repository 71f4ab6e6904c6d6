package mangle

import (
	"log/slog"

	"picto/palette"
)

func repalette(logger *slog.Logger, img *picture, pal palette.Palette, dither bool) *picture {
	logger.Info("applying palette", "colors", len(pal), "dither", dither)

	if dither {
		return palette.Dither(img.AsRead(), pal)
	}

	v := img.AsView()
	defer v.Release()
	palette.Quantize(v, pal)
	return img
}
