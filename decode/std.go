package decode

import (
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"picto/format"
)

func init() {
	register(format.PNG, Decoder{Decode: png.Decode, DecodeConfig: png.DecodeConfig})
	register(format.JPEG, Decoder{Decode: jpeg.Decode, DecodeConfig: jpeg.DecodeConfig})
	register(format.GIF, Decoder{Decode: gif.Decode, DecodeConfig: gif.DecodeConfig})
	register(format.BMP, Decoder{Decode: bmp.Decode, DecodeConfig: bmp.DecodeConfig})
	register(format.TIFF, Decoder{Decode: tiff.Decode, DecodeConfig: tiff.DecodeConfig})
}
