//go:build !picto_nowebp

package decode

import (
	"golang.org/x/image/webp"

	"picto/format"
)

func init() {
	register(format.WebP, Decoder{Decode: webp.Decode, DecodeConfig: webp.DecodeConfig})
}
