package main

import (
	"bytes"
	"image"

	"github.com/kirides/duplication/swizzle"
	"github.com/nfnt/resize"
)

// toRGBA converts a packed BGRA32 frame into dst, reallocating dst when the
// frame size changed.
func toRGBA(dst *image.RGBA, bgra []byte, width, height int) *image.RGBA {
	rect := image.Rect(0, 0, width, height)
	if dst == nil || dst.Rect != rect {
		dst = image.NewRGBA(rect)
	}
	copy(dst.Pix, bgra[:width*height*4])
	swizzle.BGRA(dst.Pix)
	return dst
}

// scale resizes img when a target size is configured. A zero width or height
// keeps the aspect ratio.
func scale(img image.Image, width, height uint) image.Image {
	if width == 0 && height == 0 {
		return img
	}
	return resize.Resize(width, height, img, resize.Bilinear)
}

// Workaround for jpeg.Encode(), which requires a Flush()
// method to not call `bufio.NewWriter`
type bufferFlusher struct {
	bytes.Buffer
}

func (*bufferFlusher) Flush() error { return nil }

// encodeFrame replaces the contents of buf with img as JPEG.
func encodeFrame(buf *bufferFlusher, img image.Image, cfg *Config) error {
	buf.Reset()
	return encodeJpeg(buf, scale(img, cfg.ScaleWidth, cfg.ScaleHeight), jpegQuality(cfg.Quality))
}
