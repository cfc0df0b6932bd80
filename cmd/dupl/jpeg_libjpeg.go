//go:build libjpeg

package main

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

// libjpeg-turbo is considerably faster than image/jpeg for full HD frames,
// but needs cgo.
func jpegQuality(quality int) *jpeg.EncoderOptions {
	return &jpeg.EncoderOptions{Quality: quality}
}

func encodeJpeg(w io.Writer, img image.Image, opts *jpeg.EncoderOptions) error {
	return jpeg.Encode(w, img, opts)
}
