//go:build !libjpeg

package main

import (
	"image"
	"image/jpeg"
	"io"
)

func jpegQuality(quality int) *jpeg.Options {
	return &jpeg.Options{Quality: quality}
}

func encodeJpeg(w io.Writer, img image.Image, opts *jpeg.Options) error {
	return jpeg.Encode(w, img, opts)
}
