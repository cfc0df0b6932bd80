package main

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestToRGBA(t *testing.T) {
	bgra := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img := toRGBA(nil, bgra, 2, 2)
	want := []byte{
		3, 2, 1, 4, 7, 6, 5, 8,
		11, 10, 9, 12, 15, 14, 13, 16,
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("got %v, want %v", img.Pix, want)
	}
	if bgra[0] != 1 {
		t.Error("source frame was modified")
	}

	if again := toRGBA(img, bgra, 2, 2); again != img {
		t.Error("destination of the same size was not reused")
	}
	if resized := toRGBA(img, bgra, 1, 2); resized == img || resized.Rect.Dx() != 1 {
		t.Errorf("destination was not reallocated, rect %v", resized.Rect)
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))

	if got := scale(src, 0, 0); got != image.Image(src) {
		t.Error("scale without target size returned a new image")
	}

	tests := []struct {
		width, height uint
		want          image.Point
	}{
		{32, 0, image.Pt(32, 16)},
		{0, 8, image.Pt(16, 8)},
		{10, 10, image.Pt(10, 10)},
	}
	for _, tt := range tests {
		got := scale(src, tt.width, tt.height).Bounds().Size()
		if got != tt.want {
			t.Errorf("scale(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestEncodeFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScaleWidth = 8

	buf := &bufferFlusher{}
	buf.WriteString("stale")
	if err := encodeFrame(buf, image.NewRGBA(image.Rect(0, 0, 16, 16)), cfg); err != nil {
		t.Fatal(err)
	}

	img, err := jpeg.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(8, 8) {
		t.Errorf("decoded size %v, want 8x8", got)
	}
}
