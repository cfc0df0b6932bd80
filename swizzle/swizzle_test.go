package swizzle

import (
	"bytes"
	"testing"
)

func TestBGRA(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, nil},
		{"one pixel", []byte{1, 2, 3, 4}, []byte{3, 2, 1, 4}},
		{"two pixels", []byte{10, 20, 30, 40, 50, 60, 70, 80}, []byte{30, 20, 10, 40, 70, 60, 50, 80}},
		{"partial tail", []byte{1, 2, 3, 4, 5, 6}, []byte{3, 2, 1, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := append([]byte(nil), tt.in...)
			BGRA(p)
			if !bytes.Equal(p, tt.want) {
				t.Errorf("BGRA(%v) = %v, want %v", tt.in, p, tt.want)
			}
		})
	}
}

func TestBGRARoundTrip(t *testing.T) {
	p := make([]byte, 4*97)
	for i := range p {
		p[i] = byte(i)
	}
	orig := append([]byte(nil), p...)
	BGRA(p)
	BGRA(p)
	if !bytes.Equal(p, orig) {
		t.Error("swizzling twice does not restore the input")
	}
}

