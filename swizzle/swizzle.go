// Package swizzle converts between BGRA and RGBA pixel data in place.
package swizzle

// BGRA swaps the first and third byte of every 4 byte pixel, turning BGRA
// into RGBA and back. Trailing bytes of an incomplete pixel are left alone.
func BGRA(p []byte) {
	n := len(p) - len(p)%4
	for i := 0; i < n; i += 4 {
		p[i], p[i+2] = p[i+2], p[i]
	}
}

