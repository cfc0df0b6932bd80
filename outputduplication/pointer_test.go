package outputduplication

import (
	"bytes"
	"testing"
)

func TestPointerShapeBufferNeverShrinks(t *testing.T) {
	var p PointerShapeBuffer

	sizes := []int{16, 4096, 64, 0, 8192, 100}
	maxSize := 0
	for _, size := range sizes {
		p.Grow(size)
		if size > maxSize {
			maxSize = size
		}
		if p.Cap() != maxSize {
			t.Errorf("Grow(%d): Cap() = %d, want %d", size, p.Cap(), maxSize)
		}
	}
}

func TestPointerShapeBufferKeepsFilledPrefix(t *testing.T) {
	var p PointerShapeBuffer
	p.Grow(4)
	p.n = copy(p.buf, []byte{1, 2, 3, 4})

	p.Grow(64)
	if !bytes.Equal(p.Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("Bytes() = %v after Grow", p.Bytes())
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d", p.Len())
	}
}
