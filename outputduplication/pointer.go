package outputduplication

// PointerShapeBuffer is scratch space for pointer shapes. It only ever grows.
type PointerShapeBuffer struct {
	buf []byte
	n   int
}

// Grow makes sure at least size bytes are available.
func (p *PointerShapeBuffer) Grow(size int) {
	if size <= len(p.buf) {
		return
	}
	buf := make([]byte, size)
	copy(buf, p.buf[:p.n])
	p.buf = buf
}

// Bytes returns the shape written by the last fetch.
func (p *PointerShapeBuffer) Bytes() []byte { return p.buf[:p.n] }

// Len is the size of the last fetched shape.
func (p *PointerShapeBuffer) Len() int { return p.n }

// Cap is the number of bytes allocated so far.
func (p *PointerShapeBuffer) Cap() int { return len(p.buf) }
