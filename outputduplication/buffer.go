package outputduplication

// Buffer holds the pixels of captured frames.
type Buffer interface {
	Bytes() []byte
	Len() int
	Close() error
}

// HeapBuffer is a Buffer backed by ordinary Go memory.
type HeapBuffer struct {
	data []byte
}

// NewHeapBuffer allocates a zeroed buffer of size bytes.
func NewHeapBuffer(size int) *HeapBuffer {
	return &HeapBuffer{data: make([]byte, size)}
}

func (b *HeapBuffer) Bytes() []byte { return b.data }
func (b *HeapBuffer) Len() int      { return len(b.data) }
func (b *HeapBuffer) Close() error  { return nil }
