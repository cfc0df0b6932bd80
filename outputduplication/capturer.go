package outputduplication

import (
	"bytes"
	"errors"

	"go.uber.org/zap"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Capturer copies frames of a Session into a Buffer. A Capturer must not be
// used from multiple goroutines at once.
type Capturer[B Buffer] struct {
	noCopy noCopy

	session Session
	texture ReadableTexture
	desc    TextureDesc
	buffer  B

	// shape holds the most recent pointer shape, lastShape the one before.
	shape     PointerShapeBuffer
	lastShape PointerShapeBuffer

	log    *zap.Logger
	closed bool
}

// NewCapturer allocates a readable texture for s and a buffer created by
// newBuffer that is large enough for one frame.
func NewCapturer[B Buffer](s Session, newBuffer func(size int) (B, error), opts ...Option) (*Capturer[B], error) {
	o := newOptions(opts)

	tex, desc, err := s.CreateReadableTexture()
	if err != nil {
		return nil, err
	}
	size := desc.CalcBufferSize()
	buf, err := newBuffer(size)
	if err != nil {
		tex.Release()
		return nil, err
	}
	if buf.Len() < size {
		tex.Release()
		buf.Close()
		return nil, ErrInvalidBufferLength
	}

	o.log.Debug("capturer created",
		zap.Uint32("width", desc.Width),
		zap.Uint32("height", desc.Height),
		zap.Int("bufferSize", size))

	return &Capturer[B]{
		session: s,
		texture: tex,
		desc:    desc,
		buffer:  buf,
		log:     o.log,
	}, nil
}

// NewHeapCapturer creates a Capturer writing into Go memory.
func NewHeapCapturer(s Session, opts ...Option) (*Capturer[*HeapBuffer], error) {
	return NewCapturer(s, func(size int) (*HeapBuffer, error) {
		return NewHeapBuffer(size), nil
	}, opts...)
}

// CreateSharedCapturer creates a Capturer writing into a new shared memory
// mapping called name.
func CreateSharedCapturer(s Session, name string, opts ...Option) (*Capturer[*SharedBuffer], error) {
	return NewCapturer(s, func(size int) (*SharedBuffer, error) {
		return CreateSharedBuffer(name, size, opts...)
	}, opts...)
}

// OpenSharedCapturer creates a Capturer writing into the existing shared
// memory mapping called name.
func OpenSharedCapturer(s Session, name string, opts ...Option) (*Capturer[*SharedBuffer], error) {
	return NewCapturer(s, func(size int) (*SharedBuffer, error) {
		return OpenSharedBuffer(name, size, opts...)
	}, opts...)
}

func (c *Capturer[B]) Session() Session         { return c.session }
func (c *Capturer[B]) Buffer() B                { return c.buffer }
func (c *Capturer[B]) TextureDesc() TextureDesc { return c.desc }

// CalcBufferSize returns the buffer size the current output mode requires.
func (c *Capturer[B]) CalcBufferSize() int {
	return c.session.DuplDesc().CalcBufferSize()
}

// CheckBuffer fails with ErrInvalidBufferLength when the output mode changed
// to a resolution the buffer can no longer hold.
func (c *Capturer[B]) CheckBuffer() error {
	if c.buffer.Len() < c.CalcBufferSize() {
		return ErrInvalidBufferLength
	}
	return nil
}

// Capture waits up to timeoutMs for a new frame and copies it into the buffer.
func (c *Capturer[B]) Capture(timeoutMs uint32) (FrameInfo, error) {
	if err := c.CheckBuffer(); err != nil {
		return FrameInfo{}, err
	}
	return c.CaptureUnchecked(timeoutMs)
}

// CaptureUnchecked is Capture without re-validating the buffer size. A buffer
// that became too small yields ErrInvalidBufferLength after the frame was
// consumed.
func (c *Capturer[B]) CaptureUnchecked(timeoutMs uint32) (FrameInfo, error) {
	if c.closed {
		return FrameInfo{}, errClosed
	}
	info, err := NextFrame(c.session, timeoutMs, c.texture)
	if err != nil {
		return info, err
	}
	return info, c.copyFrame()
}

// CaptureWithPointerShape is Capture that also tracks the pointer shape. The
// returned shape info is non-nil exactly when the frame carried a new shape,
// which is then available through PointerShapeBuffer.
func (c *Capturer[B]) CaptureWithPointerShape(timeoutMs uint32) (FrameInfo, *PointerShapeInfo, error) {
	if err := c.CheckBuffer(); err != nil {
		return FrameInfo{}, nil, err
	}
	return c.CaptureWithPointerShapeUnchecked(timeoutMs)
}

func (c *Capturer[B]) CaptureWithPointerShapeUnchecked(timeoutMs uint32) (FrameInfo, *PointerShapeInfo, error) {
	if c.closed {
		return FrameInfo{}, nil, errClosed
	}
	// the new shape goes into the spare slot which becomes current afterwards.
	info, shapeInfo, err := NextFrameWithPointerShape(c.session, timeoutMs, c.texture, &c.lastShape)
	if err != nil {
		return info, nil, err
	}
	if shapeInfo != nil {
		c.shape, c.lastShape = c.lastShape, c.shape
	}
	return info, shapeInfo, c.copyFrame()
}

// PointerShapeBuffer returns the most recent pointer shape.
func (c *Capturer[B]) PointerShapeBuffer() []byte {
	return c.shape.Bytes()
}

// PointerShapeUpdated reports whether the most recent pointer shape differs
// from the one before it.
func (c *Capturer[B]) PointerShapeUpdated() bool {
	return c.shape.Len() != c.lastShape.Len() ||
		!bytes.Equal(c.shape.Bytes(), c.lastShape.Bytes())
}

// Close releases the texture and the buffer.
func (c *Capturer[B]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.texture.Release()
	return c.buffer.Close()
}

func (c *Capturer[B]) copyFrame() error {
	return copyTexture(c.texture, c.desc, c.buffer.Bytes(), c.log)
}

var errClosed = errors.New("outputduplication: capturer closed")
