package outputduplication

// Session is an open duplication of a single output. Implementations are not
// safe for concurrent use.
type Session interface {
	DuplDesc() DuplDesc
	OutputDesc() (OutputDesc, error)
	// CreateReadableTexture allocates a CPU readable texture sized for the
	// current mode. The caller owns the texture.
	CreateReadableTexture() (ReadableTexture, TextureDesc, error)
	// AcquireNextFrame waits up to timeoutMs for a new frame and copies it
	// into dst. Every successful call must be followed by ReleaseFrame.
	AcquireNextFrame(timeoutMs uint32, dst ReadableTexture) (FrameInfo, error)
	ReleaseFrame() error
	// GetFramePointerShape fills buf with the pointer shape of the acquired
	// frame and returns the number of bytes written.
	GetFramePointerShape(buf []byte) (PointerShapeInfo, uint32, error)
}

// ReadableTexture is a texture whose pixels can be mapped into memory.
type ReadableTexture interface {
	Map() (MappedRect, error)
	Unmap() error
	Release()
}

// MappedRect is a mapped texture. Rows start every Pitch bytes in Bits.
type MappedRect struct {
	Pitch int
	Bits  []byte
}

// NextFrame acquires the next frame into tex and releases it again.
func NextFrame(s Session, timeoutMs uint32, tex ReadableTexture) (info FrameInfo, err error) {
	info, err = s.AcquireNextFrame(timeoutMs, tex)
	if err != nil {
		return info, err
	}
	return info, s.ReleaseFrame()
}

// NextFrameWithPointerShape behaves like NextFrame and additionally fetches
// the pointer shape into shape when the frame reports a new one. The returned
// shape info is nil when the shape did not change.
func NextFrameWithPointerShape(s Session, timeoutMs uint32, tex ReadableTexture, shape *PointerShapeBuffer) (info FrameInfo, shapeInfo *PointerShapeInfo, err error) {
	info, err = s.AcquireNextFrame(timeoutMs, tex)
	if err != nil {
		return info, nil, err
	}
	defer func() {
		if rerr := s.ReleaseFrame(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if !info.PointerShapeUpdated() {
		return info, nil, nil
	}

	shape.Grow(int(info.PointerShapeBufferSize))
	si, n, err := s.GetFramePointerShape(shape.buf)
	if err != nil {
		// shape keeps the previously fetched shape.
		return info, nil, err
	}
	shape.n = int(n)
	return info, &si, nil
}
