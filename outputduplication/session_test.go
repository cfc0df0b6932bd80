package outputduplication

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kirides/duplication/d3d"
)

func TestNextFrameReleases(t *testing.T) {
	s := newMockSession(8, 8, desktopFrame())
	tex, _, err := s.CreateReadableTexture()
	if err != nil {
		t.Fatal(err)
	}

	info, err := NextFrame(s, 100, tex)
	if err != nil {
		t.Fatal(err)
	}
	if !info.DesktopUpdated() {
		t.Error("expected a desktop update")
	}
	if s.acquired || s.releases != 1 {
		t.Errorf("acquired=%v releases=%d", s.acquired, s.releases)
	}

	_, err = NextFrame(s, 100, tex)
	if !IsTimeout(err) {
		t.Errorf("got %v, want timeout", err)
	}
	if s.releases != 1 {
		t.Errorf("released a frame that was never acquired")
	}
}

func TestNextFrameWithPointerShape(t *testing.T) {
	shape := bytes.Repeat([]byte{0x11, 0x22, 0x33, 0xFF}, 32)
	s := newMockSession(8, 8,
		pointerFrame(shape),
		mockFrame{info: FrameInfo{LastMouseUpdateTime: 5}},
	)
	tex, _, _ := s.CreateReadableTexture()

	var buf PointerShapeBuffer
	info, si, err := NextFrameWithPointerShape(s, 100, tex, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if si == nil {
		t.Fatal("expected pointer shape info")
	}
	if si.Type != d3d.DXGI_OUTDUPL_POINTER_SHAPE_TYPE_COLOR {
		t.Errorf("Type = %v", si.Type)
	}
	if !bytes.Equal(buf.Bytes(), shape) {
		t.Error("shape buffer differs")
	}
	if !info.PointerShapeUpdated() {
		t.Error("PointerShapeUpdated() = false")
	}

	// a position only update does not fetch the shape
	info, si, err = NextFrameWithPointerShape(s, 100, tex, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !info.MouseUpdated() || si != nil {
		t.Errorf("MouseUpdated()=%v shape info=%v", info.MouseUpdated(), si)
	}
	if !bytes.Equal(buf.Bytes(), shape) {
		t.Error("shape buffer changed without a new shape")
	}
	if s.releases != 2 || s.acquired {
		t.Errorf("releases=%d acquired=%v", s.releases, s.acquired)
	}
}

func TestNextFrameWithPointerShapeErrors(t *testing.T) {
	shapeErr := errors.New("shape failed")
	releaseErr := errors.New("release failed")

	t.Run("shape error wins", func(t *testing.T) {
		s := newMockSession(8, 8, pointerFrame(make([]byte, 16)))
		s.shapeErr = shapeErr
		s.releaseErr = releaseErr
		tex, _, _ := s.CreateReadableTexture()

		var buf PointerShapeBuffer
		_, si, err := NextFrameWithPointerShape(s, 100, tex, &buf)
		if !errors.Is(err, shapeErr) {
			t.Errorf("got %v, want shape error", err)
		}
		if si != nil {
			t.Error("shape info returned with an error")
		}
		if s.acquired {
			t.Error("frame not released after shape error")
		}
	})

	t.Run("release error", func(t *testing.T) {
		s := newMockSession(8, 8, pointerFrame(make([]byte, 16)))
		s.releaseErr = releaseErr
		tex, _, _ := s.CreateReadableTexture()

		var buf PointerShapeBuffer
		_, _, err := NextFrameWithPointerShape(s, 100, tex, &buf)
		if !errors.Is(err, releaseErr) {
			t.Errorf("got %v, want release error", err)
		}
	})

	t.Run("acquire error", func(t *testing.T) {
		lost := &PlatformError{API: "AcquireNextFrame", Err: d3d.DXGI_ERROR_ACCESS_LOST}
		s := newMockSession(8, 8, mockFrame{err: lost})
		tex, _, _ := s.CreateReadableTexture()

		var buf PointerShapeBuffer
		_, _, err := NextFrameWithPointerShape(s, 100, tex, &buf)
		if !IsAccessLost(err) {
			t.Errorf("got %v, want access lost", err)
		}
		if s.releases != 0 {
			t.Error("released a frame that was never acquired")
		}
	})
}
