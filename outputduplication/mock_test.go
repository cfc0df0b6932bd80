package outputduplication

import (
	"errors"

	"github.com/kirides/duplication/d3d"
)

type mockTexture struct {
	rowBytes int
	pitch    int
	height   int
	bits     []byte
	mapped   bool
	unmaps   int
	released bool
	mapErr   error
	unmapErr error
}

func (t *mockTexture) Map() (MappedRect, error) {
	if t.mapErr != nil {
		return MappedRect{}, t.mapErr
	}
	t.mapped = true
	return MappedRect{Pitch: t.pitch, Bits: t.bits}, nil
}

func (t *mockTexture) Unmap() error {
	t.mapped = false
	t.unmaps++
	return t.unmapErr
}

func (t *mockTexture) Release() { t.released = true }

type mockFrame struct {
	info      FrameInfo
	shape     []byte
	shapeInfo PointerShapeInfo
	err       error
}

// mockSession replays frames. Desktop updates paint the texture with a
// pattern derived from the frame number.
type mockSession struct {
	desc     DuplDesc
	rotation d3d.DXGI_MODE_ROTATION
	pad      int

	frames []mockFrame
	next   int

	acquired bool
	acquires int
	releases int
	textures []*mockTexture

	textureErr error
	shapeErr   error
	releaseErr error
}

func newMockSession(width, height int, frames ...mockFrame) *mockSession {
	s := &mockSession{frames: frames}
	s.desc.ModeDesc.Width = uint32(width)
	s.desc.ModeDesc.Height = uint32(height)
	s.desc.ModeDesc.Format = d3d.DXGI_FORMAT_B8G8R8A8_UNORM
	return s
}

func (s *mockSession) DuplDesc() DuplDesc { return s.desc }

func (s *mockSession) OutputDesc() (OutputDesc, error) {
	var od OutputDesc
	od.DesktopCoordinates = d3d.RECT{Right: int32(s.desc.ModeDesc.Width), Bottom: int32(s.desc.ModeDesc.Height)}
	od.Rotation = s.rotation
	return od, nil
}

func (s *mockSession) CreateReadableTexture() (ReadableTexture, TextureDesc, error) {
	if s.textureErr != nil {
		return nil, TextureDesc{}, s.textureErr
	}
	desc := ReadableTextureDesc(s.desc, s.rotation)
	pitch := int(desc.Width)*bytesPerPixel + s.pad
	tex := &mockTexture{
		rowBytes: int(desc.Width) * bytesPerPixel,
		pitch:    pitch,
		height:   int(desc.Height),
		bits:     make([]byte, pitch*int(desc.Height)),
	}
	s.textures = append(s.textures, tex)
	return tex, desc, nil
}

func (s *mockSession) AcquireNextFrame(timeoutMs uint32, dst ReadableTexture) (FrameInfo, error) {
	if s.acquired {
		return FrameInfo{}, &PlatformError{API: "AcquireNextFrame", Err: d3d.DXGI_ERROR_INVALID_CALL}
	}
	if s.next >= len(s.frames) {
		return FrameInfo{}, &PlatformError{API: "AcquireNextFrame", Err: d3d.DXGI_ERROR_WAIT_TIMEOUT}
	}
	f := s.frames[s.next]
	s.next++
	if f.err != nil {
		return FrameInfo{}, f.err
	}
	s.acquired = true
	s.acquires++

	tex, ok := dst.(*mockTexture)
	if !ok {
		return FrameInfo{}, errors.New("foreign texture")
	}
	if f.info.DesktopUpdated() {
		paint(tex, s.next)
	}
	return f.info, nil
}

func (s *mockSession) ReleaseFrame() error {
	if !s.acquired {
		return &PlatformError{API: "ReleaseFrame", Err: d3d.DXGI_ERROR_INVALID_CALL}
	}
	s.acquired = false
	s.releases++
	return s.releaseErr
}

func (s *mockSession) GetFramePointerShape(buf []byte) (PointerShapeInfo, uint32, error) {
	if !s.acquired {
		return PointerShapeInfo{}, 0, &PlatformError{API: "GetFramePointerShape", Err: d3d.DXGI_ERROR_INVALID_CALL}
	}
	if s.shapeErr != nil {
		return PointerShapeInfo{}, 0, s.shapeErr
	}
	f := s.frames[s.next-1]
	if len(buf) < len(f.shape) {
		return PointerShapeInfo{}, uint32(len(f.shape)), &PlatformError{API: "GetFramePointerShape", Err: d3d.DXGI_ERROR_MORE_DATA}
	}
	n := copy(buf, f.shape)
	return f.shapeInfo, uint32(n), nil
}

// paint fills every row of tex with non-zero pixels and the row padding
// with 0xEE.
func paint(tex *mockTexture, seed int) {
	for y := 0; y < tex.height; y++ {
		row := tex.bits[y*tex.pitch : (y+1)*tex.pitch]
		for x := range row {
			row[x] = 0xEE
		}
	}
	for y := 0; y < tex.height; y++ {
		for x := 0; x < tex.rowBytes; x++ {
			tex.bits[y*tex.pitch+x] = byte((x+y+seed)%251 + 1)
		}
	}
}

func desktopFrame() mockFrame {
	return mockFrame{info: FrameInfo{LastPresentTime: 1, AccumulatedFrames: 1}}
}

func pointerFrame(shape []byte) mockFrame {
	return mockFrame{
		info: FrameInfo{
			LastPresentTime:        1,
			LastMouseUpdateTime:    1,
			AccumulatedFrames:      1,
			PointerShapeBufferSize: uint32(len(shape)),
		},
		shape: shape,
		shapeInfo: PointerShapeInfo{
			Type:   d3d.DXGI_OUTDUPL_POINTER_SHAPE_TYPE_COLOR,
			Width:  uint32(len(shape) / 4),
			Height: 1,
			Pitch:  uint32(len(shape)),
		},
	}
}
