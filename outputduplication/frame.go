package outputduplication

import (
	"unicode/utf16"

	"github.com/kirides/duplication/d3d"
)

// bytesPerPixel of the BGRA32 frames delivered by the duplication service.
const bytesPerPixel = 4

// FrameInfo describes an acquired frame.
type FrameInfo d3d.DXGI_OUTDUPL_FRAME_INFO

// DesktopUpdated reports whether the frame carries new desktop pixels.
func (fi FrameInfo) DesktopUpdated() bool { return fi.LastPresentTime != 0 }

// MouseUpdated reports whether the pointer moved or changed its shape.
func (fi FrameInfo) MouseUpdated() bool { return fi.LastMouseUpdateTime != 0 }

// PointerShapeUpdated reports whether a new pointer shape can be fetched for
// this frame.
func (fi FrameInfo) PointerShapeUpdated() bool { return fi.PointerShapeBufferSize > 0 }

// PointerShapeInfo describes the pointer shape stored in a shape buffer.
type PointerShapeInfo d3d.DXGI_OUTDUPL_POINTER_SHAPE_INFO

// DuplDesc describes the current mode of a duplicated output.
type DuplDesc d3d.DXGI_OUTDUPL_DESC

func (d DuplDesc) Width() int  { return int(d.ModeDesc.Width) }
func (d DuplDesc) Height() int { return int(d.ModeDesc.Height) }

// CalcBufferSize returns the number of bytes a BGRA32 frame of the current
// mode occupies.
func (d DuplDesc) CalcBufferSize() int {
	return d.Width() * d.Height() * bytesPerPixel
}

// OutputDesc describes a display output and its place on the desktop.
type OutputDesc d3d.DXGI_OUTPUT_DESC

func (d OutputDesc) Width() int {
	return int(d.DesktopCoordinates.Right - d.DesktopCoordinates.Left)
}

func (d OutputDesc) Height() int {
	return int(d.DesktopCoordinates.Bottom - d.DesktopCoordinates.Top)
}

// Name returns the GDI device name, e.g. `\\.\DISPLAY1`.
func (d OutputDesc) Name() string {
	n := 0
	for n < len(d.DeviceName) && d.DeviceName[n] != 0 {
		n++
	}
	return string(utf16.Decode(d.DeviceName[:n]))
}

const monitorInfoPrimary = 0x1

// MonitorInfo holds the monitor rectangles of an output as reported by GDI.
type MonitorInfo struct {
	Monitor d3d.RECT
	Work    d3d.RECT
	Flags   uint32
}

func (mi MonitorInfo) IsPrimary() bool {
	return mi.Flags&monitorInfoPrimary != 0
}
