package d3d

import "strconv"

type DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}
type DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	Rational         DXGI_RATIONAL
	Format           DXGI_FORMAT
	ScanlineOrdering uint32 // DXGI_MODE_SCANLINE_ORDER
	Scaling          uint32 // DXGI_MODE_SCALING
}

type DXGI_OUTDUPL_DESC struct {
	ModeDesc                   DXGI_MODE_DESC
	Rotation                   DXGI_MODE_ROTATION
	DesktopImageInSystemMemory uint32 // BOOL
}

type DXGI_MODE_ROTATION uint32

const (
	DXGI_MODE_ROTATION_UNSPECIFIED DXGI_MODE_ROTATION = 0
	DXGI_MODE_ROTATION_IDENTITY    DXGI_MODE_ROTATION = 1
	DXGI_MODE_ROTATION_ROTATE90    DXGI_MODE_ROTATION = 2
	DXGI_MODE_ROTATION_ROTATE180   DXGI_MODE_ROTATION = 3
	DXGI_MODE_ROTATION_ROTATE270   DXGI_MODE_ROTATION = 4
)

func (r DXGI_MODE_ROTATION) String() string {
	switch r {
	case DXGI_MODE_ROTATION_UNSPECIFIED:
		return "UNSPECIFIED"
	case DXGI_MODE_ROTATION_IDENTITY:
		return "IDENTITY"
	case DXGI_MODE_ROTATION_ROTATE90:
		return "ROTATE90"
	case DXGI_MODE_ROTATION_ROTATE180:
		return "ROTATE180"
	case DXGI_MODE_ROTATION_ROTATE270:
		return "ROTATE270"
	}
	return "DXGI_MODE_ROTATION(" + strconv.FormatUint(uint64(r), 10) + ")"
}

type DXGI_FORMAT uint32

const (
	DXGI_FORMAT_R8G8B8A8_UNORM DXGI_FORMAT = 28
	DXGI_FORMAT_B8G8R8A8_UNORM DXGI_FORMAT = 87
)

type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type POINT struct {
	X int32
	Y int32
}

type RECT struct {
	Left, Top, Right, Bottom int32
}

type DXGI_OUTPUT_DESC struct {
	DeviceName         [32]uint16
	DesktopCoordinates RECT
	AttachedToDesktop  uint32 // BOOL
	Rotation           DXGI_MODE_ROTATION
	Monitor            uintptr // HMONITOR
}

type DXGI_OUTDUPL_POINTER_POSITION struct {
	Position POINT
	Visible  uint32
}
type DXGI_OUTDUPL_FRAME_INFO struct {
	LastPresentTime           int64
	LastMouseUpdateTime       int64
	AccumulatedFrames         uint32
	RectsCoalesced            uint32
	ProtectedContentMaskedOut uint32
	PointerPosition           DXGI_OUTDUPL_POINTER_POSITION
	TotalMetadataBufferSize   uint32
	PointerShapeBufferSize    uint32
}

type DXGI_OUTDUPL_POINTER_SHAPE_TYPE uint32

const (
	DXGI_OUTDUPL_POINTER_SHAPE_TYPE_MONOCHROME   DXGI_OUTDUPL_POINTER_SHAPE_TYPE = 1
	DXGI_OUTDUPL_POINTER_SHAPE_TYPE_COLOR        DXGI_OUTDUPL_POINTER_SHAPE_TYPE = 2
	DXGI_OUTDUPL_POINTER_SHAPE_TYPE_MASKED_COLOR DXGI_OUTDUPL_POINTER_SHAPE_TYPE = 4
)

func (t DXGI_OUTDUPL_POINTER_SHAPE_TYPE) String() string {
	switch t {
	case DXGI_OUTDUPL_POINTER_SHAPE_TYPE_MONOCHROME:
		return "MONOCHROME"
	case DXGI_OUTDUPL_POINTER_SHAPE_TYPE_COLOR:
		return "COLOR"
	case DXGI_OUTDUPL_POINTER_SHAPE_TYPE_MASKED_COLOR:
		return "MASKED_COLOR"
	}
	return "DXGI_OUTDUPL_POINTER_SHAPE_TYPE(" + strconv.FormatUint(uint64(t), 10) + ")"
}

type DXGI_OUTDUPL_POINTER_SHAPE_INFO struct {
	Type    DXGI_OUTDUPL_POINTER_SHAPE_TYPE
	Width   uint32
	Height  uint32
	Pitch   uint32
	HotSpot POINT
}

type DXGI_MAPPED_RECT struct {
	Pitch int32
	PBits uintptr
}

const (
	DXGI_MAP_READ    = 1 << 0
	DXGI_MAP_WRITE   = 1 << 1
	DXGI_MAP_DISCARD = 1 << 2
)

const DXGI_RESOURCE_PRIORITY_MAXIMUM = 0xc8000000

type D3D11_TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         DXGI_FORMAT
	SampleDesc     DXGI_SAMPLE_DESC
	Usage          uint32 // D3D11_USAGE
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

const (
	D3D11_USAGE_DEFAULT = 0
	D3D11_USAGE_STAGING = 3

	D3D11_CPU_ACCESS_WRITE = 0x10000
	D3D11_CPU_ACCESS_READ  = 0x20000

	D3D11_SDK_VERSION = 7

	D3D_DRIVER_TYPE_UNKNOWN  = 0
	D3D_DRIVER_TYPE_HARDWARE = 1

	D3D11_CREATE_DEVICE_BGRA_SUPPORT = 0x20
)

const (
	ERROR_INVALID_ARG                  DXGI_ERROR = 0x80070057
	E_NOINTERFACE                      DXGI_ERROR = 0x80004002
	DXGI_ERROR_ACCESS_DENIED           DXGI_ERROR = 0x887A002B
	DXGI_ERROR_ACCESS_LOST             DXGI_ERROR = 0x887A0026
	DXGI_ERROR_DEVICE_HUNG             DXGI_ERROR = 0x887A0006
	DXGI_ERROR_DEVICE_REMOVED          DXGI_ERROR = 0x887A0005
	DXGI_ERROR_DEVICE_RESET            DXGI_ERROR = 0x887A0007
	DXGI_ERROR_INVALID_CALL            DXGI_ERROR = 0x887A0001
	DXGI_ERROR_MORE_DATA               DXGI_ERROR = 0x887A0003
	DXGI_ERROR_NOT_CURRENTLY_AVAILABLE DXGI_ERROR = 0x887A0022
	DXGI_ERROR_NOT_FOUND               DXGI_ERROR = 0x887A0002
	DXGI_ERROR_SESSION_DISCONNECTED    DXGI_ERROR = 0x887A0028
	DXGI_ERROR_UNSUPPORTED             DXGI_ERROR = 0x887A0004
	DXGI_ERROR_WAIT_TIMEOUT            DXGI_ERROR = 0x887A0027
	DXGI_ERROR_WAS_STILL_DRAWING       DXGI_ERROR = 0x887A000A
)

// DXGI_ERROR is a failed HRESULT returned by a DXGI or D3D11 call.
type DXGI_ERROR uint32

// HRESULT converts a raw return value into an error, nil on success.
func HRESULT(hr int32) error {
	if !Failed(hr) {
		return nil
	}
	return DXGI_ERROR(uint32(hr))
}

// Failed mirrors the FAILED() macro.
func Failed(hr int32) bool {
	return hr < 0
}

func (e DXGI_ERROR) Error() string {
	switch e {
	case ERROR_INVALID_ARG:
		return "ERROR_INVALID_ARG"
	case E_NOINTERFACE:
		return "E_NOINTERFACE"
	case DXGI_ERROR_ACCESS_DENIED:
		return "DXGI_ERROR_ACCESS_DENIED"
	case DXGI_ERROR_ACCESS_LOST:
		return "DXGI_ERROR_ACCESS_LOST"
	case DXGI_ERROR_DEVICE_HUNG:
		return "DXGI_ERROR_DEVICE_HUNG"
	case DXGI_ERROR_DEVICE_REMOVED:
		return "DXGI_ERROR_DEVICE_REMOVED"
	case DXGI_ERROR_DEVICE_RESET:
		return "DXGI_ERROR_DEVICE_RESET"
	case DXGI_ERROR_INVALID_CALL:
		return "DXGI_ERROR_INVALID_CALL"
	case DXGI_ERROR_MORE_DATA:
		return "DXGI_ERROR_MORE_DATA"
	case DXGI_ERROR_NOT_CURRENTLY_AVAILABLE:
		return "DXGI_ERROR_NOT_CURRENTLY_AVAILABLE"
	case DXGI_ERROR_NOT_FOUND:
		return "DXGI_ERROR_NOT_FOUND"
	case DXGI_ERROR_SESSION_DISCONNECTED:
		return "DXGI_ERROR_SESSION_DISCONNECTED"
	case DXGI_ERROR_UNSUPPORTED:
		return "DXGI_ERROR_UNSUPPORTED"
	case DXGI_ERROR_WAIT_TIMEOUT:
		return "DXGI_ERROR_WAIT_TIMEOUT"
	case DXGI_ERROR_WAS_STILL_DRAWING:
		return "DXGI_ERROR_WAS_STILL_DRAWING"
	}

	return "0x" + strconv.FormatUint(uint64(e), 16)
}
