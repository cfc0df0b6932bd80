package d3d

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modDXGI                = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory1 = modDXGI.NewProc("CreateDXGIFactory1")
)

// CreateDXGIFactory1 creates the factory used to enumerate adapters.
func CreateDXGIFactory1(ppFactory **IDXGIFactory1) error {
	ret, _, _ := syscall.SyscallN(
		procCreateDXGIFactory1.Addr(),
		uintptr(unsafe.Pointer(&IID_IDXGIFactory1)),
		uintptr(unsafe.Pointer(ppFactory)),
	)
	return HRESULT(int32(ret))
}

type IDXGIFactory1 struct {
	vtbl *iDXGIFactory1Vtbl
}

// EnumAdapters1 returns DXGI_ERROR_NOT_FOUND once adapter is past the last one.
func (obj *IDXGIFactory1) EnumAdapters1(adapter uint32, pp **IDXGIAdapter1) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.EnumAdapters1,
		uintptr(unsafe.Pointer(obj)),
		uintptr(adapter),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}
func (obj *IDXGIFactory1) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGIAdapter1 struct {
	vtbl *iDXGIAdapter1Vtbl
}

// EnumOutputs returns DXGI_ERROR_NOT_FOUND once output is past the last one.
func (obj *IDXGIAdapter1) EnumOutputs(output uint32, pp **IDXGIOutput) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.EnumOutputs,
		uintptr(unsafe.Pointer(obj)),
		uintptr(output),
		uintptr(unsafe.Pointer(pp)),
	)
	return int32(ret)
}
func (obj *IDXGIAdapter1) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGIOutput struct {
	vtbl *iDXGIOutputVtbl
}

func (obj *IDXGIOutput) QueryInterface(iid windows.GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}
func (obj *IDXGIOutput) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGIOutput1 struct {
	vtbl *iDXGIOutput1Vtbl
}

func (obj *IDXGIOutput1) GetDesc(desc *DXGI_OUTPUT_DESC) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
	return int32(ret)
}

func (obj *IDXGIOutput1) DuplicateOutput(device *ID3D11Device, ppOutputDuplication **IDXGIOutputDuplication) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.DuplicateOutput,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(device)),
		uintptr(unsafe.Pointer(ppOutputDuplication)),
	)
	return int32(ret)
}
func (obj *IDXGIOutput1) AddRef() uint32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.AddRef,
		uintptr(unsafe.Pointer(obj)),
	)
	return uint32(ret)
}
func (obj *IDXGIOutput1) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGIResource struct {
	vtbl *iDXGIResourceVtbl
}

func (obj *IDXGIResource) QueryInterface(iid windows.GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}
func (obj *IDXGIResource) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGISurface struct {
	vtbl *iDXGISurfaceVtbl
}

func (obj *IDXGISurface) Map(pLockedRect *DXGI_MAPPED_RECT, mapFlags uint32) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Map,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(pLockedRect)),
		uintptr(mapFlags),
	)
	return int32(ret)
}
func (obj *IDXGISurface) Unmap() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.Unmap,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}
func (obj *IDXGISurface) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type IDXGIOutputDuplication struct {
	vtbl *iDXGIOutputDuplicationVtbl
}

// GetDesc has no return value, the duplication description cannot fail.
func (obj *IDXGIOutputDuplication) GetDesc(desc *DXGI_OUTDUPL_DESC) {
	syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
}

func (obj *IDXGIOutputDuplication) AcquireNextFrame(timeoutMs uint32, pFrameInfo *DXGI_OUTDUPL_FRAME_INFO, ppDesktopResource **IDXGIResource) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.AcquireNextFrame,    // function address
		uintptr(unsafe.Pointer(obj)), // always pass the COM object address first
		uintptr(timeoutMs),           // then all function parameters follow
		uintptr(unsafe.Pointer(pFrameInfo)),
		uintptr(unsafe.Pointer(ppDesktopResource)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) GetFramePointerShape(buffer []byte,
	pPointerShapeBufferSizeRequired *uint32,
	pPointerShapeInfo *DXGI_OUTDUPL_POINTER_SHAPE_INFO) int32 {

	var buf *byte
	if len(buffer) > 0 {
		buf = &buffer[0]
	}

	ret, _, _ := syscall.SyscallN(
		obj.vtbl.GetFramePointerShape,
		uintptr(unsafe.Pointer(obj)),
		uintptr(uint32(len(buffer))),
		uintptr(unsafe.Pointer(buf)),
		uintptr(unsafe.Pointer(pPointerShapeBufferSizeRequired)),
		uintptr(unsafe.Pointer(pPointerShapeInfo)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) ReleaseFrame() int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.ReleaseFrame,
		uintptr(unsafe.Pointer(obj)),
	)
	return int32(ret)
}

func (obj *IDXGIOutputDuplication) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}
