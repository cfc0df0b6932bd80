package d3d

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modD3D11              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = modD3D11.NewProc("D3D11CreateDevice")
)

// NewD3D11Device creates a device on the default hardware adapter.
func NewD3D11Device() (*ID3D11Device, *ID3D11DeviceContext, error) {
	return newD3D11Device(nil, D3D_DRIVER_TYPE_HARDWARE)
}

// NewD3D11DeviceOnAdapter creates a device bound to adapter. Duplicating an
// output requires the device to live on the adapter that owns the output.
func NewD3D11DeviceOnAdapter(adapter *IDXGIAdapter1) (*ID3D11Device, *ID3D11DeviceContext, error) {
	return newD3D11Device(adapter, D3D_DRIVER_TYPE_UNKNOWN)
}

func newD3D11Device(adapter *IDXGIAdapter1, driverType uint32) (*ID3D11Device, *ID3D11DeviceContext, error) {
	var device *ID3D11Device
	var deviceCtx *ID3D11DeviceContext

	ret, _, _ := syscall.SyscallN(
		procD3D11CreateDevice.Addr(),
		uintptr(unsafe.Pointer(adapter)),    // pAdapter
		uintptr(driverType),                 // DriverType
		0,                                   // Software
		D3D11_CREATE_DEVICE_BGRA_SUPPORT,    // Flags
		0,                                   // pFeatureLevels
		0,                                   // FeatureLevels
		D3D11_SDK_VERSION,                   // SDKVersion
		uintptr(unsafe.Pointer(&device)),    // ppDevice
		0,                                   // pFeatureLevel
		uintptr(unsafe.Pointer(&deviceCtx)), // ppImmediateContext
	)
	if err := HRESULT(int32(ret)); err != nil {
		return nil, nil, fmt.Errorf("D3D11CreateDevice failed. %w", err)
	}
	return device, deviceCtx, nil
}

type ID3D11Device struct {
	vtbl *iD3D11DeviceVtbl
}

func (obj *ID3D11Device) CreateTexture2D(desc *D3D11_TEXTURE2D_DESC, ppTexture2D **ID3D11Texture2D) int32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
		0, // pInitialData
		uintptr(unsafe.Pointer(ppTexture2D)),
	)
	return int32(ret)
}
func (obj *ID3D11Device) AddRef() uint32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.AddRef,
		uintptr(unsafe.Pointer(obj)),
	)
	return uint32(ret)
}
func (obj *ID3D11Device) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type ID3D11DeviceContext struct {
	vtbl *iD3D11DeviceContextVtbl
}

// CopyResource2D issues a GPU side copy of src into dst, both must have the
// same dimensions and format.
func (obj *ID3D11DeviceContext) CopyResource2D(dst, src *ID3D11Texture2D) {
	syscall.SyscallN(
		obj.vtbl.CopyResource,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)),
	)
}
func (obj *ID3D11DeviceContext) AddRef() uint32 {
	ret, _, _ := syscall.SyscallN(
		obj.vtbl.AddRef,
		uintptr(unsafe.Pointer(obj)),
	)
	return uint32(ret)
}
func (obj *ID3D11DeviceContext) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}

type ID3D11Texture2D struct {
	vtbl *iD3D11Texture2DVtbl
}

func (obj *ID3D11Texture2D) GetDesc(desc *D3D11_TEXTURE2D_DESC) {
	syscall.SyscallN(
		obj.vtbl.GetDesc,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(desc)),
	)
}
func (obj *ID3D11Texture2D) SetEvictionPriority(priority uint32) {
	syscall.SyscallN(
		obj.vtbl.SetEvictionPriority,
		uintptr(unsafe.Pointer(obj)),
		uintptr(priority),
	)
}
func (obj *ID3D11Texture2D) QueryInterface(iid windows.GUID, pp interface{}) int32 {
	return reflectQueryInterface(obj, obj.vtbl.QueryInterface, &iid, pp)
}
func (obj *ID3D11Texture2D) Release() uint32 {
	return comRelease(unsafe.Pointer(obj), obj.vtbl.Release)
}
