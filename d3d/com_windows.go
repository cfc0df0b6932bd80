package d3d

import (
	"reflect"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	IID_IDXGIFactory1, _          = windows.GUIDFromString("{770aae78-f26f-4dba-a829-253c83d1b387}")
	IID_IDXGIOutput1, _           = windows.GUIDFromString("{00cddea8-939b-4b83-a340-a685226666cc}")
	IID_IDXGISurface, _           = windows.GUIDFromString("{cafcb56c-6ac3-4889-bf47-9e23bbd260ec}")
	IID_IDXGIResource, _          = windows.GUIDFromString("{035f3ab4-482e-4e50-b41f-8a7f8bd8960b}")
	IID_ID3D11Texture2D, _        = windows.GUIDFromString("{6f15aaf2-d208-4e89-9ab4-489535d34f9c}")
	IID_IDXGIOutputDuplication, _ = windows.GUIDFromString("{191cfac3-a341-470d-b26e-a864f428319c}")
)

// reflectQueryInterface calls IUnknown::QueryInterface and stores the
// resulting interface pointer into obj, which must be a **T.
func reflectQueryInterface(self interface{}, method uintptr, interfaceID *windows.GUID, obj interface{}) int32 {
	selfValue := reflect.ValueOf(self).Elem()
	objValue := reflect.ValueOf(obj).Elem()

	hr, _, _ := syscall.SyscallN(
		method,
		selfValue.UnsafeAddr(),
		uintptr(unsafe.Pointer(interfaceID)),
		objValue.Addr().Pointer(),
	)
	return int32(hr)
}

func comRelease(obj unsafe.Pointer, method uintptr) uint32 {
	ret, _, _ := syscall.SyscallN(
		method,
		uintptr(obj),
	)
	return uint32(ret)
}
