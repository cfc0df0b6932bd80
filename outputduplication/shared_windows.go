package outputduplication

import (
	"errors"
	"unsafe"

	"github.com/kirides/duplication/win"
	"golang.org/x/sys/windows"
)

const invalidNameChars = "\x00"

type mapping struct {
	handle windows.Handle
}

func createMapping(name string, size int) ([]byte, mapping, error) {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, mapping{}, ErrInvalidName
	}
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE,
		uint32(uint64(size)>>32), uint32(size), namep)
	if h == 0 {
		return nil, mapping{}, &PlatformError{API: "CreateFileMappingW", Err: err}
	}
	// an existing mapping with the same name is reused, MapViewOfFile fails
	// below if it is too small.
	return mapView(h, size)
}

func openMapping(name string, size int) ([]byte, mapping, error) {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, mapping{}, ErrInvalidName
	}
	h, err := win.OpenFileMapping(windows.FILE_MAP_READ|windows.FILE_MAP_WRITE, false, namep)
	if err != nil {
		return nil, mapping{}, &PlatformError{API: "OpenFileMappingW", Err: err}
	}
	return mapView(h, size)
}

func mapView(h windows.Handle, size int) ([]byte, mapping, error) {
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ|windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, mapping{}, &PlatformError{API: "MapViewOfFile", Err: err}
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return data, mapping{handle: h}, nil
}

func (m mapping) close(data []byte) error {
	var err error
	if len(data) > 0 {
		if uerr := windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0]))); uerr != nil {
			err = &PlatformError{API: "UnmapViewOfFile", Err: uerr}
		}
	}
	if cerr := windows.CloseHandle(m.handle); cerr != nil {
		err = errors.Join(err, &PlatformError{API: "CloseHandle", Err: cerr})
	}
	return err
}
