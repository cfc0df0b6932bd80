package win

//go:generate mkwinsyscall -output zsyscall_windows.go syscall_windows.go

const (
	DpiAwarenessContextUndefined         = 0
	DpiAwarenessContextUnaware           = -1
	DpiAwarenessContextSystemAware       = -2
	DpiAwarenessContextPerMonitorAware   = -3
	DpiAwarenessContextPerMonitorAwareV2 = -4
	DpiAwarenessContextUnawareGdiScaled  = -5
)

//sys	SetThreadDpiAwarenessContext(value int32) (n int, err error) = User32.SetThreadDpiAwarenessContext
//sys	IsValidDpiAwarenessContext(value int32) (n bool) = User32.IsValidDpiAwarenessContext

// x/sys/windows ships CreateFileMapping but not its counterpart.

//sys	OpenFileMapping(desiredAccess uint32, inheritHandle bool, name *uint16) (handle windows.Handle, err error) = Kernel32.OpenFileMappingW

// PerMonitorAwareV2 switches the calling thread to per monitor DPI awareness
// so duplicated outputs are reported in physical pixels. It returns false when
// the running Windows version does not know the context.
func PerMonitorAwareV2() bool {
	if !IsValidDpiAwarenessContext(DpiAwarenessContextPerMonitorAwareV2) {
		return false
	}
	_, err := SetThreadDpiAwarenessContext(DpiAwarenessContextPerMonitorAwareV2)
	return err == nil
}
