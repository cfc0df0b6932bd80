package outputduplication

import (
	"fmt"
	"unsafe"

	"github.com/kirides/duplication/d3d"
	"github.com/lxn/win"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// Monitor is a Session duplicating one output through DXGI.
type Monitor struct {
	device    *d3d.ID3D11Device
	deviceCtx *d3d.ID3D11DeviceContext
	output    *d3d.IDXGIOutput1
	dupl      *d3d.IDXGIOutputDuplication

	acquired bool
	log      *zap.Logger
}

var _ Session = (*Monitor)(nil)

// newMonitor duplicates output on device. The Monitor holds its own
// references to device and deviceCtx.
func newMonitor(device *d3d.ID3D11Device, deviceCtx *d3d.ID3D11DeviceContext, output *d3d.IDXGIOutput, log *zap.Logger) (*Monitor, error) {
	var output1 *d3d.IDXGIOutput1
	hr := output.QueryInterface(d3d.IID_IDXGIOutput1, &output1)
	if err := d3d.HRESULT(hr); err != nil {
		return nil, &PlatformError{API: "QueryInterface(IID_IDXGIOutput1, ...)", Err: err}
	}

	var dupl *d3d.IDXGIOutputDuplication
	hr = output1.DuplicateOutput(device, &dupl)
	if err := d3d.HRESULT(hr); err != nil {
		output1.Release()
		return nil, &PlatformError{API: "DuplicateOutput", Err: err}
	}

	device.AddRef()
	deviceCtx.AddRef()
	return &Monitor{
		device:    device,
		deviceCtx: deviceCtx,
		output:    output1,
		dupl:      dupl,
		log:       log,
	}, nil
}

func (m *Monitor) DuplDesc() DuplDesc {
	var desc d3d.DXGI_OUTDUPL_DESC
	m.dupl.GetDesc(&desc)
	return DuplDesc(desc)
}

func (m *Monitor) OutputDesc() (OutputDesc, error) {
	var desc d3d.DXGI_OUTPUT_DESC
	if err := d3d.HRESULT(m.output.GetDesc(&desc)); err != nil {
		return OutputDesc{}, &PlatformError{API: "GetDesc", Err: err}
	}
	return OutputDesc(desc), nil
}

// Width and Height of the current duplication mode.
func (m *Monitor) Width() int  { return m.DuplDesc().Width() }
func (m *Monitor) Height() int { return m.DuplDesc().Height() }

// CalcBufferSize returns the size of a BGRA32 frame in the current mode.
func (m *Monitor) CalcBufferSize() int { return m.DuplDesc().CalcBufferSize() }

// MonitorInfo queries GDI for the monitor this output is attached to.
func (m *Monitor) MonitorInfo() (MonitorInfo, error) {
	od, err := m.OutputDesc()
	if err != nil {
		return MonitorInfo{}, err
	}
	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !win.GetMonitorInfo(win.HMONITOR(od.Monitor), &mi) {
		err := windows.GetLastError()
		if err == nil {
			err = windows.ERROR_INVALID_MONITOR_HANDLE
		}
		return MonitorInfo{}, &PlatformError{API: "GetMonitorInfo", Err: err}
	}
	return MonitorInfo{
		Monitor: d3d.RECT(mi.RcMonitor),
		Work:    d3d.RECT(mi.RcWork),
		Flags:   mi.DwFlags,
	}, nil
}

// IsPrimary reports whether the output shows the primary desktop.
func (m *Monitor) IsPrimary() (bool, error) {
	mi, err := m.MonitorInfo()
	if err != nil {
		return false, err
	}
	return mi.IsPrimary(), nil
}

func (m *Monitor) CreateReadableTexture() (ReadableTexture, TextureDesc, error) {
	od, err := m.OutputDesc()
	if err != nil {
		return nil, TextureDesc{}, err
	}
	desc := ReadableTextureDesc(m.DuplDesc(), od.Rotation)
	d3dDesc := d3d.D3D11_TEXTURE2D_DESC(desc)

	var tex *d3d.ID3D11Texture2D
	if err := d3d.HRESULT(m.device.CreateTexture2D(&d3dDesc, &tex)); err != nil {
		return nil, TextureDesc{}, &PlatformError{API: "CreateTexture2D", Err: err}
	}
	tex.SetEvictionPriority(d3d.DXGI_RESOURCE_PRIORITY_MAXIMUM)

	var surface *d3d.IDXGISurface
	if err := d3d.HRESULT(tex.QueryInterface(d3d.IID_IDXGISurface, &surface)); err != nil {
		tex.Release()
		return nil, TextureDesc{}, &PlatformError{API: "QueryInterface(IID_IDXGISurface, ...)", Err: err}
	}

	return &stagingTexture{tex: tex, surface: surface, height: int(desc.Height)}, desc, nil
}

func (m *Monitor) AcquireNextFrame(timeoutMs uint32, dst ReadableTexture) (FrameInfo, error) {
	staged, ok := dst.(*stagingTexture)
	if !ok {
		return FrameInfo{}, fmt.Errorf("outputduplication: texture %T was not created by this monitor", dst)
	}

	var info d3d.DXGI_OUTDUPL_FRAME_INFO
	var resource *d3d.IDXGIResource
	if err := d3d.HRESULT(m.dupl.AcquireNextFrame(timeoutMs, &info, &resource)); err != nil {
		return FrameInfo{}, &PlatformError{API: "AcquireNextFrame", Err: err}
	}
	m.acquired = true
	defer resource.Release()

	var desktop *d3d.ID3D11Texture2D
	if err := d3d.HRESULT(resource.QueryInterface(d3d.IID_ID3D11Texture2D, &desktop)); err != nil {
		if rerr := m.ReleaseFrame(); rerr != nil {
			m.log.Warn("release after failed QueryInterface", zap.Error(rerr))
		}
		return FrameInfo{}, &PlatformError{API: "QueryInterface(IID_ID3D11Texture2D, ...)", Err: err}
	}
	defer desktop.Release()

	m.deviceCtx.CopyResource2D(staged.tex, desktop)
	return FrameInfo(info), nil
}

func (m *Monitor) ReleaseFrame() error {
	if !m.acquired {
		m.log.Debug("ReleaseFrame without an acquired frame")
	}
	m.acquired = false
	if err := d3d.HRESULT(m.dupl.ReleaseFrame()); err != nil {
		return &PlatformError{API: "ReleaseFrame", Err: err}
	}
	return nil
}

func (m *Monitor) GetFramePointerShape(buf []byte) (PointerShapeInfo, uint32, error) {
	var info d3d.DXGI_OUTDUPL_POINTER_SHAPE_INFO
	var required uint32
	if err := d3d.HRESULT(m.dupl.GetFramePointerShape(buf, &required, &info)); err != nil {
		return PointerShapeInfo{}, required, &PlatformError{API: "GetFramePointerShape", Err: err}
	}
	return PointerShapeInfo(info), required, nil
}

// Release frees the duplication and the references on the device.
func (m *Monitor) Release() {
	if m.dupl != nil {
		m.dupl.Release()
		m.dupl = nil
	}
	if m.output != nil {
		m.output.Release()
		m.output = nil
	}
	if m.deviceCtx != nil {
		m.deviceCtx.Release()
		m.deviceCtx = nil
	}
	if m.device != nil {
		m.device.Release()
		m.device = nil
	}
}

// stagingTexture is a D3D11_USAGE_STAGING texture mapped through its
// IDXGISurface view.
type stagingTexture struct {
	tex     *d3d.ID3D11Texture2D
	surface *d3d.IDXGISurface
	height  int
}

func (t *stagingTexture) Map() (MappedRect, error) {
	var rect d3d.DXGI_MAPPED_RECT
	if err := d3d.HRESULT(t.surface.Map(&rect, d3d.DXGI_MAP_READ)); err != nil {
		return MappedRect{}, &PlatformError{API: "surface.Map(...)", Err: err}
	}
	pitch := int(rect.Pitch)
	bits := unsafe.Slice((*byte)(unsafe.Pointer(rect.PBits)), pitch*t.height)
	return MappedRect{Pitch: pitch, Bits: bits}, nil
}

func (t *stagingTexture) Unmap() error {
	if err := d3d.HRESULT(t.surface.Unmap()); err != nil {
		return &PlatformError{API: "surface.Unmap()", Err: err}
	}
	return nil
}

func (t *stagingTexture) Release() {
	if t.surface != nil {
		t.surface.Release()
		t.surface = nil
	}
	if t.tex != nil {
		t.tex.Release()
		t.tex = nil
	}
}
