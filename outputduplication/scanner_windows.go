package outputduplication

import (
	"errors"

	"github.com/kirides/duplication/d3d"
	"go.uber.org/zap"
)

// Scanner walks the outputs of all adapters and duplicates them.
type Scanner struct {
	factory *d3d.IDXGIFactory1

	adapter      *d3d.IDXGIAdapter1
	device       *d3d.ID3D11Device
	deviceCtx    *d3d.ID3D11DeviceContext
	adapterIndex uint32
	outputIndex  uint32

	log *zap.Logger
}

func NewScanner(opts ...Option) (*Scanner, error) {
	o := newOptions(opts)

	var factory *d3d.IDXGIFactory1
	if err := d3d.CreateDXGIFactory1(&factory); err != nil {
		return nil, &PlatformError{API: "CreateDXGIFactory1", Err: err}
	}
	return &Scanner{factory: factory, log: o.log}, nil
}

// Next returns the next output that can be duplicated. Outputs that fail to
// duplicate make the scanner continue with the next adapter. ErrNoOutput is
// returned once all adapters are exhausted.
func (s *Scanner) Next() (*Monitor, error) {
	for {
		if s.adapter == nil {
			if err := s.nextAdapter(); err != nil {
				return nil, err
			}
		}

		var output *d3d.IDXGIOutput
		hr := s.adapter.EnumOutputs(s.outputIndex, &output)
		if d3d.Failed(hr) {
			if err := d3d.HRESULT(hr); !errors.Is(err, d3d.DXGI_ERROR_NOT_FOUND) {
				s.log.Debug("EnumOutputs failed", zap.Uint32("adapter", s.adapterIndex-1), zap.Error(err))
			}
			s.releaseAdapter()
			continue
		}
		s.outputIndex++

		m, err := newMonitor(s.device, s.deviceCtx, output, s.log)
		output.Release()
		if err != nil {
			s.log.Debug("output cannot be duplicated",
				zap.Uint32("adapter", s.adapterIndex-1),
				zap.Uint32("output", s.outputIndex-1),
				zap.Error(err))
			s.releaseAdapter()
			continue
		}
		return m, nil
	}
}

func (s *Scanner) nextAdapter() error {
	for {
		var adapter *d3d.IDXGIAdapter1
		hr := s.factory.EnumAdapters1(s.adapterIndex, &adapter)
		if err := d3d.HRESULT(hr); err != nil {
			if errors.Is(err, d3d.DXGI_ERROR_NOT_FOUND) {
				return ErrNoOutput
			}
			return &PlatformError{API: "EnumAdapters1", Err: err}
		}
		s.adapterIndex++

		device, deviceCtx, err := d3d.NewD3D11DeviceOnAdapter(adapter)
		if err != nil {
			s.log.Debug("skipping adapter", zap.Uint32("adapter", s.adapterIndex-1), zap.Error(err))
			adapter.Release()
			continue
		}
		s.adapter, s.device, s.deviceCtx = adapter, device, deviceCtx
		s.outputIndex = 0
		return nil
	}
}

func (s *Scanner) releaseAdapter() {
	if s.deviceCtx != nil {
		s.deviceCtx.Release()
		s.deviceCtx = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
}

// Close releases the factory and the current adapter. Monitors returned by
// Next stay valid.
func (s *Scanner) Close() {
	s.releaseAdapter()
	if s.factory != nil {
		s.factory.Release()
		s.factory = nil
	}
}

// Scan returns every output that can be duplicated.
func Scan(opts ...Option) ([]*Monitor, error) {
	s, err := NewScanner(opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var monitors []*Monitor
	for {
		m, err := s.Next()
		if errors.Is(err, ErrNoOutput) {
			break
		}
		if err != nil {
			for _, m := range monitors {
				m.Release()
			}
			return nil, err
		}
		monitors = append(monitors, m)
	}
	if len(monitors) == 0 {
		return nil, ErrNoOutput
	}
	return monitors, nil
}
