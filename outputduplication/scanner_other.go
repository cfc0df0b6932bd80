//go:build !windows

package outputduplication

import "errors"

var errUnsupported = &PlatformError{API: "duplicate outputs", Err: errors.ErrUnsupported}

// Scanner walks the outputs of all adapters. Desktop duplication only
// exists on windows.
type Scanner struct{}

func NewScanner(opts ...Option) (*Scanner, error) { return nil, errUnsupported }
func (s *Scanner) Next() (*Monitor, error)        { return nil, errUnsupported }
func (s *Scanner) Close()                         {}

func Scan(opts ...Option) ([]*Monitor, error) { return nil, errUnsupported }

// Monitor is never returned on this platform.
type Monitor struct{}

var _ Session = (*Monitor)(nil)

func (m *Monitor) DuplDesc() DuplDesc                { return DuplDesc{} }
func (m *Monitor) OutputDesc() (OutputDesc, error)   { return OutputDesc{}, errUnsupported }
func (m *Monitor) Width() int                        { return 0 }
func (m *Monitor) Height() int                       { return 0 }
func (m *Monitor) CalcBufferSize() int               { return 0 }
func (m *Monitor) MonitorInfo() (MonitorInfo, error) { return MonitorInfo{}, errUnsupported }
func (m *Monitor) IsPrimary() (bool, error)          { return false, errUnsupported }
func (m *Monitor) ReleaseFrame() error               { return errUnsupported }
func (m *Monitor) Release()                          {}
func (m *Monitor) CreateReadableTexture() (ReadableTexture, TextureDesc, error) {
	return nil, TextureDesc{}, errUnsupported
}
func (m *Monitor) AcquireNextFrame(uint32, ReadableTexture) (FrameInfo, error) {
	return FrameInfo{}, errUnsupported
}
func (m *Monitor) GetFramePointerShape([]byte) (PointerShapeInfo, uint32, error) {
	return PointerShapeInfo{}, 0, errUnsupported
}
