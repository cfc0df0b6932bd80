package main

import (
	"errors"
	"fmt"

	"github.com/kirides/duplication/outputduplication"
	"go.uber.org/zap"
)

// openMonitor duplicates the display with the given index in scanner order.
func openMonitor(index int, log *zap.Logger) (*outputduplication.Monitor, error) {
	s, err := outputduplication.NewScanner(outputduplication.WithLogger(log))
	if err != nil {
		return nil, err
	}
	defer s.Close()

	for i := 0; ; i++ {
		m, err := s.Next()
		if errors.Is(err, outputduplication.ErrNoOutput) {
			return nil, fmt.Errorf("display %d: %w", index, err)
		}
		if err != nil {
			return nil, err
		}
		if i == index {
			return m, nil
		}
		m.Release()
	}
}

// heapSource captures one display into Go memory and rebuilds the
// duplication after it was lost, e.g. on a resolution change.
type heapSource struct {
	display   int
	timeoutMs uint32
	log       *zap.Logger

	monitor  *outputduplication.Monitor
	capturer *outputduplication.Capturer[*outputduplication.HeapBuffer]
}

func (s *heapSource) open() error {
	m, err := openMonitor(s.display, s.log)
	if err != nil {
		return err
	}
	c, err := outputduplication.NewHeapCapturer(m, outputduplication.WithLogger(s.log))
	if err != nil {
		m.Release()
		return err
	}
	s.monitor, s.capturer = m, c

	desc := c.TextureDesc()
	s.log.Info("duplicating display",
		zap.Int("display", s.display),
		zap.Uint32("width", desc.Width),
		zap.Uint32("height", desc.Height))
	return nil
}

func (s *heapSource) close() {
	if s.capturer != nil {
		s.capturer.Close()
		s.capturer = nil
	}
	if s.monitor != nil {
		s.monitor.Release()
		s.monitor = nil
	}
}

// capture grabs the next frame. ok is false when no new frame arrived in
// time or the duplication had to be dropped.
func (s *heapSource) capture() (info outputduplication.FrameInfo, ok bool, err error) {
	if s.capturer == nil {
		if err := s.open(); err != nil {
			return info, false, err
		}
	}

	info, err = s.capturer.Capture(s.timeoutMs)
	switch {
	case err == nil:
		return info, true, nil
	case outputduplication.IsTimeout(err):
		return info, false, nil
	case outputduplication.IsAccessLost(err), errors.Is(err, outputduplication.ErrInvalidBufferLength):
		s.log.Info("duplication lost, reopening", zap.Int("display", s.display), zap.Error(err))
		s.close()
		return info, false, nil
	}
	return info, false, err
}

// frame returns the last captured BGRA32 frame and its size.
func (s *heapSource) frame() (pix []byte, width, height int) {
	if s.capturer == nil {
		return nil, 0, 0
	}
	desc := s.capturer.TextureDesc()
	return s.capturer.Buffer().Bytes(), int(desc.Width), int(desc.Height)
}
