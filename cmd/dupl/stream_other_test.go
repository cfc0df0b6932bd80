//go:build !windows

package main

import (
	"context"
	"testing"
	"time"

	"github.com/mattn/go-mjpeg"
	"go.uber.org/zap"
)

func TestStreamDisplayDXGIStopsWithoutOutputs(t *testing.T) {
	stream := mjpeg.NewStream()
	defer stream.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		streamDisplayDXGI(context.Background(), 0, DefaultConfig(), stream, zap.NewNop())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream goroutine kept running without a duplicatable output")
	}
}

func TestDisplayCountDXGIUnsupported(t *testing.T) {
	if _, err := displayCount(backendDXGI, zap.NewNop()); !permanentCaptureError(err) {
		t.Errorf("got %v, want an unsupported error", err)
	}
}
