package outputduplication

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kirides/duplication/d3d"
)

func TestPlatformError(t *testing.T) {
	err := fmt.Errorf("capture: %w", &PlatformError{API: "AcquireNextFrame", Err: d3d.DXGI_ERROR_WAIT_TIMEOUT})

	var pe *PlatformError
	if !errors.As(err, &pe) {
		t.Fatal("PlatformError not found in chain")
	}
	if pe.API != "AcquireNextFrame" {
		t.Errorf("API = %q", pe.API)
	}
	if got := pe.Error(); got != "failed to AcquireNextFrame. DXGI_ERROR_WAIT_TIMEOUT" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		err        error
		timeout    bool
		accessLost bool
	}{
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_WAIT_TIMEOUT}, true, false},
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_ACCESS_LOST}, false, true},
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_DEVICE_REMOVED}, false, true},
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_SESSION_DISCONNECTED}, false, true},
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_INVALID_CALL}, false, false},
		{&PlatformError{API: "x", Err: d3d.DXGI_ERROR_UNSUPPORTED}, false, false},
		{ErrInvalidBufferLength, false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		if got := IsTimeout(tt.err); got != tt.timeout {
			t.Errorf("IsTimeout(%v) = %v", tt.err, got)
		}
		if got := IsAccessLost(tt.err); got != tt.accessLost {
			t.Errorf("IsAccessLost(%v) = %v", tt.err, got)
		}
	}
}
