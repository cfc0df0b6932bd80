package outputduplication

import (
	"errors"
	"fmt"

	"github.com/kirides/duplication/d3d"
)

var (
	// ErrInvalidBufferLength is returned when a buffer is smaller than the
	// frame it has to hold.
	ErrInvalidBufferLength = errors.New("outputduplication: invalid buffer length")
	// ErrNoOutput is returned by discovery when no adapter exposes an output
	// that can be duplicated.
	ErrNoOutput = errors.New("outputduplication: no output")
	// ErrInvalidName is returned for shared memory names the platform cannot
	// represent.
	ErrInvalidName  = errors.New("outputduplication: invalid shared memory name")
	ErrInvalidPitch = errors.New("outputduplication: pitch smaller than row size")
	ErrShortSource  = errors.New("outputduplication: source shorter than frame")
)

// PlatformError wraps a failed OS or driver call.
type PlatformError struct {
	API string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("failed to %s. %v", e.API, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is an acquire that ran into its timeout
// without a new frame. Callers simply try again.
func IsTimeout(err error) bool {
	return errors.Is(err, d3d.DXGI_ERROR_WAIT_TIMEOUT)
}

// IsAccessLost reports whether the duplication became invalid, e.g. after a
// mode change, a desktop switch or a removed device. The session has to be
// discarded and rebuilt through a new Scanner. DXGI_ERROR_INVALID_CALL is
// not included, it reports a frame released twice or acquired again before
// its release.
func IsAccessLost(err error) bool {
	return errors.Is(err, d3d.DXGI_ERROR_ACCESS_LOST) ||
		errors.Is(err, d3d.DXGI_ERROR_DEVICE_REMOVED) ||
		errors.Is(err, d3d.DXGI_ERROR_DEVICE_RESET) ||
		errors.Is(err, d3d.DXGI_ERROR_SESSION_DISCONNECTED)
}
