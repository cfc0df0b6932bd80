package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kirides/duplication/outputduplication"
)

func TestWatchHandler(t *testing.T) {
	h := watchHandler(2)

	tests := []struct {
		query  string
		status int
		src    string
	}{
		{"", http.StatusOK, `src="/mjpeg0"`},
		{"?screen=1", http.StatusOK, `src="/mjpeg1"`},
		{"?screen=5", http.StatusOK, `src="/mjpeg0"`},
		{"?screen=-1", http.StatusOK, `src="/mjpeg0"`},
		{"?screen=abc", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/watch"+tt.query, nil))

		if rec.Code != tt.status {
			t.Errorf("%q: status %d, want %d", tt.query, rec.Code, tt.status)
			continue
		}
		if tt.src != "" && !strings.Contains(rec.Body.String(), tt.src) {
			t.Errorf("%q: body does not reference %s", tt.query, tt.src)
		}
	}
}

func TestPermanentCaptureError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{fmt.Errorf("display 3: %w", outputduplication.ErrNoOutput), true},
		{&outputduplication.PlatformError{API: "duplicate outputs", Err: errors.ErrUnsupported}, true},
		{outputduplication.ErrInvalidBufferLength, false},
		{errors.New("AcquireNextFrame failed"), false},
	}
	for _, tt := range tests {
		if got := permanentCaptureError(tt.err); got != tt.want {
			t.Errorf("permanentCaptureError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
