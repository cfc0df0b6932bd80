package outputduplication

import (
	"testing"
	"unicode/utf16"

	"github.com/kirides/duplication/d3d"
)

func TestFrameInfoPredicates(t *testing.T) {
	tests := []struct {
		name    string
		info    FrameInfo
		desktop bool
		mouse   bool
		shape   bool
	}{
		{"nothing", FrameInfo{}, false, false, false},
		{"desktop", FrameInfo{LastPresentTime: 42}, true, false, false},
		{"mouse moved", FrameInfo{LastMouseUpdateTime: 7}, false, true, false},
		{"mouse shape", FrameInfo{LastMouseUpdateTime: 7, PointerShapeBufferSize: 1024}, false, true, true},
		{"everything", FrameInfo{LastPresentTime: 1, LastMouseUpdateTime: 1, PointerShapeBufferSize: 4}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.DesktopUpdated(); got != tt.desktop {
				t.Errorf("DesktopUpdated() = %v, want %v", got, tt.desktop)
			}
			if got := tt.info.MouseUpdated(); got != tt.mouse {
				t.Errorf("MouseUpdated() = %v, want %v", got, tt.mouse)
			}
			if got := tt.info.PointerShapeUpdated(); got != tt.shape {
				t.Errorf("PointerShapeUpdated() = %v, want %v", got, tt.shape)
			}
		})
	}
}

func TestDuplDescCalcBufferSize(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{1920, 1080, 8294400},
		{2560, 1440, 14745600},
		{1, 1, 4},
		{0, 1080, 0},
	}
	for _, tt := range tests {
		var d DuplDesc
		d.ModeDesc.Width = uint32(tt.width)
		d.ModeDesc.Height = uint32(tt.height)
		if got := d.CalcBufferSize(); got != tt.want {
			t.Errorf("%dx%d: CalcBufferSize() = %d, want %d", tt.width, tt.height, got, tt.want)
		}
		if d.Width() != tt.width || d.Height() != tt.height {
			t.Errorf("%dx%d: got %dx%d", tt.width, tt.height, d.Width(), d.Height())
		}
	}
}

func TestOutputDesc(t *testing.T) {
	var od OutputDesc
	od.DesktopCoordinates = d3d.RECT{Left: -1920, Top: 0, Right: 0, Bottom: 1200}
	copy(od.DeviceName[:], utf16.Encode([]rune(`\\.\DISPLAY2`)))

	if od.Width() != 1920 || od.Height() != 1200 {
		t.Errorf("size = %dx%d, want 1920x1200", od.Width(), od.Height())
	}
	if got := od.Name(); got != `\\.\DISPLAY2` {
		t.Errorf("Name() = %q", got)
	}
}

func TestMonitorInfoIsPrimary(t *testing.T) {
	if (MonitorInfo{Flags: 0}).IsPrimary() {
		t.Error("flags 0 reported as primary")
	}
	if !(MonitorInfo{Flags: monitorInfoPrimary}).IsPrimary() {
		t.Error("MONITORINFOF_PRIMARY not reported as primary")
	}
}
