package outputduplication

import (
	"errors"
	"testing"

	"github.com/kirides/duplication/d3d"
	"go.uber.org/zap"
)

func TestReadableTextureDescRotation(t *testing.T) {
	var dupl DuplDesc
	dupl.ModeDesc.Width = 1920
	dupl.ModeDesc.Height = 1080

	tests := []struct {
		rotation      d3d.DXGI_MODE_ROTATION
		width, height uint32
	}{
		{d3d.DXGI_MODE_ROTATION_UNSPECIFIED, 1920, 1080},
		{d3d.DXGI_MODE_ROTATION_IDENTITY, 1920, 1080},
		{d3d.DXGI_MODE_ROTATION_ROTATE90, 1080, 1920},
		{d3d.DXGI_MODE_ROTATION_ROTATE180, 1920, 1080},
		{d3d.DXGI_MODE_ROTATION_ROTATE270, 1080, 1920},
	}
	for _, tt := range tests {
		desc := ReadableTextureDesc(dupl, tt.rotation)
		if desc.Width != tt.width || desc.Height != tt.height {
			t.Errorf("rotation %d: got %dx%d, want %dx%d", tt.rotation, desc.Width, desc.Height, tt.width, tt.height)
		}
		if desc.CalcBufferSize() != 1920*1080*4 {
			t.Errorf("rotation %d: CalcBufferSize() = %d", tt.rotation, desc.CalcBufferSize())
		}
	}
}

func TestReadableTextureDescIsStaging(t *testing.T) {
	var dupl DuplDesc
	dupl.ModeDesc.Width, dupl.ModeDesc.Height = 800, 600
	desc := ReadableTextureDesc(dupl, d3d.DXGI_MODE_ROTATION_IDENTITY)

	if desc.Usage != d3d.D3D11_USAGE_STAGING {
		t.Errorf("Usage = %d", desc.Usage)
	}
	if desc.CPUAccessFlags != d3d.D3D11_CPU_ACCESS_READ {
		t.Errorf("CPUAccessFlags = %#x", desc.CPUAccessFlags)
	}
	if desc.Format != d3d.DXGI_FORMAT_B8G8R8A8_UNORM {
		t.Errorf("Format = %d", desc.Format)
	}
	if desc.MipLevels != 1 || desc.ArraySize != 1 || desc.SampleDesc.Count != 1 {
		t.Errorf("MipLevels=%d ArraySize=%d SampleDesc.Count=%d", desc.MipLevels, desc.ArraySize, desc.SampleDesc.Count)
	}
}

func TestCopyTextureUnmaps(t *testing.T) {
	s := newMockSession(4, 3)
	s.pad = 8
	rt, desc, err := s.CreateReadableTexture()
	if err != nil {
		t.Fatal(err)
	}
	tex := rt.(*mockTexture)
	paint(tex, 1)

	dst := make([]byte, desc.CalcBufferSize())
	if err := copyTexture(tex, desc, dst, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if tex.mapped || tex.unmaps != 1 {
		t.Errorf("mapped=%v unmaps=%d after copy", tex.mapped, tex.unmaps)
	}
	for _, b := range dst {
		if b == 0xEE {
			t.Fatal("row padding leaked into the frame")
		}
	}

	// the copy error wins over the unmap error
	tex.unmapErr = errors.New("unmap failed")
	err = copyTexture(tex, desc, dst[:1], zap.NewNop())
	if !errors.Is(err, ErrInvalidBufferLength) {
		t.Errorf("got %v, want ErrInvalidBufferLength", err)
	}
	if tex.unmaps != 2 {
		t.Errorf("unmaps = %d, want 2", tex.unmaps)
	}

	err = copyTexture(tex, desc, dst, zap.NewNop())
	if err == nil || err.Error() != "unmap failed" {
		t.Errorf("got %v, want unmap error", err)
	}

	tex.mapErr = errors.New("map failed")
	if err := copyTexture(tex, desc, dst, zap.NewNop()); err != tex.mapErr {
		t.Errorf("got %v, want map error", err)
	}
	if tex.unmaps != 3 {
		t.Errorf("unmapped a texture that was never mapped")
	}
}
