package outputduplication

import "github.com/kirides/duplication/d3d"

// TextureDesc describes a readable texture.
type TextureDesc d3d.D3D11_TEXTURE2D_DESC

// CalcBufferSize returns the number of bytes a tightly packed copy of the
// texture occupies.
func (d TextureDesc) CalcBufferSize() int {
	return int(d.Width) * int(d.Height) * bytesPerPixel
}

// ReadableTextureDesc returns the description of a CPU readable staging
// texture for the given mode. Width and height are swapped for outputs
// rotated by 90 or 270 degrees.
func ReadableTextureDesc(dupl DuplDesc, rotation d3d.DXGI_MODE_ROTATION) TextureDesc {
	width, height := dupl.ModeDesc.Width, dupl.ModeDesc.Height
	if rotation == d3d.DXGI_MODE_ROTATION_ROTATE90 || rotation == d3d.DXGI_MODE_ROTATION_ROTATE270 {
		width, height = height, width
	}

	return TextureDesc{
		Width:          width,
		Height:         height,
		MipLevels:      1,
		ArraySize:      1,
		Format:         d3d.DXGI_FORMAT_B8G8R8A8_UNORM,
		SampleDesc:     d3d.DXGI_SAMPLE_DESC{Count: 1},
		Usage:          d3d.D3D11_USAGE_STAGING,
		BindFlags:      0,
		CPUAccessFlags: d3d.D3D11_CPU_ACCESS_READ,
		MiscFlags:      0,
	}
}
