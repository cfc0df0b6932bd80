package outputduplication

import "go.uber.org/zap"

// CopyPixels copies a width x height BGRA32 image with the given row pitch
// from src into the tightly packed dst.
func CopyPixels(dst, src []byte, pitch, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	row := width * bytesPerPixel
	if pitch < row {
		return ErrInvalidPitch
	}
	if len(dst) < row*height {
		return ErrInvalidBufferLength
	}
	if len(src) < pitch*(height-1)+row {
		return ErrShortSource
	}

	if pitch == row {
		copy(dst[:row*height], src)
		return nil
	}

	for y := 0; y < height; y++ {
		copy(dst[y*row:(y+1)*row], src[y*pitch:y*pitch+row])
	}
	return nil
}

// copyTexture maps tex and copies its pixels into dst.
func copyTexture(tex ReadableTexture, desc TextureDesc, dst []byte, log *zap.Logger) (err error) {
	rect, err := tex.Map()
	if err != nil {
		return err
	}
	defer func() {
		uerr := tex.Unmap()
		if uerr == nil {
			return
		}
		if err != nil {
			log.Warn("unmap after failed copy", zap.Error(uerr))
			return
		}
		err = uerr
	}()

	return CopyPixels(dst, rect.Bits, rect.Pitch, int(desc.Width), int(desc.Height))
}
