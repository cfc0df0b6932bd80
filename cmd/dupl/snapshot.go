package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kirides/duplication/outputduplication"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Capture a single frame of a display",
	Long: `Capture a single frame of a display. Files ending in .png are encoded
as RGBA PNG, anything else receives the raw BGRA32 pixels.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		attempts, _ := cmd.Flags().GetInt("attempts")
		pointerOut, _ := cmd.Flags().GetString("pointer-out")
		return snapshot(cfg, args[0], pointerOut, attempts, log)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().Int("attempts", 10, "Number of frame timeouts to tolerate")
	snapshotCmd.Flags().String("pointer-out", "", "Write the raw pointer shape to this file")
}

func snapshot(cfg *Config, out, pointerOut string, attempts int, log *zap.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	setDPIAware(log)

	m, err := openMonitor(cfg.Display, log)
	if err != nil {
		return err
	}
	defer m.Release()

	c, err := outputduplication.NewHeapCapturer(m, outputduplication.WithLogger(log))
	if err != nil {
		return err
	}
	defer c.Close()

	var (
		info      outputduplication.FrameInfo
		shapeInfo *outputduplication.PointerShapeInfo
	)
	for i := 0; ; i++ {
		info, shapeInfo, err = c.CaptureWithPointerShape(cfg.TimeoutMs)
		if err == nil {
			break
		}
		if !outputduplication.IsTimeout(err) || i+1 >= attempts {
			return err
		}
		log.Debug("no frame yet", zap.Int("attempt", i+1))
	}
	log.Info("captured frame",
		zap.Uint32("accumulatedFrames", info.AccumulatedFrames),
		zap.Bool("pointerVisible", info.PointerPosition.Visible != 0))

	desc := c.TextureDesc()
	if err := writeFrame(out, c.Buffer().Bytes(), int(desc.Width), int(desc.Height)); err != nil {
		return err
	}

	if pointerOut == "" {
		return nil
	}
	if shapeInfo == nil {
		log.Warn("pointer shape did not change during capture, nothing written", zap.String("file", pointerOut))
		return nil
	}
	log.Info("pointer shape",
		zap.Stringer("type", shapeInfo.Type),
		zap.Uint32("width", shapeInfo.Width),
		zap.Uint32("height", shapeInfo.Height),
		zap.Uint32("pitch", shapeInfo.Pitch))
	return os.WriteFile(pointerOut, c.PointerShapeBuffer(), 0o644)
}

// writeFrame stores a BGRA32 frame either as PNG or as raw bytes, depending
// on the file extension.
func writeFrame(path string, bgra []byte, width, height int) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return os.WriteFile(path, bgra[:width*height*4], 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, toRGBA(nil, bgra, width, height)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
