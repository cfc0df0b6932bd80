package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a display into a video file using ffmpeg",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		out, _ := cmd.Flags().GetString("out")
		ffmpeg, _ := cmd.Flags().GetString("ffmpeg")
		if out == "" {
			out = fmt.Sprintf("screen_%d.mp4", cfg.Display)
		}
		return captureScreenTranscode(cmd.Context(), cfg, ffmpeg, out, log)
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().Int("fps", 15, "Frames per second")
	recordCmd.Flags().StringP("out", "o", "", "Output file, defaults to screen_<display>.mp4")
	recordCmd.Flags().String("ffmpeg", "ffmpeg", "Path to the ffmpeg binary")
}

func captureScreenTranscode(ctx context.Context, cfg *Config, ffmpeg, filePath string, log *zap.Logger) error {
	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	setDPIAware(log)

	src := &heapSource{display: cfg.Display, timeoutMs: cfg.TimeoutMs, log: log}
	if err := src.open(); err != nil {
		return err
	}
	defer src.close()
	_, width, height := src.frame()

	transcoder, err := newVideotranscoder(ctx, ffmpeg, filePath, width, height, cfg.FPS)
	if err != nil {
		return err
	}
	defer func() {
		if err := transcoder.Close(); err != nil {
			log.Warn("ffmpeg exited", zap.Error(err))
		}
	}()

	limiter := newFrameLimiter(cfg.FPS)
	t1 := time.Now()
	numFrames := 0
	for {
		if time.Since(t1) >= time.Second {
			log.Debug("frames written", zap.Int("display", cfg.Display), zap.Int("frames", numFrames))
			t1 = time.Now()
			numFrames = 0
		}
		select {
		case <-ctx.Done():
			return nil
		default:
			limiter.Wait()
		}

		// frames without desktop updates repeat the last image to keep
		// the frame rate constant.
		if _, _, err := src.capture(); err != nil {
			return err
		}
		pix, w, h := src.frame()
		if pix == nil {
			continue
		}
		if w != width || h != height {
			return fmt.Errorf("resolution changed from %dx%d to %dx%d", width, height, w, h)
		}

		numFrames++
		if _, err := transcoder.Write(pix[:w*h*4]); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
	}
}

func ffmpegArgs(filePath string, width, height, fps int) []string {
	return []string{
		"-y",
		"-vsync", "0",
		"-f", "rawvideo",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-pixel_format", "bgra",
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-c:v", "libx264", "-preset", "ultrafast",
		"-crf", "26",
		"-tune", "zerolatency",
		filePath,
	}
}

type videotranscoder struct {
	cmd *exec.Cmd

	in io.WriteCloser
}

func newVideotranscoder(ctx context.Context, ffmpeg, filePath string, width, height, fps int) (*videotranscoder, error) {
	cmd := exec.CommandContext(ctx, ffmpeg, ffmpegArgs(filePath, width, height, fps)...)

	wc, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", ffmpeg, err)
	}
	return &videotranscoder{
		cmd: cmd,
		in:  wc,
	}, nil
}

func (v *videotranscoder) Write(buf []byte) (int, error) {
	return v.in.Write(buf)
}

func (v *videotranscoder) Close() error {
	v.in.Close()
	return v.cmd.Wait()
}
