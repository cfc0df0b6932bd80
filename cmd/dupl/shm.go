package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/kbinani/screenshot"
	"github.com/kirides/duplication/outputduplication"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shmCmd = &cobra.Command{
	Use:   "shm",
	Short: "Share frames with other processes through named shared memory",
}

var shmServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Capture a display into a named shared memory segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.ShmName == "" {
			cfg.ShmName = "dupl-" + uuid.NewString()
		}
		return serveShared(cmd.Context(), cfg, log)
	},
}

var shmReadCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read one frame from a named shared memory segment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.ShmName == "" {
			return errors.New("--shm-name is required")
		}
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if width == 0 || height == 0 {
			bounds := screenshot.GetDisplayBounds(cfg.Display)
			width, height = bounds.Dx(), bounds.Dy()
		}
		return readShared(cfg.ShmName, args[0], width, height, log)
	},
}

func init() {
	rootCmd.AddCommand(shmCmd)
	shmCmd.AddCommand(shmServeCmd, shmReadCmd)

	shmCmd.PersistentFlags().String("shm-name", "", "Name of the shared memory segment")
	shmServeCmd.Flags().Int("fps", 15, "Frames per second")
	shmReadCmd.Flags().Int("width", 0, "Frame width, defaults to the display width")
	shmReadCmd.Flags().Int("height", 0, "Frame height, defaults to the display height")
}

func serveShared(ctx context.Context, cfg *Config, log *zap.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	setDPIAware(log)

	var (
		m *outputduplication.Monitor
		c *outputduplication.Capturer[*outputduplication.SharedBuffer]
	)
	release := func() {
		if c != nil {
			c.Close()
			c = nil
		}
		if m != nil {
			m.Release()
			m = nil
		}
	}
	defer release()

	limiter := newFrameLimiter(cfg.FPS)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			limiter.Wait()
		}

		if c == nil {
			var err error
			if m, err = openMonitor(cfg.Display, log); err != nil {
				return err
			}
			if c, err = outputduplication.CreateSharedCapturer(m, cfg.ShmName, outputduplication.WithLogger(log)); err != nil {
				return err
			}
			desc := c.TextureDesc()
			fmt.Printf("%s %dx%d %d\n", cfg.ShmName, desc.Width, desc.Height, c.Buffer().Len())
		}

		_, err := c.Capture(cfg.TimeoutMs)
		switch {
		case err == nil, outputduplication.IsTimeout(err):
		case outputduplication.IsAccessLost(err), errors.Is(err, outputduplication.ErrInvalidBufferLength):
			log.Info("duplication lost, recreating segment", zap.String("name", cfg.ShmName), zap.Error(err))
			release()
		default:
			return err
		}
	}
}

func readShared(name, out string, width, height int, log *zap.Logger) error {
	size := width * height * 4
	b, err := outputduplication.OpenSharedBuffer(name, size, outputduplication.WithLogger(log))
	if err != nil {
		return err
	}
	defer b.Close()

	return writeFrame(out, b.Bytes(), width, height)
}
