package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/kbinani/screenshot"
	"github.com/kirides/duplication/outputduplication"
	"github.com/mattn/go-mjpeg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Serve every display as MJPEG over HTTP",
	Long: `Serve every display as MJPEG over HTTP. Open /watch?screen=N in a
browser, the raw streams are available at /mjpegN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		return runStream(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().Int("fps", 15, "Frames per second")
	streamCmd.Flags().Int("quality", 75, "JPEG quality")
	streamCmd.Flags().Uint("scale-width", 0, "Scale frames to this width, 0 keeps the aspect ratio")
	streamCmd.Flags().Uint("scale-height", 0, "Scale frames to this height, 0 keeps the aspect ratio")
	streamCmd.Flags().String("addr", "127.0.0.1:8023", "HTTP listen address")
	streamCmd.Flags().String("backend", backendDXGI, "Capture backend, dxgi or gdi")
}

func runStream(ctx context.Context, cfg *Config, log *zap.Logger) error {
	n, err := displayCount(cfg.Backend, log)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no active displays")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", watchHandler(n))

	for i := 0; i < n; i++ {
		log.Info("registering stream", zap.Int("display", i), zap.String("backend", cfg.Backend))
		stream := mjpeg.NewStream()
		defer stream.Close()

		switch cfg.Backend {
		case backendGDI:
			go streamDisplayGDI(ctx, i, cfg, stream, log)
		default:
			go streamDisplayDXGI(ctx, i, cfg, stream, log)
		}
		mux.Handle(fmt.Sprintf("/mjpeg%d", i), stream)
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Info("listening", zap.String("addr", "http://"+cfg.Addr+"/watch"))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// displayCount returns the number of displays the backend can capture. DXGI
// and GDI may disagree, e.g. for outputs that cannot be duplicated.
func displayCount(backend string, log *zap.Logger) (int, error) {
	if backend == backendGDI {
		return screenshot.NumActiveDisplays(), nil
	}
	monitors, err := outputduplication.Scan(outputduplication.WithLogger(log))
	if err != nil {
		return 0, err
	}
	for _, m := range monitors {
		m.Release()
	}
	return len(monitors), nil
}

// permanentCaptureError reports errors retrying cannot fix.
func permanentCaptureError(err error) bool {
	return errors.Is(err, outputduplication.ErrNoOutput) || errors.Is(err, errors.ErrUnsupported)
}

func watchHandler(n int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screen := r.URL.Query().Get("screen")
		if screen == "" {
			screen = "0"
		}
		screenNo, err := strconv.Atoi(screen)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if screenNo >= n || screenNo < 0 {
			screenNo = 0
		}

		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<head>
		<meta charset="UTF-8">
		<meta http-equiv="X-UA-Compatible" content="IE=edge">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title> Screen ` + strconv.Itoa(screenNo) + `</title>
	</head>
		<body style="margin:0">
	<img src="/mjpeg` + strconv.Itoa(screenNo) + `" style="max-width: 100vw; max-height: 100vh;object-fit: contain;display: block;margin: 0 auto;" />
</body>`))
	}
}

// Capture using IDXGIOutputDuplication
//
//	https://docs.microsoft.com/en-us/windows/win32/api/dxgi1_2/nn-dxgi1_2-idxgioutputduplication
func streamDisplayDXGI(ctx context.Context, n int, cfg *Config, out *mjpeg.Stream, log *zap.Logger) {
	// Keep this thread, so windows/d3d11/dxgi can use their threadlocal caches, if any
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	setDPIAware(log)

	src := &heapSource{display: n, timeoutMs: cfg.TimeoutMs, log: log}
	defer src.close()

	buf := &bufferFlusher{}
	limiter := newFrameLimiter(cfg.FPS)
	var img *image.RGBA

	for {
		select {
		case <-ctx.Done():
			return
		default:
			limiter.Wait()
		}

		info, ok, err := src.capture()
		if permanentCaptureError(err) {
			log.Error("stopping stream", zap.Int("display", n), zap.Error(err))
			return
		}
		if err != nil {
			log.Warn("capture failed", zap.Int("display", n), zap.Error(err))
			continue
		}
		if !ok || !info.DesktopUpdated() {
			// don't update
			continue
		}

		pix, width, height := src.frame()
		img = toRGBA(img, pix, width, height)
		if err := encodeFrame(buf, img, cfg); err != nil {
			log.Warn("encoding frame failed", zap.Int("display", n), zap.Error(err))
			continue
		}
		out.Update(buf.Bytes())
	}
}

// Capture using "github.com/kbinani/screenshot" (GDI BitBlt on windows)
func streamDisplayGDI(ctx context.Context, n int, cfg *Config, out *mjpeg.Stream, log *zap.Logger) {
	buf := &bufferFlusher{}
	limiter := newFrameLimiter(cfg.FPS)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			limiter.Wait()
		}

		img, err := screenshot.CaptureDisplay(n)
		if err != nil {
			log.Warn("CaptureDisplay failed", zap.Int("display", n), zap.Error(err))
			continue
		}
		if err := encodeFrame(buf, img, cfg); err != nil {
			log.Warn("encoding frame failed", zap.Int("display", n), zap.Error(err))
			continue
		}
		out.Update(buf.Bytes())
	}
}
