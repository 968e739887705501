package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/ruuda/luculentus/pkg/render"
	"github.com/ruuda/luculentus/pkg/scene"
	"github.com/ruuda/luculentus/pkg/viewer"
)

// Image size stays compiled-in, grounded on
// original_source/Raytracer.h's imageWidth/imageHeight constants.
const (
	imageWidth  = 1280
	imageHeight = 720
)

// Config holds the command-line configuration, grounded on the teacher's
// main.go Config struct / parseFlags shape.
type Config struct {
	Addr       string
	Workers    int
	CPUProfile string
}

func main() {
	config := parseFlags()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	workers := config.Workers
	if workers <= 0 {
		workers = max(1, runtime.NumCPU()-1)
	}

	demoScene := scene.NewSunflowerScene()
	scheduler := render.NewScheduler(demoScene, workers, imageWidth, imageHeight, time.Now().UnixNano())

	adapter := newZerologAdapter(logger)
	logger.Info().Str("runId", scheduler.RunID.String()).Int("width", imageWidth).Int("height", imageHeight).Msg("starting render")

	httpViewer := viewer.NewHTTPViewer(scheduler.RunID)
	pool := render.NewWorkerPool(scheduler, workers, adapter, func(t *render.TonemapUnit) {
		if err := httpViewer.Display(imageWidth, imageHeight, t.RGB()); err != nil {
			logger.Error().Err(err).Msg("viewer display failed, dropping frame")
		}
	})

	server := &http.Server{Addr: config.Addr, Handler: httpViewer.Handler()}
	go func() {
		logger.Info().Str("addr", config.Addr).Msg("viewer listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("viewer server stopped")
		}
	}()

	pool.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")
	pool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("viewer server shutdown error")
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.Addr, "addr", ":8080", "viewer HTTP listen address")
	flag.IntVar(&config.Workers, "workers", 0, "number of parallel render workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "write CPU profile to file")
	help := flag.BoolP("help", "h", false, "show help information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}

	return config
}

func showHelp() {
	fmt.Println("luculentus: a progressive spectral path tracer")
	fmt.Println()
	fmt.Println("Usage: luculentus [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Connect to the viewer address to watch the render progress,")
	fmt.Println("e.g. http://localhost:8080/stream for the live SSE feed.")
}
