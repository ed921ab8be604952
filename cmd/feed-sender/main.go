package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/feedviewer/internal/config"
	"github.com/example/feedviewer/internal/logging"
	"github.com/example/feedviewer/internal/streamer"
)

func main() {
	cfg := config.DefaultConfig()
	var imagePath string

	flag.StringVar(&cfg.SenderAddr, "addr", cfg.SenderAddr, "Listen address")
	flag.IntVar(&cfg.SenderFPS, "fps", cfg.SenderFPS, "Frames per second")
	flag.IntVar(&cfg.FrameSize, "size", cfg.FrameSize, "Test pattern size in pixels")
	flag.StringVar(&imagePath, "image", "", "JPEG file to send instead of the test pattern")
	flag.Parse()

	newSource := func() streamer.Source {
		return streamer.NewTestPattern(cfg.FrameSize, cfg.JPEGQuality)
	}
	if imagePath != "" {
		src, err := streamer.LoadFile(imagePath)
		if err != nil {
			logging.Fatalf("%v", err)
		}
		newSource = func() streamer.Source { return src }
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := streamer.NewServer(cfg, newSource, logging.Default())
	if err := srv.Run(ctx); err != nil {
		logging.Errorf("Sender error: %v", err)
		os.Exit(1)
	}
}
