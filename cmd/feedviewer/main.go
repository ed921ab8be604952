package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/feedviewer/internal/config"
	"github.com/example/feedviewer/internal/feed"
	"github.com/example/feedviewer/internal/logging"
	"github.com/example/feedviewer/internal/page"
	"github.com/example/feedviewer/internal/preview"
	"github.com/example/feedviewer/internal/websocket"
)

func main() {
	cfg := config.DefaultConfig()

	flag.StringVar(&cfg.FeedURL, "url", cfg.FeedURL, "Video feed WebSocket URL")
	flag.StringVar(&cfg.Origin, "origin", cfg.Origin, "Origin header sent on the handshake")
	flag.StringVar(&cfg.SurfaceAlt, "alt", cfg.SurfaceAlt, "Alt text of the image element to paint")
	flag.StringVar(&cfg.PreviewAddr, "http", cfg.PreviewAddr, "Preview page listen address (empty disables)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc := newDocument(cfg)

	if cfg.PreviewAddr != "" {
		pv := preview.NewServer(cfg.PreviewAddr, doc, cfg.SurfaceAlt, cfg.RefreshMs, logging.Default())
		go func() {
			if err := pv.Run(ctx); err != nil {
				logging.Errorf("Preview server error: %v", err)
			}
		}()
	}

	logging.Infof("Connecting to %s", cfg.FeedURL)
	v := feed.New(cfg, doc, websocket.Dialer(cfg.Origin))
	v.Start(ctx)

	if err := v.Wait(); err != nil {
		os.Exit(1)
	}
}

// newDocument hosts a single image named by the configured alt text.
func newDocument(cfg config.Config) *page.Document {
	return page.NewDocument("Live Feed Viewer", page.NewImage(cfg.SurfaceAlt))
}
