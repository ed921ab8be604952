package streamer

import (
	"context"
	"encoding/base64"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/example/feedviewer/internal/config"
	"github.com/example/feedviewer/internal/logging"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	maxFPS    = 1000
)

// Server streams base64 JPEG frames to every client that connects to the
// feed path. Each client gets its own Source.
type Server struct {
	cfg       config.Config
	newSource func() Source
	upgrader  websocket.Upgrader
	log       *logging.Logger
}

func NewServer(cfg config.Config, newSource func() Source, log *logging.Logger) *Server {
	if cfg.SenderFPS <= 0 {
		cfg.SenderFPS = 30
	}
	if cfg.SenderFPS > maxFPS {
		cfg.SenderFPS = maxFPS
	}
	if log == nil {
		log = logging.Default()
	}
	return &Server{
		cfg:       cfg,
		newSource: newSource,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.SenderPath, s.handleWS)
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.SenderAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Infof("Frame sender listening on ws://%s%s at %d fps", s.cfg.SenderAddr, s.cfg.SenderPath, s.cfg.SenderFPS)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("Upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	s.log.Infof("Client connected: %s", r.RemoteAddr)

	// Inbound messages are discarded; the read loop only notices the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	src := s.newSource()
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-gone:
			s.log.Infof("Client disconnected: %s after %d frames", r.RemoteAddr, sent)
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		frame, err := src.Next()
		if err != nil {
			s.log.Errorf("Frame source: %v", err)
			return
		}
		payload := base64.StdEncoding.EncodeToString(frame)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
			s.log.Errorf("Write frame: %v", err)
			return
		}
		sent++
	}
}

func (s *Server) interval() time.Duration {
	return time.Second / time.Duration(s.cfg.SenderFPS)
}
