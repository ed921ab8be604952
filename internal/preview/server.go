// Package preview serves the hosting page over HTTP so the painted surface
// can be watched from a browser.
package preview

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/example/feedviewer/internal/logging"
	"github.com/example/feedviewer/internal/page"
)

type Server struct {
	addr      string
	doc       *page.Document
	alt       string
	refreshMs int
	log       *logging.Logger
}

func NewServer(addr string, doc *page.Document, alt string, refreshMs int, log *logging.Logger) *Server {
	if refreshMs <= 0 {
		refreshMs = 200
	}
	if log == nil {
		log = logging.Default()
	}
	return &Server{addr: addr, doc: doc, alt: alt, refreshMs: refreshMs, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveHTML)
	mux.HandleFunc("/frame", s.serveFrame)
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Infof("Preview listening on http://%s/", s.addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// src returns the current frame. Only data URIs written by the viewer are
// passed through.
func (s *Server) src() string {
	img := s.doc.Find(s.alt)
	if img == nil {
		return ""
	}
	src := img.Src()
	if !strings.HasPrefix(src, "data:image/jpeg;base64,") {
		return ""
	}
	return src
}

func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	src := s.src()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTmpl.Execute(w, pageData{
		Title:     s.doc.Title,
		Alt:       s.alt,
		Src:       template.URL(src),
		RefreshMs: s.refreshMs,
	})
	if err != nil {
		s.log.Errorf("Render page: %v", err)
	}
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(s.src()))
}
