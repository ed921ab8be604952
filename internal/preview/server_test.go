package preview

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/feedviewer/internal/logging"
	"github.com/example/feedviewer/internal/page"
)

func newTestServer() (*Server, *page.ImageElement) {
	img := page.NewImage("Live Feed")
	doc := page.NewDocument("Live Feed Viewer", img)
	return NewServer("127.0.0.1:0", doc, "Live Feed", 100, logging.New(&bytes.Buffer{})), img
}

func TestServeHTMLIncludesSurface(t *testing.T) {
	srv, img := newTestServer()
	img.SetSrc("data:image/jpeg;base64,abcd1234")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `alt="Live Feed"`) {
		t.Errorf("page has no Live Feed image:\n%s", body)
	}
	if !strings.Contains(body, `src="data:image/jpeg;base64,abcd1234"`) {
		t.Errorf("page does not carry current frame:\n%s", body)
	}
}

func TestServeHTMLDropsForeignSrc(t *testing.T) {
	srv, img := newTestServer()
	img.SetSrc("javascript:alert(1)")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if strings.Contains(rec.Body.String(), "javascript:") {
		t.Error("untrusted src rendered")
	}
}

func TestServeFrame(t *testing.T) {
	srv, img := newTestServer()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/frame", nil))
	if rec.Body.Len() != 0 {
		t.Errorf("body before first frame = %q", rec.Body.String())
	}

	img.SetSrc("data:image/jpeg;base64,P3")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/frame", nil))
	if got := rec.Body.String(); got != "data:image/jpeg;base64,P3" {
		t.Errorf("frame = %q", got)
	}
}

func TestUnknownPath(t *testing.T) {
	srv, _ := newTestServer()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))
	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeFrameDropsForeignSrc(t *testing.T) {
	srv, img := newTestServer()
	img.SetSrc("javascript:alert(1)")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/frame", nil))
	if got := rec.Body.String(); got != "" {
		t.Errorf("frame = %q, want empty", got)
	}
}

func TestCustomAlt(t *testing.T) {
	img := page.NewImage("Camera")
	doc := page.NewDocument("viewer", img)
	srv := NewServer("127.0.0.1:0", doc, "Camera", 100, logging.New(&bytes.Buffer{}))
	img.SetSrc("data:image/jpeg;base64,P1")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `alt="Camera"`) || !strings.Contains(body, `src="data:image/jpeg;base64,P1"`) {
		t.Errorf("page does not show Camera frame:\n%s", body)
	}
}
