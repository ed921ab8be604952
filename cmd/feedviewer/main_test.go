package main

import (
	"testing"

	"github.com/example/feedviewer/internal/config"
)

func TestNewDocumentUsesConfiguredAlt(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SurfaceAlt = "Camera"

	doc := newDocument(cfg)
	s := doc.QueryImageByAlt(cfg.SurfaceAlt)
	if s == nil {
		t.Fatal("no surface for alt Camera")
	}
	s.SetSrc("data:image/jpeg;base64,abcd1234")
	if got := doc.Find("Camera").Src(); got != "data:image/jpeg;base64,abcd1234" {
		t.Errorf("src = %q", got)
	}
}

func TestNewDocumentDefaultAlt(t *testing.T) {
	doc := newDocument(config.DefaultConfig())
	if doc.QueryImageByAlt("Live Feed") == nil {
		t.Error("no surface for default alt")
	}
}
