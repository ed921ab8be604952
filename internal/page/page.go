// Package page models the hosting page the viewer paints into: a flat list
// of image elements identified by their alt text.
package page

import (
	"sync"

	"github.com/example/feedviewer/internal/feed"
)

type ImageElement struct {
	Alt string

	mu  sync.RWMutex
	src string
}

func NewImage(alt string) *ImageElement {
	return &ImageElement{Alt: alt}
}

func (e *ImageElement) SetSrc(src string) {
	e.mu.Lock()
	e.src = src
	e.mu.Unlock()
}

func (e *ImageElement) Src() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.src
}

type Document struct {
	Title  string
	Images []*ImageElement
}

func NewDocument(title string, images ...*ImageElement) *Document {
	return &Document{Title: title, Images: images}
}

// Find returns the first image whose alt text equals alt, or nil.
func (d *Document) Find(alt string) *ImageElement {
	for _, img := range d.Images {
		if img.Alt == alt {
			return img
		}
	}
	return nil
}

// QueryImageByAlt is Find for the viewer. It returns an untyped nil when no
// element matches so the viewer's absence check holds.
func (d *Document) QueryImageByAlt(alt string) feed.Surface {
	if img := d.Find(alt); img != nil {
		return img
	}
	return nil
}
