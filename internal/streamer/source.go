package streamer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Source produces JPEG-encoded frames.
type Source interface {
	Next() ([]byte, error)
}

// TestPattern draws a moving gradient with a frame counter.
type TestPattern struct {
	size    int
	quality int
	n       int
}

func NewTestPattern(size, quality int) *TestPattern {
	if size < 32 {
		size = 32
	}
	return &TestPattern{size: size, quality: quality}
}

func (p *TestPattern) Next() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, p.size, p.size))
	shift := p.n * 4
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x + shift) * 255 / p.size),
				G: uint8(y * 255 / p.size),
				B: 160,
				A: 255,
			})
		}
	}

	label := fmt.Sprintf("frame %06d", p.n)
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	box := image.Rect(4, 4, 4+width+8, 4+face.Height+6)
	draw.Draw(img, box, image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(box.Min.X+4, box.Min.Y+face.Ascent+3),
	}
	d.DrawString(label)
	p.n++

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", p.n-1, err)
	}
	return buf.Bytes(), nil
}

// FileSource repeats the bytes of a single image file.
type FileSource struct {
	data []byte
}

func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("read image: %s is empty", path)
	}
	return &FileSource{data: data}, nil
}

func (f *FileSource) Next() ([]byte, error) {
	return f.data, nil
}
