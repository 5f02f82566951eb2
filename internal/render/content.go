package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Цветовая схема. Фон заливается при сборке кадра, слои рисуются поверх
// на прозрачном, чтобы кроссфейд смешивал их честно.
var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 22, A: 255}
	textColor       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	subtitleColor   = color.RGBA{R: 170, G: 170, B: 180, A: 255}
)

// Content is the fully laid-out scroll column: one tall transparent image
// holding the entire text at the target viewport width.
type Content struct {
	Image  *image.RGBA
	Height int // pixel height of the column
}

// RenderContent renders the full column once per resolution. Font metrics
// scale with viewport height, so the column keeps its proportions at any
// output size.
func RenderContent(text string, viewportWidth, viewportHeight int) (*Content, error) {
	fontSize := float64(viewportHeight) * 0.032
	face, err := NewFace(fontSize)
	if err != nil {
		return nil, err
	}

	margin := viewportWidth / 10
	lines := Wrap(text, face, viewportWidth-2*margin)

	lineHeight := int(fontSize * 1.6)
	height := lineHeight * len(lines)
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, viewportWidth, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		if line == "" {
			continue
		}
		drawer.Dot = fixed.P(margin, i*lineHeight+ascent)
		drawer.DrawString(line)
	}

	return &Content{Image: img, Height: height}, nil
}
