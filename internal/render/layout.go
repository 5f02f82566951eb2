// Package render rasterizes frames from the shared timeline state. It
// consumes the state as-is and contains no timing math of its own: that is
// what keeps the interactive preview and the export pass visually congruent.
package render

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFace returns the body text face at the given pixel size.
func NewFace(pixelSize float64) (font.Face, error) {
	return newFace(goregular.TTF, pixelSize)
}

// NewBoldFace returns the title face at the given pixel size.
func NewBoldFace(pixelSize float64) (font.Face, error) {
	return newFace(gobold.TTF, pixelSize)
}

func newFace(ttf []byte, pixelSize float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    pixelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Wrap breaks text into lines that fit maxWidth when drawn with face.
// Explicit newlines are preserved as paragraph breaks; an empty paragraph
// becomes an empty line, keeping the author's vertical rhythm.
func Wrap(text string, face font.Face, maxWidth int) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}

	return lines
}
