package render

import (
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/text2video/internal/project"
)

// RenderEnding draws the ending card as a full-frame transparent overlay:
// title, subtitle and QR code stacked and centered.
func RenderEnding(e project.Ending, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	titleSize := float64(height) * 0.045
	subtitleSize := float64(height) * 0.028
	titleFace, err := NewBoldFace(titleSize)
	if err != nil {
		return nil, err
	}
	subtitleFace, err := NewFace(subtitleSize)
	if err != nil {
		return nil, err
	}

	var qrImg image.Image
	qrSize := height / 5
	if e.QRURL != "" {
		qr, err := qrcode.New(e.QRURL, qrcode.Medium)
		if err != nil {
			return nil, err
		}
		qrImg = qr.Image(qrSize)
	}

	// Вертикальная раскладка: считаем суммарную высоту блока и центрируем.
	gap := int(titleSize)
	blockHeight := 0
	if e.Title != "" {
		blockHeight += int(titleSize * 1.4)
	}
	if e.Subtitle != "" {
		blockHeight += gap/2 + int(subtitleSize*1.4)
	}
	if qrImg != nil {
		blockHeight += gap + qrSize
	}

	y := (height - blockHeight) / 2
	if y < 0 {
		y = 0
	}

	if e.Title != "" {
		y += int(titleSize * 1.4)
		drawCentered(img, titleFace, e.Title, textColor, width, y)
	}
	if e.Subtitle != "" {
		y += gap/2 + int(subtitleSize*1.4)
		drawCentered(img, subtitleFace, e.Subtitle, subtitleColor, width, y)
	}
	if qrImg != nil {
		y += gap
		offset := image.Pt((width-qrSize)/2, y)
		draw.Draw(img, qrImg.Bounds().Add(offset), qrImg, qrImg.Bounds().Min, draw.Over)
	}

	return img, nil
}

func drawCentered(dst *image.RGBA, face font.Face, text string, c color.Color, width, baseline int) {
	textWidth := font.MeasureString(face, text).Ceil()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P((width-textWidth)/2, baseline),
	}
	drawer.DrawString(text)
}
