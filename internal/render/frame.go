package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/timeline"
)

// FrameRenderer composes output frames of one resolution from sampled
// timeline state. The expensive work (layout, QR, glyph rasterization)
// happens once in the constructor; per-frame composition only shifts and
// blends the prepared layers.
type FrameRenderer struct {
	width, height int
	content       *Content
	ending        *image.RGBA
}

func NewFrameRenderer(p project.Project, width, height int) (*FrameRenderer, error) {
	content, err := RenderContent(p.Text, width, height)
	if err != nil {
		return nil, err
	}

	r := &FrameRenderer{width: width, height: height, content: content}

	if p.Ending.Enabled {
		r.ending, err = RenderEnding(p.Ending, width, height)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Content exposes the prepared scroll column (for the preview driver).
func (r *FrameRenderer) Content() *Content { return r.content }

// Ending exposes the prepared ending card, nil when disabled.
func (r *FrameRenderer) Ending() *image.RGBA { return r.ending }

// Background is the constant frame background color.
func (r *FrameRenderer) Background() color.RGBA { return backgroundColor }

// ContentY maps a scroll progress value to the pixel offset of the column's
// top edge inside the frame.
func (r *FrameRenderer) ContentY(progress float64) float64 {
	return timeline.MapPosition(progress, float64(r.height), float64(r.content.Height))
}

// Draw composes the frame for one sampled state into dst, overwriting it
// completely. dst must be a width x height RGBA buffer (pooled buffers
// arrive dirty).
func (r *FrameRenderer) Draw(st timeline.FrameState, dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	if st.Blend.Content > 0 {
		offset := image.Pt(0, int(math.Round(r.ContentY(st.Scroll.Progress))))
		drawLayer(dst, r.content.Image, offset, st.Blend.Content)
	}
	if st.Blend.Ending > 0 && r.ending != nil {
		drawLayer(dst, r.ending, image.Point{}, st.Blend.Ending)
	}
}

func drawLayer(dst, src *image.RGBA, offset image.Point, opacity float64) {
	rect := src.Bounds().Add(offset)
	if opacity >= 1 {
		draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
		return
	}

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})
	draw.DrawMask(dst, rect, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}
