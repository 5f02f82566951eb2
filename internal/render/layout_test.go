package render

import (
	"image"
	"testing"

	"golang.org/x/image/font"

	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/timeline"
)

func TestWrapFitsWidth(t *testing.T) {
	face, err := NewFace(32)
	if err != nil {
		t.Fatalf("face: %v", err)
	}

	maxWidth := 400
	lines := Wrap("съешь же ещё этих мягких французских булок да выпей чаю", face, maxWidth)

	if len(lines) < 2 {
		t.Fatalf("expected the sentence to wrap, got %d line(s)", len(lines))
	}
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > maxWidth {
			t.Errorf("line %q is %dpx wide, exceeds %d", line, w, maxWidth)
		}
	}
}

func TestWrapKeepsParagraphBreaks(t *testing.T) {
	face, err := NewFace(24)
	if err != nil {
		t.Fatalf("face: %v", err)
	}

	lines := Wrap("один\n\nдва", face, 1000)
	want := []string{"один", "", "два"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderContentEmptyText(t *testing.T) {
	content, err := RenderContent("", 720, 1280)
	if err != nil {
		t.Fatalf("RenderContent: %v", err)
	}
	if content.Height < 1 {
		t.Errorf("content height must stay positive, got %d", content.Height)
	}
}

func TestFrameRendererDeterministic(t *testing.T) {
	p := project.New().
		WithText("Кадры должны совпадать бит в бит").
		WithEnding(project.Ending{Enabled: true, Seconds: 4, Title: "Конец", QRURL: "https://example.com"})

	r, err := NewFrameRenderer(p, 360, 640)
	if err != nil {
		t.Fatalf("NewFrameRenderer: %v", err)
	}

	d, err := p.Duration()
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}

	// Sample inside the crossfade where both layers blend.
	st := timeline.StateAt(d.Content-0.25, d, true)

	a := image.NewRGBA(image.Rect(0, 0, 360, 640))
	b := image.NewRGBA(image.Rect(0, 0, 360, 640))
	r.Draw(st, a)
	r.Draw(st, b)

	if len(a.Pix) != len(b.Pix) {
		t.Fatal("buffer size mismatch")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel data diverged at byte %d", i)
		}
	}
}
