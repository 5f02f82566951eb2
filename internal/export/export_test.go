package export

import (
	"context"
	"image"
	"testing"

	"github.com/ivlev/text2video/internal/config"
	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/system"
)

func TestFrameTimes(t *testing.T) {
	times := FrameTimes(2.0, 30)

	if len(times) != 60 {
		t.Fatalf("expected 60 frames, got %d", len(times))
	}
	if times[0] != 0 {
		t.Errorf("first frame must sample t=0, got %f", times[0])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Fatalf("times must be strictly monotonic, broke at %d", i)
		}
	}
	if times[30] != 1.0 {
		t.Errorf("frame 30 at 30 FPS must sample t=1.0, got %f", times[30])
	}
}

func TestFrameTimesNeverEmpty(t *testing.T) {
	if len(FrameTimes(0, 30)) != 1 {
		t.Error("a degenerate duration must still produce one frame")
	}
}

// collectEncoder drains the frame channel in place of ffmpeg.
type collectEncoder struct {
	frames int
}

func (c *collectEncoder) EncodeStream(ctx context.Context, frames <-chan *image.RGBA, params config.EncodeParams) error {
	for range frames {
		c.frames++
	}
	return nil
}

func TestRunDeliversEveryFrame(t *testing.T) {
	custom := 3.0
	p := project.New().
		WithText("короткий тестовый текст").
		WithPacing(project.Pacing{Mode: "custom", CustomSeconds: &custom})

	enc := &collectEncoder{}
	ex := &Exporter{
		Project: p,
		Config: &config.Config{
			Width:        120,
			Height:       200,
			FPS:          10,
			Workers:      3,
			VideoEncoder: "libx264",
			Quality:      23,
		},
		Encoder: enc,
		Pool:    system.NewFramePool(120, 200),
	}

	if err := ex.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if enc.frames != 30 {
		t.Errorf("expected 30 encoded frames for 3s @ 10 FPS, got %d", enc.frames)
	}
}
