package project

import (
	"path/filepath"
	"testing"
)

func TestUpdatesReturnNewValues(t *testing.T) {
	base := New()

	custom := 30.0
	updated := base.
		WithText("hello world").
		WithPacing(Pacing{Mode: "custom", CustomSeconds: &custom}).
		WithEnding(Ending{Enabled: true, Seconds: 4, Title: "Подписывайтесь"}).
		WithAudio(Audio{Path: "track.mp3"})

	if base.Text != "" || base.Pacing.Mode != "normal" || base.Ending.Enabled || base.Audio.Attached() {
		t.Errorf("base project was mutated: %+v", base)
	}
	if updated.Text != "hello world" || updated.Pacing.Mode != "custom" || !updated.Ending.Enabled {
		t.Errorf("updates were lost: %+v", updated)
	}
}

func TestDuration(t *testing.T) {
	p := New().WithText("one two three four five").WithEnding(Ending{Enabled: true, Seconds: 5})

	d, err := p.Duration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.WordCount != 5 {
		t.Errorf("expected 5 words, got %d", d.WordCount)
	}
	if d.Ending != 5 {
		t.Errorf("expected a 5s ending, got %f", d.Ending)
	}
	if d.Total != d.Content+d.Ending {
		t.Errorf("total invariant broken: %+v", d)
	}
}

func TestDurationCustomWithoutValue(t *testing.T) {
	p := New().WithText("text").WithPacing(Pacing{Mode: "custom"})
	if _, err := p.Duration(); err == nil {
		t.Error("custom pacing without a duration must be a reported error")
	}
}

func TestWriteRead(t *testing.T) {
	custom := 45.0
	p := New().
		WithText("строка один\nстрока два").
		WithPacing(Pacing{Mode: "custom", CustomSeconds: &custom}).
		WithEnding(Ending{Enabled: true, Seconds: 6, Title: "Спасибо", QRURL: "https://example.com"})

	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := Write(p, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.Text != p.Text {
		t.Errorf("text mismatch: %q vs %q", got.Text, p.Text)
	}
	if got.Pacing.Mode != "custom" || got.Pacing.CustomSeconds == nil || *got.Pacing.CustomSeconds != custom {
		t.Errorf("pacing mismatch: %+v", got.Pacing)
	}
	if got.Ending != p.Ending {
		t.Errorf("ending mismatch: %+v vs %+v", got.Ending, p.Ending)
	}
}
