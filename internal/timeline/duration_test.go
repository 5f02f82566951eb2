package timeline

import (
	"math"
	"testing"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n\t  ", 0},
		{"hello", 1},
		{"hello   world\nfoo", 3},
		{"  a b\tc\nd  ", 4},
	}

	for _, c := range cases {
		if got := WordCount(c.text); got != c.want {
			t.Errorf("WordCount(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestComputeDurationEmptyText(t *testing.T) {
	// The empty-text floor is fixed and independent of the preset's rate.
	for _, mode := range []string{"slow", "normal", "fast", "veryfast", "no-such-preset"} {
		d, err := ComputeDuration("", mode, nil, false, 0)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if d.WordCount != 0 {
			t.Errorf("mode %s: expected word count 0, got %d", mode, d.WordCount)
		}
		if d.Content != EmptyTextSeconds {
			t.Errorf("mode %s: expected content %.0fs, got %f", mode, EmptyTextSeconds, d.Content)
		}
		if d.Total != EmptyTextSeconds {
			t.Errorf("mode %s: expected total %.0fs, got %f", mode, EmptyTextSeconds, d.Total)
		}
	}
}

func TestComputeDurationCustomClamp(t *testing.T) {
	custom := 2.0
	d, err := ComputeDuration("some short text", "custom", &custom, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Content != 3 {
		t.Errorf("expected content clamped to 3, got %f", d.Content)
	}
	// 3 words over 3 seconds is 60 WPM.
	if d.TargetWPM != 60 {
		t.Errorf("expected 60 WPM, got %d", d.TargetWPM)
	}
}

func TestComputeDurationCustomWithoutValue(t *testing.T) {
	if _, err := ComputeDuration("text", "custom", nil, false, 0); err == nil {
		t.Error("expected an explicit error for custom mode without a duration")
	}
}

func TestComputeDurationAutoCeiling(t *testing.T) {
	// 151 words at 150 WPM is 60.4s of nominal reading time; ceiling
	// rounding must give the viewer the full minute plus one second.
	words := make([]byte, 0, 151*2)
	for i := 0; i < 151; i++ {
		words = append(words, 'w', ' ')
	}
	d, err := ComputeDuration(string(words), "normal", nil, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.WordCount != 151 {
		t.Fatalf("expected 151 words, got %d", d.WordCount)
	}
	want := math.Ceil(151.0 / 150.0 * 60)
	if d.Content != want {
		t.Errorf("expected content %f, got %f", want, d.Content)
	}
}

func TestComputeDurationUnknownPresetFallback(t *testing.T) {
	d, err := ComputeDuration("one two three", "turbo-9000", nil, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TargetWPM != DefaultRate {
		t.Errorf("expected fallback rate %d, got %d", DefaultRate, d.TargetWPM)
	}
}

func TestComputeDurationEndingInvariant(t *testing.T) {
	d, err := ComputeDuration("hello world", "normal", nil, true, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Ending != 5 {
		t.Errorf("expected ending 5s, got %f", d.Ending)
	}
	if d.Total != d.Content+d.Ending {
		t.Errorf("total %f != content %f + ending %f", d.Total, d.Content, d.Ending)
	}

	d, _ = ComputeDuration("hello world", "normal", nil, false, 5)
	if d.Ending != 0 {
		t.Errorf("ending disabled must zero the ending duration, got %f", d.Ending)
	}
}

func TestComputeDurationDeterministic(t *testing.T) {
	custom := 42.5
	a, errA := ComputeDuration("the same text", "custom", &custom, true, 4)
	b, errB := ComputeDuration("the same text", "custom", &custom, true, 4)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("identical inputs produced different models: %+v vs %+v", a, b)
	}
}
