package timeline

import (
	"fmt"
	"math"
	"strings"
)

// PresetRates maps pacing preset names to reading rates in words per minute.
// The table is a fixed constant set; unknown names fall back to DefaultRate.
var PresetRates = map[string]int{
	"slow":     110,
	"normal":   150,
	"fast":     190,
	"veryfast": 240,
}

const (
	// DefaultRate is used when a pacing preset name is not recognized.
	DefaultRate = 150

	// MinContentSeconds is the hard floor for content duration in any mode.
	MinContentSeconds = 3.0

	// MinAutoSeconds is the floor for auto-computed duration of non-empty text.
	MinAutoSeconds = 5.0

	// EmptyTextSeconds is the fixed duration when there is no text at all,
	// independent of the preset rate. Keeps the video from degenerating to
	// zero length.
	EmptyTextSeconds = 10.0
)

// Duration is the computed duration model for one project state.
// Invariant: Total == Content + Ending, Ending == 0 unless the ending card
// is enabled, Content >= MinContentSeconds.
type Duration struct {
	WordCount int
	TargetWPM int
	Content   float64
	Ending    float64
	Total     float64
}

// WordCount counts whitespace-delimited non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ComputeDuration derives the duration model from text and pacing settings.
//
// In custom mode customSeconds is required; passing nil is a reported error,
// never a silent fallback to preset math. In auto mode the preset's reading
// rate converts word count to seconds with ceiling rounding, so the viewer
// always gets at least the nominal reading time.
//
// The function is pure and total for every other input combination:
// identical inputs always produce identical output, which is what keeps the
// interactive preview and the frame-stepped export in agreement.
func ComputeDuration(text, mode string, customSeconds *float64, endingEnabled bool, endingSeconds float64) (Duration, error) {
	d := Duration{WordCount: WordCount(text)}

	if mode == "custom" {
		if customSeconds == nil {
			return Duration{}, fmt.Errorf("custom pacing requires an explicit duration")
		}
		d.Content = math.Max(MinContentSeconds, *customSeconds)
		if d.WordCount > 0 {
			d.TargetWPM = int(math.Round(float64(d.WordCount) / d.Content * 60))
		}
	} else {
		rate, ok := PresetRates[mode]
		if !ok {
			rate = DefaultRate
		}
		d.TargetWPM = rate
		if d.WordCount > 0 {
			d.Content = math.Max(MinAutoSeconds, math.Ceil(float64(d.WordCount)/float64(rate)*60))
		} else {
			d.Content = EmptyTextSeconds
		}
	}

	if endingEnabled {
		d.Ending = endingSeconds
	}
	d.Total = d.Content + d.Ending
	return d, nil
}
