package timeline

// TransitionSeconds is the fixed crossfade window between the scrolling
// content and the ending card. It does not scale with video length, so the
// perceived crossfade speed is the same for a 10-second and a 2-minute clip.
const TransitionSeconds = 0.5

// ScrollState describes the scroll animation at a single moment.
type ScrollState struct {
	Progress      float64 // 0..1 through the scrollable portion
	IsEnding      bool    // the ending card owns the frame
	OffsetPercent float64 // +100 (below frame) .. -100 (above frame)
}

// Opacity holds the crossfade weights of the two layers.
// Invariant: Content + Ending == 1 at all times.
type Opacity struct {
	Content float64
	Ending  float64
}

// ScrollAt computes the scroll state for a given moment.
//
// With an ending card enabled, scrolling finishes TransitionSeconds before
// the content ends: the last line must be settled and readable while the
// card fades in. Times past the total duration clamp to the final state
// rather than producing out-of-range values, so an overrun export frame is
// harmless.
func ScrollAt(currentTime, contentDuration float64, endingEnabled bool) ScrollState {
	st := ScrollState{}
	if contentDuration <= 0 {
		// Defensive guard; ComputeDuration already enforces a minimum.
		st.OffsetPercent = 100
		return st
	}

	scrollEnd := contentDuration
	if endingEnabled {
		scrollEnd = contentDuration - TransitionSeconds
	}

	if scrollEnd <= 0 {
		st.Progress = 1
	} else {
		st.Progress = clamp01(currentTime / scrollEnd)
	}
	st.IsEnding = endingEnabled && currentTime >= contentDuration
	st.OffsetPercent = (1 - 2*st.Progress) * 100
	return st
}

// BlendAt computes the crossfade opacities for a given moment. The window
// start boundary uses strict less-than: at exactly transitionStart the
// content is still fully opaque.
func BlendAt(currentTime, contentDuration float64, endingEnabled bool) Opacity {
	if !endingEnabled {
		return Opacity{Content: 1}
	}

	transitionStart := contentDuration - TransitionSeconds
	switch {
	case currentTime < transitionStart:
		return Opacity{Content: 1}
	case currentTime >= contentDuration:
		return Opacity{Ending: 1}
	default:
		t := (currentTime - transitionStart) / TransitionSeconds
		return Opacity{Content: 1 - t, Ending: t}
	}
}

// FrameState is the full derived state for one sampled moment. Both the
// interactive preview and the frame-stepped export sample exclusively
// through StateAt, with no per-driver configuration, so equal time values
// yield bit-identical state in either context.
type FrameState struct {
	Time   float64
	Scroll ScrollState
	Blend  Opacity
}

// StateAt samples the complete timeline state at currentTime.
func StateAt(currentTime float64, d Duration, endingEnabled bool) FrameState {
	return FrameState{
		Time:   currentTime,
		Scroll: ScrollAt(currentTime, d.Content, endingEnabled),
		Blend:  BlendAt(currentTime, d.Content, endingEnabled),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
