package timeline

import "testing"

// TestDriverParity drives the shared sampling entry the way both real
// drivers do — a strictly monotonic frame-stepped export pass and an
// interactive pass that jumps around the same instants out of order — and
// requires bit-identical state for every shared time value.
func TestDriverParity(t *testing.T) {
	d, err := ComputeDuration("the quick brown fox jumps over the lazy dog", "custom", ptr(12), true, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const fps = 30
	frames := int(d.Total*fps) + 3 // a few overrun frames on purpose

	exportStates := make([]FrameState, frames)
	for i := 0; i < frames; i++ {
		exportStates[i] = StateAt(float64(i)/fps, d, true)
	}

	// Interactive sampling: same instants, scrubbed in a non-monotonic
	// order, interleaved with unrelated seeks that must not leak state.
	order := make([]int, 0, frames)
	for i := frames - 1; i >= 0; i-- {
		order = append(order, i)
	}
	for i := 0; i < frames; i += 7 {
		order = append(order, i)
	}

	for _, i := range order {
		_ = StateAt(999.9, d, true) // random seek between samples
		got := StateAt(float64(i)/fps, d, true)
		if got != exportStates[i] {
			t.Fatalf("frame %d: interactive state %+v != export state %+v", i, got, exportStates[i])
		}
	}
}

func ptr(v float64) *float64 { return &v }
