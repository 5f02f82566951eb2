package timeline

// BottomMarginPx reserves space above host-platform overlay controls at
// the reference pixel density, so the final resting frame never collides
// with them.
const BottomMarginPx = 75.0

// MapPosition converts normalized scroll progress into an absolute pixel
// position of the content column's top edge.
//
// The column starts parked entirely below the frame (y == viewportHeight).
// Content taller than the effective viewport stops early so its last line
// clears the bottom margin; short content scrolls its full distance since
// it can never reach the margin region. Geometry is supplied per call,
// which makes the same progress value produce proportionally identical
// framing at any output resolution.
func MapPosition(progress, viewportHeight, contentHeight float64) float64 {
	effectiveViewport := viewportHeight - BottomMarginPx
	totalScrollDistance := viewportHeight + contentHeight
	startPosition := viewportHeight

	maxScroll := totalScrollDistance
	if contentHeight > effectiveViewport {
		maxScroll = totalScrollDistance - effectiveViewport
	}

	position := startPosition - progress*maxScroll

	// Floating-point overshoot past progress=1 must not push the last line
	// out of view. Only tall content can reach the floor.
	if contentHeight > effectiveViewport {
		floor := -(contentHeight - effectiveViewport)
		if position < floor {
			position = floor
		}
	}
	return position
}
