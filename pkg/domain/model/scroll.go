package model

// Viewport describes the container hosting a rendered timeline, in pixels
type Viewport struct {
	// RenderedWidth is the full width of the drawn timeline
	RenderedWidth float64
	// ViewportWidth is the visible width of the container
	ViewportWidth float64
	// ScrollWidth is the scrollable width; RenderedWidth is used when zero
	ScrollWidth float64
}

// IsMeasured reports whether the container has been laid out
func (v Viewport) IsMeasured() bool {
	return v.RenderedWidth > 0 && v.ViewportWidth > 0
}

// ScrollLeft returns the horizontal scroll offset that centers the today
// marker, clamped to the scrollable range.
func ScrollLeft(markerPercent float64, v Viewport) float64 {
	scrollWidth := v.ScrollWidth
	if scrollWidth <= 0 {
		scrollWidth = v.RenderedWidth
	}

	maxScroll := max(0, scrollWidth-v.ViewportWidth)
	target := markerPercent/100*v.RenderedWidth - v.ViewportWidth/2

	switch {
	case target < 0:
		return 0
	case target > maxScroll:
		return maxScroll
	default:
		return target
	}
}
