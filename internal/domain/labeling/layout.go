package labeling

// PixelsPerMM is the fixed scale factor between physical label size and
// the pixel space elements are positioned in.
const PixelsPerMM = 4

// MinBoundsPx is the smallest usable canvas dimension. Very small labels
// still get a workable canvas.
const MinBoundsPx = 20

// Bounds is the printable area of a single label in pixel space
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundsForLabel derives pixel bounds from a physical label size in mm
func BoundsForLabel(widthMM, heightMM int) Bounds {
	return Bounds{
		Width:  scalePx(widthMM),
		Height: scalePx(heightMM),
	}
}

func scalePx(mm int) int {
	px := mm * PixelsPerMM
	if px < MinBoundsPx {
		return MinBoundsPx
	}
	return px
}

// Clamp constrains v into [lo, hi]. When the range is inverted because an
// element is larger than the label, the element is pinned to lo.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
