package picker

import "math"

// ResolveCenter maps a scroll offset to the index of the cell under the viewport's
// horizontal midpoint:
//
//	centerX = offset + viewportWidth/2 - inset
//	index   = clamp(ceil(centerX / cellWidth) - 1, 0, count-1)
//
// It returns false when nothing can be resolved: no items, or degenerate geometry
// that would divide by zero.
func ResolveCenter(offset, viewportWidth float64, layout Layout, count int) (int, bool) {
	if count <= 0 || !layout.Ready() {
		return 0, false
	}
	if math.IsNaN(offset) || math.IsNaN(viewportWidth) {
		return 0, false
	}

	centerX := offset + viewportWidth/2 - layout.Inset
	cells := math.Ceil(centerX / layout.CellWidth)

	// Clamp in float space first so huge offsets cannot overflow int.
	cells = math.Min(math.Max(cells, 1), float64(count))
	return int(cells) - 1, true
}
