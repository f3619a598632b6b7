package picker

import "math"

// Mode selects how cells are sized against the viewport.
type Mode int

const (
	// PagedWithPadding sizes cells from the padding scale so neighbors peek in at
	// the viewport edges.
	PagedWithPadding Mode = iota
	// ShowAll lays out every item at once, filling the viewport exactly.
	ShowAll
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ShowAll:
		return "show-all"
	case PagedWithPadding:
		return "paged"
	default:
		return "unknown"
	}
}

// Layout is the cell geometry derived from the viewport, item count and mode.
type Layout struct {
	// CellWidth is the uniform width of every cell.
	CellWidth float64
	// Inset is the blank space before the first and after the last cell.
	Inset float64
}

// ComputeLayout derives cell geometry.
//
// ShowAll divides the viewport evenly between count cells with no inset.
// PagedWithPadding uses viewportWidth / (2*paddingScale + 1), never narrower than
// viewportWidth / count, and insets the strip so the first and last cells can be
// centered. A non-positive viewport or an empty ShowAll strip yields the zero
// Layout, which is not Ready.
func ComputeLayout(mode Mode, paddingScale, viewportWidth float64, count int) Layout {
	if viewportWidth <= 0 || math.IsNaN(viewportWidth) || math.IsInf(viewportWidth, 0) {
		return Layout{}
	}

	if mode == ShowAll {
		if count <= 0 {
			return Layout{}
		}
		return Layout{CellWidth: viewportWidth / float64(count)}
	}

	if paddingScale < 0 || math.IsNaN(paddingScale) {
		paddingScale = 0
	}
	cellWidth := viewportWidth / (2*paddingScale + 1)
	if count > 0 {
		cellWidth = math.Max(cellWidth, viewportWidth/float64(count))
	}

	return Layout{
		CellWidth: cellWidth,
		Inset:     math.Max((viewportWidth-cellWidth)/2, 0),
	}
}

// Ready reports whether the geometry can place and resolve cells.
func (l Layout) Ready() bool {
	return l.CellWidth > 0 && !math.IsInf(l.CellWidth, 0)
}

// Extent returns the total scrollable content width for count cells.
func (l Layout) Extent(count int) float64 {
	if count <= 0 {
		return 2 * l.Inset
	}
	return 2*l.Inset + float64(count)*l.CellWidth
}

// CellStart returns the content offset of the leading edge of cell index.
func (l Layout) CellStart(index int) float64 {
	return l.Inset + float64(index)*l.CellWidth
}

// OffsetFor returns the unclamped scroll offset that centers cell index in a
// viewport of the given width.
func (l Layout) OffsetFor(index int, viewportWidth float64) float64 {
	return l.CellStart(index) + l.CellWidth/2 - viewportWidth/2
}

// MaxOffset returns the largest scroll offset for count cells.
func (l Layout) MaxOffset(count int, viewportWidth float64) float64 {
	return math.Max(l.Extent(count)-viewportWidth, 0)
}
