package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/hpicker/internal/picker"
)

// Animation tuning for programmatic scrolls.
const (
	// animationEase is the fraction of the remaining distance covered per frame.
	animationEase = 0.35
	// animationSnap is the distance in columns below which an animation lands.
	animationSnap = 0.5
)

// CellRenderer draws the cell at index into a block of width x height columns.
type CellRenderer func(index, width, height int) string

// Strip is a virtualized horizontal strip of equal-width cells measured in
// terminal columns. It implements picker.CellHost and picker.GeometryProvider.
//
// Rendered cells are cached per position: Rerender evicts only the positions it is
// given, and ApplyLayout evicts everything because cell widths change.
type Strip struct {
	// width is the viewport width in columns
	width int

	// height is the cell height in rows
	height int

	layout picker.Layout
	count  int

	// offset is the content column shown at the left edge of the viewport
	offset float64

	// target is where an animated scroll is heading
	target    float64
	animating bool

	cache          map[int][]string
	rerenderPasses int
}

// NewStrip creates an empty strip with no geometry.
func NewStrip() *Strip {
	return &Strip{cache: make(map[int][]string)}
}

// SetViewport records the measured viewport. Callers reload the engine afterwards
// so the layout follows.
func (s *Strip) SetViewport(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// ViewportSize implements picker.GeometryProvider.
func (s *Strip) ViewportSize() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// ApplyLayout implements picker.CellHost.
func (s *Strip) ApplyLayout(layout picker.Layout, count int) {
	s.layout = layout
	s.count = max(count, 0)
	clear(s.cache)
	s.offset = s.clampOffset(s.offset)
	s.target = s.clampOffset(s.target)
}

// ScrollOffset implements picker.CellHost.
func (s *Strip) ScrollOffset() float64 {
	return s.offset
}

// VisiblePositions implements picker.CellHost.
func (s *Strip) VisiblePositions() []int {
	if !s.layout.Ready() || s.count == 0 || s.width <= 0 {
		return nil
	}

	left := int(math.Floor(s.offset))
	first := int(math.Floor((float64(left) - s.layout.Inset) / s.layout.CellWidth))
	first = max(first-1, 0)

	var visible []int
	for i := first; i < s.count; i++ {
		start, end := s.cellSpan(i)
		if start >= left+s.width {
			break
		}
		if end > left && end > start {
			visible = append(visible, i)
		}
	}
	return visible
}

// ScrollTo implements picker.CellHost. The target offset centers the cell and is
// clamped to the scrollable range.
func (s *Strip) ScrollTo(index int, animated bool) {
	if !s.layout.Ready() || s.count == 0 {
		return
	}
	index = min(max(index, 0), s.count-1)
	target := s.clampOffset(s.layout.OffsetFor(index, float64(s.width)))

	if !animated || target == s.offset {
		s.offset = target
		s.target = target
		s.animating = false
		return
	}
	s.target = target
	s.animating = true
}

// Rerender implements picker.CellHost.
func (s *Strip) Rerender(positions []int) {
	for _, p := range positions {
		delete(s.cache, p)
	}
	s.rerenderPasses++
}

// RerenderPasses returns how many times Rerender has been called.
func (s *Strip) RerenderPasses() int {
	return s.rerenderPasses
}

// Cached reports whether the render of position is cached.
func (s *Strip) Cached(position int) bool {
	_, ok := s.cache[position]
	return ok
}

// DragBy moves the strip by delta columns as a user drag, cancelling any
// animation. It reports whether the offset changed.
func (s *Strip) DragBy(delta float64) bool {
	s.animating = false
	next := s.clampOffset(s.offset + delta)
	if next == s.offset {
		return false
	}
	s.offset = next
	s.target = next
	return true
}

// Animating reports whether an animated scroll is in progress.
func (s *Strip) Animating() bool {
	return s.animating
}

// Step advances an animated scroll by one frame and reports whether it continues.
func (s *Strip) Step() bool {
	if !s.animating {
		return false
	}
	s.offset += (s.target - s.offset) * animationEase
	if math.Abs(s.target-s.offset) < animationSnap {
		s.offset = s.target
		s.animating = false
	}
	return s.animating
}

// PositionAt returns the item under viewport column x.
func (s *Strip) PositionAt(x int) (int, bool) {
	if x < 0 || x >= s.width {
		return 0, false
	}
	col := int(math.Floor(s.offset)) + x
	for _, i := range s.VisiblePositions() {
		start, end := s.cellSpan(i)
		if col >= start && col < end {
			return i, true
		}
	}
	return 0, false
}

// CenterColumn returns the viewport column of the centering midpoint.
func (s *Strip) CenterColumn() int {
	return s.width / 2
}

// CellWidth returns the current cell width in columns.
func (s *Strip) CellWidth() float64 {
	return s.layout.CellWidth
}

// View draws the visible portion of the strip. Cells partially scrolled out of
// view are clipped; the inset regions are blank.
func (s *Strip) View(render CellRenderer) string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	left := int(math.Floor(s.offset))
	rows := make([]strings.Builder, s.height)
	x := 0
	pad := func(n int) {
		if n <= 0 {
			return
		}
		blank := strings.Repeat(" ", n)
		for r := range rows {
			rows[r].WriteString(blank)
		}
		x += n
	}

	for _, i := range s.VisiblePositions() {
		start, end := s.cellSpan(i)
		pad(min(start-(left+x), s.width-x))
		if x >= s.width {
			break
		}

		from := left + x - start
		to := min(end-start, left+s.width-start)
		if to <= from {
			continue
		}

		lines := s.cell(i, end-start, render)
		for r := range rows {
			rows[r].WriteString(ansi.Cut(lines[r], from, to))
		}
		x += to - from
	}
	pad(s.width - x)

	out := make([]string, len(rows))
	for r := range rows {
		out[r] = rows[r].String()
	}
	return strings.Join(out, "\n")
}

// cell returns the cached render of position i, rendering it on a miss. Lines are
// normalized to exactly width columns and height rows.
func (s *Strip) cell(i, width int, render CellRenderer) []string {
	if lines, ok := s.cache[i]; ok && len(lines) == s.height {
		return lines
	}

	raw := strings.Split(render(i, width, s.height), "\n")
	lines := make([]string, s.height)
	for r := range lines {
		line := ""
		if r < len(raw) {
			line = raw[r]
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		} else if w > width {
			line = ansi.Truncate(line, width, "")
		}
		lines[r] = line
	}
	s.cache[i] = lines
	return lines
}

// cellSpan returns the content columns [start, end) occupied by cell i.
func (s *Strip) cellSpan(i int) (int, int) {
	start := int(math.Floor(s.layout.CellStart(i)))
	end := int(math.Floor(s.layout.CellStart(i + 1)))
	return start, end
}

// clampOffset keeps offset within the scrollable range.
func (s *Strip) clampOffset(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return min(max(offset, 0), s.layout.MaxOffset(s.count, float64(s.width)))
}
