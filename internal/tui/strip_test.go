package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/hpicker/internal/picker"
)

// newTestStrip returns a 30-column strip of count 10-column cells with a 10-column
// inset, the paged layout for padding scale 1.
func newTestStrip(count int) *Strip {
	s := NewStrip()
	s.SetViewport(30, 1)
	s.ApplyLayout(picker.ComputeLayout(picker.PagedWithPadding, 1, 30, count), count)
	return s
}

func letterCells(index, width, _ int) string {
	return strings.Repeat(string(rune('a'+index)), width)
}

func TestStrip_VisiblePositions(t *testing.T) {
	s := newTestStrip(5)

	assert.Equal(t, []int{0, 1}, s.VisiblePositions())

	s.ScrollTo(2, false)
	assert.InDelta(t, 20.0, s.ScrollOffset(), 1e-9)
	assert.Equal(t, []int{1, 2, 3}, s.VisiblePositions())

	s.ScrollTo(4, false)
	assert.InDelta(t, 40.0, s.ScrollOffset(), 1e-9)
	assert.Equal(t, []int{3, 4}, s.VisiblePositions())
}

func TestStrip_NotReady(t *testing.T) {
	s := NewStrip()
	s.ApplyLayout(picker.Layout{}, 3)

	assert.Nil(t, s.VisiblePositions())
	s.ScrollTo(1, true)
	assert.False(t, s.Animating())
	assert.Empty(t, s.View(letterCells))
}

func TestStrip_ScrollToClamps(t *testing.T) {
	s := NewStrip()
	s.SetViewport(30, 1)
	s.ApplyLayout(picker.ComputeLayout(picker.ShowAll, 0, 30, 3), 3)

	s.ScrollTo(2, false)
	assert.Zero(t, s.ScrollOffset(), "show-all strips never scroll")

	s = newTestStrip(5)
	s.ScrollTo(99, false)
	assert.InDelta(t, 40.0, s.ScrollOffset(), 1e-9)
}

func TestStrip_AnimatedScroll(t *testing.T) {
	s := newTestStrip(5)

	s.ScrollTo(3, true)
	require.True(t, s.Animating())
	assert.Zero(t, s.ScrollOffset())

	frames := 0
	for s.Step() {
		frames++
		require.Less(t, frames, 100)
	}
	assert.False(t, s.Animating())
	assert.InDelta(t, 30.0, s.ScrollOffset(), 1e-9)
}

func TestStrip_DragBy(t *testing.T) {
	s := newTestStrip(5)

	assert.False(t, s.DragBy(-5), "already at the left edge")
	assert.True(t, s.DragBy(7))
	assert.InDelta(t, 7.0, s.ScrollOffset(), 1e-9)

	s.ScrollTo(4, true)
	require.True(t, s.Animating())
	s.DragBy(1)
	assert.False(t, s.Animating(), "a drag cancels the animation")

	assert.True(t, s.DragBy(1000))
	assert.InDelta(t, 40.0, s.ScrollOffset(), 1e-9)
}

func TestStrip_RerenderEvictsOnlyGivenPositions(t *testing.T) {
	s := newTestStrip(5)
	calls := map[int]int{}
	render := func(i, w, h int) string {
		calls[i]++
		return letterCells(i, w, h)
	}

	s.View(render)
	s.View(render)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, calls)

	s.Rerender([]int{1})
	assert.True(t, s.Cached(0))
	assert.False(t, s.Cached(1))
	assert.Equal(t, 1, s.RerenderPasses())

	s.View(render)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, calls)

	s.ApplyLayout(picker.ComputeLayout(picker.PagedWithPadding, 1, 30, 5), 5)
	assert.False(t, s.Cached(0), "a layout pass drops every cached cell")
}

func TestStrip_View(t *testing.T) {
	s := newTestStrip(5)

	assert.Equal(t, strings.Repeat(" ", 10)+strings.Repeat("a", 10)+strings.Repeat("b", 10), s.View(letterCells))

	s.DragBy(15)
	want := strings.Repeat("a", 5) + strings.Repeat("b", 10) + strings.Repeat("c", 10) + strings.Repeat("d", 5)
	assert.Equal(t, want, s.View(letterCells))

	s.ScrollTo(4, false)
	assert.Equal(t, strings.Repeat("d", 10)+strings.Repeat("e", 10)+strings.Repeat(" ", 10), s.View(letterCells))
}

func TestStrip_ViewNormalizesCells(t *testing.T) {
	s := NewStrip()
	s.SetViewport(20, 2)
	s.ApplyLayout(picker.ComputeLayout(picker.ShowAll, 0, 20, 2), 2)

	out := s.View(func(i, _, _ int) string {
		return fmt.Sprintf("item-%d-with-a-long-label", i)
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
	assert.Equal(t, "item-0-wit"+"item-1-wit", lines[0])
	assert.Equal(t, strings.Repeat(" ", 20), lines[1])
}

func TestStrip_PositionAt(t *testing.T) {
	s := newTestStrip(5)

	_, ok := s.PositionAt(5)
	assert.False(t, ok, "inset is not a cell")

	idx, ok := s.PositionAt(10)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = s.PositionAt(29)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = s.PositionAt(30)
	assert.False(t, ok)
	_, ok = s.PositionAt(-1)
	assert.False(t, ok)
}

func TestStrip_FractionalCellsTileExactly(t *testing.T) {
	s := NewStrip()
	s.SetViewport(80, 1)
	s.ApplyLayout(picker.ComputeLayout(picker.ShowAll, 0, 80, 7), 7)

	out := s.View(letterCells)
	assert.Equal(t, 80, ansi.StringWidth(out))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.VisiblePositions())
	for i := range 7 {
		assert.Contains(t, out, string(rune('a'+i)))
	}
}
