package picker

// GeometryProvider reports the viewport measured by the host framework.
// Sizes are in host units (terminal columns for the bundled TUI host).
type GeometryProvider interface {
	ViewportSize() (width, height float64)
}

// CellHost is a virtualized, horizontally scrolling strip of equal-width cells.
//
// The host must not call back into the Engine from inside any of these methods;
// completion of a scroll is reported later through the Engine's Handle* methods.
// A host may hold a plain reference to its Engine for forwarding, but must not
// outlive it.
type CellHost interface {
	// ApplyLayout re-measures the strip for count cells of the given geometry.
	ApplyLayout(layout Layout, count int)
	// ScrollOffset returns the current horizontal content offset.
	ScrollOffset() float64
	// VisiblePositions returns the item positions currently on screen.
	VisiblePositions() []int
	// ScrollTo centers the cell at index, optionally animated.
	ScrollTo(index int, animated bool)
	// Rerender refreshes the given positions in place without re-measuring.
	Rerender(positions []int)
}

// Scheduler runs fn on a later iteration of the host event loop.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Defer calls f(fn).
func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// inlineScheduler runs deferred work immediately. It is the fallback when no host
// loop has been attached.
type inlineScheduler struct{}

func (inlineScheduler) Defer(fn func()) { fn() }
