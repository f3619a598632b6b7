package picker

import (
	"fmt"
	"slices"
)

// fakeHost is a CellHost and GeometryProvider that records every command.
type fakeHost struct {
	log *[]string

	width, height float64
	offset        float64
	layout        Layout
	count         int

	// visible overrides the computed visible set when non-nil.
	visible []int

	scrolls   []scrollCall
	rerenders [][]int
	layouts   int
}

type scrollCall struct {
	Index    int
	Animated bool
}

func newFakeHost(log *[]string, width float64) *fakeHost {
	return &fakeHost{log: log, width: width, height: 3}
}

func (h *fakeHost) ViewportSize() (float64, float64) { return h.width, h.height }

func (h *fakeHost) ApplyLayout(layout Layout, count int) {
	h.layout = layout
	h.count = count
	h.layouts++
	*h.log = append(*h.log, "layout")
}

func (h *fakeHost) ScrollOffset() float64 { return h.offset }

func (h *fakeHost) VisiblePositions() []int {
	if h.visible != nil {
		return slices.Clone(h.visible)
	}
	if !h.layout.Ready() || h.count == 0 {
		return nil
	}
	var out []int
	for i := range h.count {
		start := h.layout.CellStart(i)
		if start+h.layout.CellWidth > h.offset && start < h.offset+h.width {
			out = append(out, i)
		}
	}
	return out
}

func (h *fakeHost) ScrollTo(index int, animated bool) {
	h.scrolls = append(h.scrolls, scrollCall{Index: index, Animated: animated})
	if h.layout.Ready() {
		off := h.layout.OffsetFor(index, h.width)
		h.offset = min(max(off, 0), h.layout.MaxOffset(h.count, h.width))
	}
	*h.log = append(*h.log, fmt.Sprintf("scroll:%d:%t", index, animated))
}

func (h *fakeHost) Rerender(positions []int) {
	h.rerenders = append(h.rerenders, slices.Clone(positions))
	*h.log = append(*h.log, fmt.Sprintf("rerender:%v", positions))
}

func (h *fakeHost) lastRerender() []int {
	if len(h.rerenders) == 0 {
		return nil
	}
	return h.rerenders[len(h.rerenders)-1]
}

// recordingSink records every event, sharing the host's ordered log.
type recordingSink struct {
	log *[]string

	willSelect  []int
	didSelect   []int
	scrolls     []ScrollEvent
	scrollEnds  []ScrollEvent
	touchBegins [][]Touch
	touchEnds   [][]Touch
}

func (s *recordingSink) WillSelect(index int) {
	s.willSelect = append(s.willSelect, index)
	*s.log = append(*s.log, fmt.Sprintf("will:%d", index))
}

func (s *recordingSink) DidSelect(index int) {
	s.didSelect = append(s.didSelect, index)
	*s.log = append(*s.log, fmt.Sprintf("did:%d", index))
}

func (s *recordingSink) DidScroll(ev ScrollEvent) { s.scrolls = append(s.scrolls, ev) }

func (s *recordingSink) DidScrollEnd(ev ScrollEvent) { s.scrollEnds = append(s.scrollEnds, ev) }

func (s *recordingSink) DidTouchBegin(t []Touch) { s.touchBegins = append(s.touchBegins, t) }

func (s *recordingSink) DidTouchEnd(t []Touch) { s.touchEnds = append(s.touchEnds, t) }

// manualScheduler holds deferred work until Flush simulates the next loop turn.
type manualScheduler struct {
	queue []func()
}

func (s *manualScheduler) Defer(fn func()) { s.queue = append(s.queue, fn) }

func (s *manualScheduler) Flush() int {
	queue := s.queue
	s.queue = nil
	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// countSource is an ItemSource with a mutable count.
type countSource struct {
	n int
}

func (c *countSource) Count() int { return c.n }

func (c *countSource) TitleAt(index int) string { return fmt.Sprintf("Page %d", index+1) }

type harness struct {
	log    []string
	host   *fakeHost
	sink   *recordingSink
	sched  *manualScheduler
	source *countSource
	engine *Engine
}

// newHarness builds an engine with count items on a viewport of width, without
// reloading yet.
func newHarness(width float64, count int, opts Options) *harness {
	h := &harness{}
	h.host = newFakeHost(&h.log, width)
	h.sink = &recordingSink{log: &h.log}
	h.sched = &manualScheduler{}
	h.source = &countSource{n: count}
	h.engine = NewEngine(h.host, nil, opts)
	h.engine.SetEventSink(h.sink)
	h.engine.SetScheduler(h.sched)
	return h
}

// attach sets the source (which reloads) and runs the deferred retry.
func (h *harness) attach() {
	h.engine.SetSource(h.source)
	h.sched.Flush()
}

func (h *harness) resetLog() {
	h.log = h.log[:0]
}
