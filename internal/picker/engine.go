package picker

import (
	"math"

	"github.com/rs/zerolog"
)

// noIndex marks an absent selection and the "none" pending request.
const noIndex = -1

// DefaultPaddingScale matches the classic picker look: roughly a third of a cell of
// each neighbor is visible at either edge.
const DefaultPaddingScale = 0.8

// Request is a selection that has been asked for but may not have been applied.
type Request struct {
	Index   int
	Animate bool
}

// noRequest is the sentinel for "nothing pending".
var noRequest = Request{Index: noIndex} //nolint:gochecknoglobals // Immutable sentinel value.

func (r Request) active() bool { return r.Index != noIndex }

// Options configures an Engine.
type Options struct {
	// PaddingScale controls how much of each neighbor shows in paged mode.
	PaddingScale float64
	// ShowAllItems lays every item out at once instead of paging.
	ShowAllItems bool
	// AllowSelectionWhileScrolling re-centers the selection on every scroll
	// notification during a drag instead of only when scrolling ends.
	AllowSelectionWhileScrolling bool
	// NotifyUnchanged fires WillSelect/DidSelect even when the selected index
	// is assigned its current value.
	NotifyUnchanged bool
	// AutoSelectFirst selects index 0 on the first non-empty reload when nothing
	// was requested. Deprecated: kept for hosts that relied on the older
	// behavior; new hosts should request a selection explicitly.
	AutoSelectFirst bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{PaddingScale: DefaultPaddingScale}
}

// Mode returns the layout mode selected by the options.
func (o Options) Mode() Mode {
	if o.ShowAllItems {
		return ShowAll
	}
	return PagedWithPadding
}

// Engine coordinates selection state with a CellHost.
type Engine struct {
	host      CellHost
	geometry  GeometryProvider
	source    ItemSource
	sink      EventSink
	scheduler Scheduler
	logger    zerolog.Logger
	opts      Options

	itemCount      int
	selected       int
	pending        Request
	layout         Layout
	retryScheduled bool
	autoSelected   bool
}

// NewEngine creates an Engine driving host. geometry reports the viewport; pass nil
// when the host implements GeometryProvider itself.
func NewEngine(host CellHost, geometry GeometryProvider, opts Options) *Engine {
	if geometry == nil {
		geometry, _ = host.(GeometryProvider)
	}
	if opts.PaddingScale < 0 || math.IsNaN(opts.PaddingScale) {
		opts.PaddingScale = 0
	}
	return &Engine{
		host:      host,
		geometry:  geometry,
		sink:      NopSink{},
		scheduler: inlineScheduler{},
		logger:    zerolog.Nop(),
		opts:      opts,
		selected:  noIndex,
		pending:   noRequest,
	}
}

// SetSource attaches the item source and reloads.
func (e *Engine) SetSource(src ItemSource) {
	e.source = src
	e.ReloadData()
}

// SetEventSink replaces the observer. A nil sink silences events.
func (e *Engine) SetEventSink(sink EventSink) {
	if sink == nil {
		sink = NopSink{}
	}
	e.sink = sink
}

// SetScheduler sets where deferred retries run. A nil scheduler runs them inline.
func (e *Engine) SetScheduler(s Scheduler) {
	if s == nil {
		s = inlineScheduler{}
	}
	e.scheduler = s
}

// SetLogger sets the engine's logger.
func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

// SetPaddingScale changes the paged padding scale and reloads.
func (e *Engine) SetPaddingScale(scale float64) {
	if scale < 0 || math.IsNaN(scale) {
		scale = 0
	}
	e.opts.PaddingScale = scale
	e.ReloadData()
}

// SetShowAllItems switches between ShowAll and paged layout and reloads.
func (e *Engine) SetShowAllItems(showAll bool) {
	e.opts.ShowAllItems = showAll
	e.ReloadData()
}

// SetScrollTracking toggles AllowSelectionWhileScrolling.
func (e *Engine) SetScrollTracking(enabled bool) {
	e.opts.AllowSelectionWhileScrolling = enabled
}

// Options returns the current options.
func (e *Engine) Options() Options { return e.opts }

// ItemCount returns the count cached by the last reload.
func (e *Engine) ItemCount() int { return e.itemCount }

// Layout returns the geometry computed by the last layout pass.
func (e *Engine) Layout() Layout { return e.layout }

// Selected returns the selected index, if any.
func (e *Engine) Selected() (int, bool) {
	if e.selected == noIndex {
		return 0, false
	}
	return e.selected, true
}

// Pending returns the selection request that is still waiting to be applied.
func (e *Engine) Pending() (Request, bool) {
	return e.pending, e.pending.active()
}

// ReloadData re-reads the item count, recomputes the layout and reconciles the
// selection with it.
//
// With no items the selection is cleared silently. Otherwise an existing selection
// is scrolled back into place without animation, and any pending request is retried
// on the next iteration of the host loop, once the host has committed its geometry.
func (e *Engine) ReloadData() {
	count := 0
	if e.source != nil {
		count = max(e.source.Count(), 0)
	}
	e.itemCount = count
	e.relayout()

	if count == 0 {
		if e.selected != noIndex {
			e.logger.Debug().Int("previous", e.selected).Msg("selection cleared: no items")
		}
		e.selected = noIndex
		return
	}

	if e.selected >= count {
		e.logger.Debug().
			Int("previous", e.selected).
			Int("count", count).
			Msg("selection clamped to shrunken item count")
		e.sink.WillSelect(count - 1)
		e.setSelected(count - 1)
		e.host.Rerender([]int{count - 1})
	}

	if e.opts.AutoSelectFirst && !e.autoSelected && e.selected == noIndex && !e.pending.active() {
		e.autoSelected = true
		e.pending = Request{Index: 0}
	}

	if e.selected != noIndex {
		e.host.ScrollTo(e.selected, false)
	}

	if e.pending.active() {
		e.scheduleRetry()
	}
}

// SelectItem asks for index to become the selection. The request replaces any
// earlier pending one and is applied immediately when index is in range and the
// layout is ready; otherwise it stays pending and is retried after the next reload.
// It reports whether the selection was applied now.
func (e *Engine) SelectItem(index int, animate bool) bool {
	if e.pending.active() && e.pending.Index != index {
		e.logger.Debug().
			Int("superseded", e.pending.Index).
			Int("index", index).
			Msg("pending selection replaced")
	}
	e.pending = Request{Index: index, Animate: animate}
	return e.applyPending()
}

// HandleScroll processes a user-driven scroll notification. With scroll tracking
// on, the selection follows the centered cell continuously.
func (e *Engine) HandleScroll(ev ScrollEvent) {
	e.sink.DidScroll(ev)
	if !e.opts.AllowSelectionWhileScrolling {
		return
	}

	index, ok := e.resolve(ev.Offset)
	if !ok || index == e.selected {
		return
	}

	set := e.visibleSet(index)
	e.pending = noRequest
	e.sink.WillSelect(index)
	e.setSelected(index)
	e.logger.Debug().Int("index", index).Str("origin", "scroll").Msg("selection committed")
	e.host.Rerender(set)
}

// HandleDragEnd processes the end of a drag. When the strip will keep moving the
// selection is settled later by HandleDecelerationEnd.
func (e *Engine) HandleDragEnd(willDecelerate bool) {
	if willDecelerate {
		return
	}
	e.scrollEnded()
}

// HandleDecelerationEnd processes the strip coming to rest after a fling.
func (e *Engine) HandleDecelerationEnd() {
	e.scrollEnded()
}

// HandleTouchBegin forwards touches to the sink.
func (e *Engine) HandleTouchBegin(touches []Touch) {
	e.sink.DidTouchBegin(touches)
}

// HandleTouchEnd forwards touches to the sink.
func (e *Engine) HandleTouchEnd(touches []Touch) {
	e.sink.DidTouchEnd(touches)
}

// scrollEnded resolves the centered cell once scrolling stops, snaps it to the
// exact center and re-renders what is on screen.
func (e *Engine) scrollEnded() {
	offset := e.host.ScrollOffset()
	e.sink.DidScrollEnd(ScrollEvent{Offset: offset})

	index, ok := e.resolve(offset)
	if !ok {
		return
	}

	set := e.visibleSet(index)
	e.pending = noRequest
	if e.shouldNotify(index) {
		e.sink.WillSelect(index)
	}
	e.host.ScrollTo(index, true)
	e.setSelected(index)
	e.logger.Debug().Int("index", index).Str("origin", "scroll-end").Msg("selection committed")
	e.host.Rerender(set)
}

// applyPending commits the pending request if it can be honored now.
func (e *Engine) applyPending() bool {
	req := e.pending
	if !req.active() {
		return false
	}
	if req.Index < 0 || req.Index >= e.itemCount {
		e.logger.Debug().
			Int("index", req.Index).
			Int("count", e.itemCount).
			Msg("selection deferred: index out of range")
		return false
	}
	if !e.layout.Ready() {
		e.logger.Debug().Int("index", req.Index).Msg("selection deferred: layout not ready")
		return false
	}

	// Cleared before committing so a sink that selects again from a callback
	// is not overwritten.
	e.pending = noRequest

	set := invalidationSet(e.opts.Mode(), e.selected, e.selected != noIndex, req.Index, e.host.VisiblePositions())
	if e.shouldNotify(req.Index) {
		e.sink.WillSelect(req.Index)
	}
	e.host.ScrollTo(req.Index, req.Animate)
	e.setSelected(req.Index)
	e.logger.Debug().
		Int("index", req.Index).
		Bool("animate", req.Animate).
		Str("origin", "select").
		Msg("selection committed")
	e.host.Rerender(withinCount(set, e.itemCount))
	return true
}

// scheduleRetry defers one pending-selection retry. At most one is outstanding.
func (e *Engine) scheduleRetry() {
	if e.retryScheduled {
		return
	}
	e.retryScheduled = true
	e.logger.Debug().Int("index", e.pending.Index).Msg("pending selection retry scheduled")
	e.scheduler.Defer(e.retryPending)
}

func (e *Engine) retryPending() {
	e.retryScheduled = false
	e.applyPending()
}

// relayout recomputes cell geometry and hands it to the host.
func (e *Engine) relayout() {
	width := 0.0
	if e.geometry != nil {
		width, _ = e.geometry.ViewportSize()
	}
	e.layout = ComputeLayout(e.opts.Mode(), e.opts.PaddingScale, width, e.itemCount)
	if e.itemCount > 0 && !e.layout.Ready() {
		e.logger.Debug().Float64("viewport_width", width).Msg("layout not ready: degenerate geometry")
	}
	e.host.ApplyLayout(e.layout, e.itemCount)
}

// resolve runs centering resolution against the current geometry.
func (e *Engine) resolve(offset float64) (int, bool) {
	width := 0.0
	if e.geometry != nil {
		width, _ = e.geometry.ViewportSize()
	}
	return ResolveCenter(offset, width, e.layout, e.itemCount)
}

// visibleSet is the re-render set for scroll-driven changes: everything on screen
// plus the old and new selection.
func (e *Engine) visibleSet(next int) []int {
	set := invalidationSet(PagedWithPadding, e.selected, e.selected != noIndex, next, e.host.VisiblePositions())
	return withinCount(set, e.itemCount)
}

func (e *Engine) shouldNotify(index int) bool {
	return e.opts.NotifyUnchanged || e.selected != index
}

// setSelected is the only place the selection changes to a present value. It fires
// DidSelect when the value changed, or always under NotifyUnchanged.
func (e *Engine) setSelected(index int) {
	notify := e.shouldNotify(index)
	e.selected = index
	if notify {
		e.sink.DidSelect(index)
	}
}
