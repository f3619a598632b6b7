package picker

// ScrollEvent describes the strip position at the time of a scroll notification.
type ScrollEvent struct {
	Offset float64
}

// Touch is a pointer contact in host coordinates.
type Touch struct {
	X, Y int
}

// EventSink observes the picker. Every method is fire-and-forget.
type EventSink interface {
	// WillSelect fires before the scroll and highlight for index commit.
	WillSelect(index int)
	// DidSelect fires after the selected index changed to index.
	DidSelect(index int)
	DidScroll(ev ScrollEvent)
	DidScrollEnd(ev ScrollEvent)
	DidTouchBegin(touches []Touch)
	DidTouchEnd(touches []Touch)
}

// NopSink ignores every event. Embed it to implement only the callbacks you need.
type NopSink struct{}

func (NopSink) WillSelect(int)           {}
func (NopSink) DidSelect(int)            {}
func (NopSink) DidScroll(ScrollEvent)    {}
func (NopSink) DidScrollEnd(ScrollEvent) {}
func (NopSink) DidTouchBegin([]Touch)    {}
func (NopSink) DidTouchEnd([]Touch)      {}

// SinkFuncs is an EventSink built from independently settable callbacks.
// Nil callbacks are skipped.
type SinkFuncs struct {
	OnWillSelect    func(index int)
	OnDidSelect     func(index int)
	OnDidScroll     func(ev ScrollEvent)
	OnDidScrollEnd  func(ev ScrollEvent)
	OnDidTouchBegin func(touches []Touch)
	OnDidTouchEnd   func(touches []Touch)
}

func (s SinkFuncs) WillSelect(index int) {
	if s.OnWillSelect != nil {
		s.OnWillSelect(index)
	}
}

func (s SinkFuncs) DidSelect(index int) {
	if s.OnDidSelect != nil {
		s.OnDidSelect(index)
	}
}

func (s SinkFuncs) DidScroll(ev ScrollEvent) {
	if s.OnDidScroll != nil {
		s.OnDidScroll(ev)
	}
}

func (s SinkFuncs) DidScrollEnd(ev ScrollEvent) {
	if s.OnDidScrollEnd != nil {
		s.OnDidScrollEnd(ev)
	}
}

func (s SinkFuncs) DidTouchBegin(touches []Touch) {
	if s.OnDidTouchBegin != nil {
		s.OnDidTouchBegin(touches)
	}
}

func (s SinkFuncs) DidTouchEnd(touches []Touch) {
	if s.OnDidTouchEnd != nil {
		s.OnDidTouchEnd(touches)
	}
}

// MultiSink fans events out to every non-nil sink in order.
func MultiSink(sinks ...EventSink) EventSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multiSink []EventSink

func (m multiSink) WillSelect(index int) {
	for _, s := range m {
		s.WillSelect(index)
	}
}

func (m multiSink) DidSelect(index int) {
	for _, s := range m {
		s.DidSelect(index)
	}
}

func (m multiSink) DidScroll(ev ScrollEvent) {
	for _, s := range m {
		s.DidScroll(ev)
	}
}

func (m multiSink) DidScrollEnd(ev ScrollEvent) {
	for _, s := range m {
		s.DidScrollEnd(ev)
	}
}

func (m multiSink) DidTouchBegin(touches []Touch) {
	for _, s := range m {
		s.DidTouchBegin(touches)
	}
}

func (m multiSink) DidTouchEnd(touches []Touch) {
	for _, s := range m {
		s.DidTouchEnd(touches)
	}
}
