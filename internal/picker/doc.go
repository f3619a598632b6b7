// Package picker implements the selection and scroll coordination engine behind a
// horizontally scrolling item picker.
//
// The Engine owns the selected index, the centering algorithm, a single
// supersedable pending selection request and the decision of which cells must be
// re-rendered after a selection change. Everything visual is delegated to
// collaborators described by small capability interfaces:
//   - ItemSource (plus the optional ViewSource, TitleSource and BackgroundSource)
//     supplies the item count and per-item content
//   - CellHost lays out fixed-width cells, scrolls and re-renders positions
//   - GeometryProvider reports the viewport size
//   - EventSink observes selection, scroll and touch events
//   - Scheduler defers work to the next iteration of the host's event loop
//
// The Engine is not safe for concurrent use. All calls are expected to come from
// the single goroutine that drives the host UI loop.
package picker
