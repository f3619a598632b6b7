package picker

import "slices"

// invalidationSet returns the positions to re-render when the selection moves from
// current to next.
//
// In ShowAll mode every item is on screen and only highlight state changes, so just
// the old and new positions are refreshed. In paged mode the visible set is
// refreshed because neighbors scroll in and out of view; the old and new positions
// are always included so highlighting never ends up on zero or two cells.
func invalidationSet(mode Mode, current int, hasCurrent bool, next int, visible []int) []int {
	if mode == ShowAll {
		if !hasCurrent || current == next {
			return []int{next}
		}
		return []int{current, next}
	}

	set := make([]int, 0, len(visible)+2)
	set = append(set, visible...)
	set = append(set, next)
	if hasCurrent {
		set = append(set, current)
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// withinCount drops positions outside [0, count).
func withinCount(positions []int, count int) []int {
	return slices.DeleteFunc(positions, func(p int) bool {
		return p < 0 || p >= count
	})
}
