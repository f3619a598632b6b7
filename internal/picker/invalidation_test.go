package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidationSet(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		current    int
		hasCurrent bool
		next       int
		visible    []int
		want       []int
	}{
		{name: "show all change", mode: ShowAll, current: 1, hasCurrent: true, next: 3, visible: []int{0, 1, 2, 3, 4}, want: []int{1, 3}},
		{name: "show all unchanged", mode: ShowAll, current: 2, hasCurrent: true, next: 2, visible: []int{0, 1, 2}, want: []int{2}},
		{name: "show all first selection", mode: ShowAll, next: 0, visible: []int{0, 1}, want: []int{0}},
		{name: "paged uses visible set", mode: PagedWithPadding, current: 4, hasCurrent: true, next: 5, visible: []int{3, 4, 5, 6}, want: []int{3, 4, 5, 6}},
		{name: "paged adds off-screen ends", mode: PagedWithPadding, current: 0, hasCurrent: true, next: 40, visible: []int{0, 1}, want: []int{0, 1, 40}},
		{name: "paged empty visible set", mode: PagedWithPadding, next: 2, want: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invalidationSet(tt.mode, tt.current, tt.hasCurrent, tt.next, tt.visible)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestWithinCount(t *testing.T) {
	assert.Equal(t, []int{0, 2}, withinCount([]int{-1, 0, 2, 5}, 3))
	assert.Empty(t, withinCount([]int{4, 5}, 3))
}
