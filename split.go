package rtree

// Splitter divides the entries of an overflowing node into two groups.
//
// Split returns two non-empty groups of indices into boxes. Every index
// appears in exactly one group. Each group holds at least minGroup indices,
// where minGroup is first clamped into [1, len(boxes)/2]. boxes must hold at
// least two rectangles.
type Splitter interface {
	Split(boxes []Rect, minGroup int) (a, b []int)
}

var (
	_ Splitter = QuadraticSplitter{}
	_ Splitter = RStarSplitter{}
)

func clampMinGroup(minGroup, n int) int {
	if minGroup < 1 {
		minGroup = 1
	}
	if 2*minGroup > n {
		minGroup = n / 2
	}
	return minGroup
}
