package rtree

import (
	"cmp"
	"slices"
)

// Axis identifies a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

func lower(bb Rect, axis Axis) float64 {
	if axis == AxisX {
		return bb.MinX
	}
	return bb.MinY
}

func upper(bb Rect, axis Axis) float64 {
	if axis == AxisX {
		return bb.MaxX
	}
	return bb.MaxY
}

// RStarSplitter is the R*-tree split. It picks the axis along which the
// candidate distributions have the smallest total margin, then the
// distribution along that axis with the least overlap between the two groups.
//
// Distributions that would cut between two entries sharing the same sort key
// are skipped whenever the axis has any other distribution. For point data
// this guarantees the first coordinate of the second group is strictly
// greater than every coordinate of the first group.
type RStarSplitter struct{}

// Split implements Splitter.
func (RStarSplitter) Split(boxes []Rect, minGroup int) (a, b []int) {
	sp := chooseSplit(boxes, minGroup)
	return slices.Clone(sp.order[:sp.k]), slices.Clone(sp.order[sp.k:])
}

// rstarSplit is a chosen distribution: the entries order[:k] form the first
// group and order[k:] the second. coord is the lower coordinate along axis of
// the first entry of the second group.
type rstarSplit struct {
	axis  Axis
	order []int
	k     int
	coord float64
}

// sortedBoxes is one sort order of the boxes along an axis, along with the
// bounding boxes of every prefix and suffix of that order.
type sortedBoxes struct {
	order  []int
	keys   []float64
	prefix []Rect // prefix[i] bounds order[:i+1]
	suffix []Rect // suffix[i] bounds order[i:]
}

// clean reports whether a distribution at k separates distinct sort keys.
func (s sortedBoxes) clean(k int) bool {
	return s.keys[k-1] < s.keys[k]
}

func sortBoxes(boxes []Rect, key func(Rect) float64) sortedBoxes {
	n := len(boxes)
	s := sortedBoxes{
		order:  make([]int, n),
		keys:   make([]float64, n),
		prefix: make([]Rect, n),
		suffix: make([]Rect, n),
	}
	for i := range s.order {
		s.order[i] = i
	}
	slices.SortStableFunc(s.order, func(i, j int) int {
		return cmp.Compare(key(boxes[i]), key(boxes[j]))
	})
	for i, j := range s.order {
		s.keys[i] = key(boxes[j])
	}

	s.prefix[0] = boxes[s.order[0]]
	for i := 1; i < n; i++ {
		s.prefix[i] = combine(s.prefix[i-1], boxes[s.order[i]])
	}
	s.suffix[n-1] = boxes[s.order[n-1]]
	for i := n - 2; i >= 0; i-- {
		s.suffix[i] = combine(s.suffix[i+1], boxes[s.order[i]])
	}
	return s
}

type axisCandidate struct {
	axis      Axis
	sorts     [2]sortedBoxes
	marginSum float64
	clean     bool
}

func evaluateAxis(boxes []Rect, axis Axis, minGroup int) axisCandidate {
	c := axisCandidate{
		axis: axis,
		sorts: [2]sortedBoxes{
			sortBoxes(boxes, func(bb Rect) float64 { return lower(bb, axis) }),
			sortBoxes(boxes, func(bb Rect) float64 { return upper(bb, axis) }),
		},
	}
	n := len(boxes)
	for _, s := range c.sorts {
		for k := minGroup; k <= n-minGroup; k++ {
			c.marginSum += margin(s.prefix[k-1]) + margin(s.suffix[k])
			if s.clean(k) {
				c.clean = true
			}
		}
	}
	return c
}

// betterAxis reports whether c should be chosen over the current best axis.
func betterAxis(c, best axisCandidate) bool {
	if c.clean != best.clean {
		return c.clean
	}
	return c.marginSum < best.marginSum
}

// chooseSplit finds the R* distribution of boxes. boxes must hold at least
// two rectangles.
func chooseSplit(boxes []Rect, minGroup int) rstarSplit {
	n := len(boxes)
	minGroup = clampMinGroup(minGroup, n)

	best := evaluateAxis(boxes, AxisX, minGroup)
	if c := evaluateAxis(boxes, AxisY, minGroup); betterAxis(c, best) {
		best = c
	}

	var (
		found       bool
		bestOverlap float64
		bestArea    float64
		result      rstarSplit
	)
	for _, s := range best.sorts {
		for k := minGroup; k <= n-minGroup; k++ {
			if best.clean && !s.clean(k) {
				continue
			}
			bbA, bbB := s.prefix[k-1], s.suffix[k]
			ov := overlapArea(bbA, bbB)
			ar := area(bbA) + area(bbB)
			if found {
				if ov > bestOverlap {
					continue
				}
				if ov == bestOverlap && (ar > bestArea || (ar == bestArea && k >= result.k)) {
					continue
				}
			}
			found = true
			bestOverlap, bestArea = ov, ar
			result = rstarSplit{axis: best.axis, order: s.order, k: k}
		}
	}
	result.coord = lower(boxes[result.order[result.k]], result.axis)
	return result
}
