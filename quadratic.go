package rtree

import "math"

// QuadraticSplitter is Guttman's quadratic split. It seeds the two groups with
// the pair of rectangles that would waste the most area if grouped together,
// then hands out the remaining rectangles to whichever group needs the least
// enlargement to hold them.
type QuadraticSplitter struct{}

// Split implements Splitter.
func (QuadraticSplitter) Split(boxes []Rect, minGroup int) (a, b []int) {
	minGroup = clampMinGroup(minGroup, len(boxes))
	seedA, seedB := pickSeeds(boxes)

	a = append(a, seedA)
	b = append(b, seedB)
	bboxA, bboxB := boxes[seedA], boxes[seedB]

	remaining := len(boxes) - 2
	for i, bb := range boxes {
		if i == seedA || i == seedB {
			continue
		}
		var toA bool
		switch {
		case len(a)+remaining == minGroup:
			// Group A needs every remaining entry to reach the minimum.
			toA = true
		case len(b)+remaining == minGroup:
			toA = false
		default:
			toA = preferFirst(bboxA, bboxB, bb, len(a), len(b))
		}
		if toA {
			a = append(a, i)
			bboxA = combine(bboxA, bb)
		} else {
			b = append(b, i)
			bboxB = combine(bboxB, bb)
		}
		remaining--
	}
	return a, b
}

// pickSeeds finds the pair of rectangles with the most dead space, i.e. the
// area of their combined bounding box minus the area of each. The first pair
// found wins ties.
func pickSeeds(boxes []Rect) (int, int) {
	bestI, bestJ := 0, 1
	bestWaste := math.Inf(-1)
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			waste := area(combine(boxes[i], boxes[j])) - area(boxes[i]) - area(boxes[j])
			if waste > bestWaste {
				bestWaste = waste
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

// preferFirst reports whether bb should join the group bounded by bboxA
// rather than the one bounded by bboxB. The group needing the least
// enlargement wins, then the one with the smaller resulting area, then the one
// with fewer entries, then the first.
func preferFirst(bboxA, bboxB, bb Rect, lenA, lenB int) bool {
	enlargeA := enlargement(bboxA, bb)
	enlargeB := enlargement(bboxB, bb)
	if enlargeA != enlargeB {
		return enlargeA < enlargeB
	}
	areaA := area(combine(bboxA, bb))
	areaB := area(combine(bboxB, bb))
	if areaA != areaB {
		return areaA < areaB
	}
	return lenA <= lenB
}
