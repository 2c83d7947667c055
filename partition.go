package rtree

import "fmt"

// PartitionPoints divides the plane into disjoint rectangles, each holding at
// most capacity of the given points. The point set is split recursively with
// the R* split, using capacity/2 as the minimum group size, until every group
// fits. For n points the number of partitions k satisfies
// ceil(n/capacity) <= k <= ceil(n/(capacity/2)).
//
// Without extendToInfinity each partition is the bounding box of its points,
// and together they bound exactly the input. With extendToInfinity the
// partitions are the cells of the recursive decomposition of the whole plane:
// outward facing sides reach infinity and neighbouring cells share their
// boundary, so every point of the plane falls in some partition.
//
// Partition interiors never intersect. If aux is not nil it receives the
// Locator for the returned partitions, where partition ids are indices into
// the returned slice.
func PartitionPoints(xs, ys []float64, capacity int, extendToInfinity bool, aux *Locator) ([]Rect, error) {
	if err := checkCoordinates(xs, ys); err != nil {
		return nil, err
	}
	if capacity < 2 {
		return nil, fmt.Errorf("%w: partition capacity %d is less than 2", ErrInvalidCapacity, capacity)
	}
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}

	p := partitioner{
		xs:       xs,
		ys:       ys,
		capacity: capacity,
		minGroup: capacity / 2,
		extend:   extendToInfinity,
	}
	group := make([]int, len(xs))
	for i := range group {
		group[i] = i
	}
	p.locator.Root = p.partition(group, Infinite())

	if aux != nil {
		*aux = p.locator
	}
	return p.partitions, nil
}

type partitioner struct {
	xs, ys   []float64
	capacity int
	minGroup int
	extend   bool

	partitions []Rect
	locator    Locator
}

// partition splits the points in group, which all lie in region, and returns
// the branch leading to the resulting partitions.
func (p *partitioner) partition(group []int, region Rect) Branch {
	if len(group) <= p.capacity {
		id := len(p.partitions)
		if p.extend {
			p.partitions = append(p.partitions, region)
		} else {
			p.partitions = append(p.partitions, pointsBound(p.xs, p.ys, group))
		}
		return partitionBranch(id)
	}

	boxes := make([]Rect, len(group))
	for i, j := range group {
		boxes[i] = PointRect(p.xs[j], p.ys[j])
	}
	sp := chooseSplit(boxes, p.minGroup)

	lowGroup := make([]int, sp.k)
	for i, j := range sp.order[:sp.k] {
		lowGroup[i] = group[j]
	}
	highGroup := make([]int, len(group)-sp.k)
	for i, j := range sp.order[sp.k:] {
		highGroup[i] = group[j]
	}

	lowRegion, highRegion := region, region
	if sp.axis == AxisX {
		lowRegion.MaxX, highRegion.MinX = sp.coord, sp.coord
	} else {
		lowRegion.MaxY, highRegion.MinY = sp.coord, sp.coord
	}

	node := p.locator.addDecision(sp.axis, sp.coord)
	less := p.partition(lowGroup, lowRegion)
	greater := p.partition(highGroup, highRegion)
	p.locator.Less[node] = less
	p.locator.GreaterOrEqual[node] = greater
	return decisionBranch(node)
}
