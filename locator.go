package rtree

// Branch is one outgoing edge of a Locator decision node. It leads either to
// another decision node or to a partition.
type Branch struct {
	// Index is a decision node index, or a partition id when Terminal is set.
	Index    int
	Terminal bool
}

func decisionBranch(node int) Branch {
	return Branch{Index: node}
}

func partitionBranch(id int) Branch {
	return Branch{Index: id, Terminal: true}
}

// Locator is a binary decision tree over the split coordinates chosen by
// PartitionPoints. It finds the partition holding a point in time
// proportional to the depth of the decomposition, without touching the
// partition rectangles.
//
// Decision node i compares the SplitAxes[i] coordinate of the point with
// SplitCoords[i] and follows GreaterOrEqual[i] or Less[i]. A Locator for k
// partitions has k-1 decision nodes.
type Locator struct {
	SplitAxes      []Axis
	SplitCoords    []float64
	GreaterOrEqual []Branch
	Less           []Branch

	// Root is where every lookup starts. It is a terminal branch when there
	// is only one partition.
	Root Branch
}

// NumDecisionNodes gives the number of decision nodes.
func (l *Locator) NumDecisionNodes() int {
	return len(l.SplitCoords)
}

// NumPartitions gives the number of partitions the Locator resolves to.
func (l *Locator) NumPartitions() int {
	if len(l.SplitCoords) == 0 && !l.Root.Terminal {
		return 0
	}
	return len(l.SplitCoords) + 1
}

// Locate gives the id of the partition holding the point (x, y), or -1 if the
// Locator is empty.
//
// When the partitions were extended to infinity every point resolves to the
// partition whose rectangle contains it. Otherwise this holds only for points
// inside the bounding box of the partitioned points.
func (l *Locator) Locate(x, y float64) int {
	if l.NumPartitions() == 0 {
		return -1
	}
	b := l.Root
	for !b.Terminal {
		n := b.Index
		v := x
		if l.SplitAxes[n] == AxisY {
			v = y
		}
		if v >= l.SplitCoords[n] {
			b = l.GreaterOrEqual[n]
		} else {
			b = l.Less[n]
		}
	}
	return b.Index
}

// addDecision appends a decision node with unresolved branches and returns
// its index.
func (l *Locator) addDecision(axis Axis, coord float64) int {
	l.SplitAxes = append(l.SplitAxes, axis)
	l.SplitCoords = append(l.SplitCoords, coord)
	l.GreaterOrEqual = append(l.GreaterOrEqual, Branch{})
	l.Less = append(l.Less, Branch{})
	return len(l.SplitCoords) - 1
}
