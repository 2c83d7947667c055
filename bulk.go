package rtree

import "fmt"

// InitializeFromPoints discards the content of the tree and loads one entry
// per point. Entry i holds the point (xs[i], ys[i]) with data index i. Points
// are inserted in input order, so the same input always gives the same tree.
func (t *RTree) InitializeFromPoints(xs, ys []float64) error {
	if err := checkCoordinates(xs, ys); err != nil {
		return err
	}

	t.Nodes = []Node{{IsLeaf: true, Parent: -1}}
	t.RootIndex = 0
	for i := range xs {
		t.Insert(PointRect(xs[i], ys[i]), i)
	}
	return nil
}

func checkCoordinates(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x coordinates and %d y coordinates",
			ErrMismatchedCoordinates, len(xs), len(ys))
	}
	return nil
}
