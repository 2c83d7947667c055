package rtree

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrInvalidCapacity is returned when node or partition capacities are
	// out of range.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrMismatchedCoordinates is returned when the x and y coordinate slices
	// have different lengths.
	ErrMismatchedCoordinates = errors.New("mismatched coordinate lengths")

	// ErrNoPoints is returned when partitioning an empty point set.
	ErrNoPoints = errors.New("no points")

	// ErrNodeOutOfRange is returned when a node index does not address a node
	// in the tree.
	ErrNodeOutOfRange = errors.New("node index out of range")

	// ErrSplitTooSmall is returned when a node has too few entries for the
	// requested split.
	ErrSplitTooSmall = errors.New("node too small to split")
)

// Node is a node in an R-Tree. Nodes can either be leaf nodes holding entries
// for terminal items, or intermediate nodes holding entries for more nodes.
type Node struct {
	IsLeaf  bool
	Entries []Entry

	// Parent is the index of the parent node, or -1 for the root.
	Parent int
}

// Entry is an entry under a node, leading either to terminal items, or more
// nodes. For leaf nodes Index is the data index, otherwise it is the index of
// the child node.
type Entry struct {
	BBox  Rect
	Index int
}

// RTree is an in-memory R-Tree data structure. Nodes are kept in an arena and
// refer to each other by index. Node indices stay valid for the lifetime of
// the tree; splitting a node keeps one half at the original index.
//
// An RTree is not safe for concurrent use.
type RTree struct {
	RootIndex int
	Nodes     []Node

	minCapacity int
	maxCapacity int
	splitter    Splitter
}

// Option configures an RTree created by New.
type Option func(*RTree)

// WithSplitter sets the strategy used to split overflowing nodes. The default
// is RStarSplitter.
func WithSplitter(s Splitter) Option {
	return func(t *RTree) {
		t.splitter = s
	}
}

// New creates an empty RTree. Every non-root node holds between minCapacity
// and maxCapacity entries.
func New(minCapacity, maxCapacity int, opts ...Option) (*RTree, error) {
	if minCapacity < 1 {
		return nil, fmt.Errorf("%w: min capacity %d is less than 1", ErrInvalidCapacity, minCapacity)
	}
	if minCapacity > maxCapacity {
		return nil, fmt.Errorf("%w: min capacity %d exceeds max capacity %d",
			ErrInvalidCapacity, minCapacity, maxCapacity)
	}
	t := &RTree{
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
		splitter:    RStarSplitter{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MinCapacity is the minimum number of entries of a non-root node.
func (t *RTree) MinCapacity() int {
	return t.minCapacity
}

// MaxCapacity is the maximum number of entries of any node.
func (t *RTree) MaxCapacity() int {
	return t.maxCapacity
}

// NumNodes gives the number of nodes in the tree.
func (t *RTree) NumNodes() int {
	return len(t.Nodes)
}

// NumDataEntries gives the number of data entries held by the leaves of the
// tree.
func (t *RTree) NumDataEntries() int {
	var count int
	for _, leaf := range t.Leaves() {
		count += len(leaf.Entries)
	}
	return count
}

// Height gives the number of edges between the root and the leaves. A tree
// whose root is a leaf has height 0.
func (t *RTree) Height() int {
	if len(t.Nodes) == 0 {
		return 0
	}
	var h int
	n := t.RootIndex
	for !t.Nodes[n].IsLeaf {
		n = t.Nodes[n].Entries[0].Index
		h++
	}
	return h
}

// Bounds gives the minimum bounding rectangle of node n.
func (t *RTree) Bounds(n int) Rect {
	return t.calculateBound(n)
}

// Leaves iterates over every leaf reachable from the root, yielding the node
// index and the node. The order is the same on every call as long as the tree
// is not modified. Modifying the tree during iteration is not allowed.
func (t *RTree) Leaves() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if len(t.Nodes) == 0 {
			return
		}
		stack := []int{t.RootIndex}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := t.Nodes[n]
			if node.IsLeaf {
				if !yield(n, node) {
					return
				}
				continue
			}
			for i := len(node.Entries) - 1; i >= 0; i-- {
				stack = append(stack, node.Entries[i].Index)
			}
		}
	}
}

// Search looks for any items in the tree that overlap with the the given
// bounding box. The callback is called with the item index for each found
// item.
func (t *RTree) Search(bb Rect, callback func(index int)) {
	if len(t.Nodes) == 0 {
		return
	}
	var recurse func(*Node)
	recurse = func(n *Node) {
		for _, entry := range n.Entries {
			if !overlap(entry.BBox, bb) {
				continue
			}
			if n.IsLeaf {
				callback(entry.Index)
			} else {
				recurse(&t.Nodes[entry.Index])
			}
		}
	}
	recurse(&t.Nodes[t.RootIndex])
}
