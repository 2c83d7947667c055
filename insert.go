package rtree

import "fmt"

// Insert adds a new data item to the RTree.
func (t *RTree) Insert(bb Rect, dataIndex int) {
	if len(t.Nodes) == 0 {
		t.Nodes = append(t.Nodes, Node{IsLeaf: true, Entries: nil, Parent: -1})
		t.RootIndex = 0
	}

	leaf := t.chooseLeafNode(bb)
	t.Nodes[leaf].Entries = append(t.Nodes[leaf].Entries, Entry{BBox: bb, Index: dataIndex})

	current := leaf
	for current != t.RootIndex {
		parent := t.Nodes[current].Parent
		for i := range t.Nodes[parent].Entries {
			e := &t.Nodes[parent].Entries[i]
			if e.Index == current {
				e.BBox = combine(e.BBox, bb)
				break
			}
		}
		current = parent
	}

	if len(t.Nodes[leaf].Entries) <= t.maxCapacity {
		return
	}

	newNode := t.splitNode(leaf, t.overflowMinGroup())
	root1, root2 := t.adjustTree(leaf, newNode)

	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
}

// Split forces node n to split in two, each half holding at least minGroup
// entries (fewer only when n holds less than 2*minGroup entries). The first
// half stays at index n and the second is placed in a new node whose index is
// returned. Ancestors are adjusted up to the root, splitting them if they
// overflow. Splitting the root creates a new root, increasing the height by
// one.
func (t *RTree) Split(n, minGroup int) (int, error) {
	if n < 0 || n >= len(t.Nodes) {
		return -1, fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}
	if minGroup < 1 {
		return -1, fmt.Errorf("%w: min group size %d is less than 1", ErrInvalidCapacity, minGroup)
	}
	if count := len(t.Nodes[n].Entries); count <= minGroup {
		return -1, fmt.Errorf("%w: node %d has %d entries, min group size is %d",
			ErrSplitTooSmall, n, count, minGroup)
	}

	newNode := t.splitNode(n, minGroup)
	root1, root2 := t.adjustTree(n, newNode)
	if root2 != -1 {
		t.joinRoots(root1, root2)
	}
	return newNode, nil
}

// overflowMinGroup is the minimum group size used when splitting a node that
// holds maxCapacity+1 entries.
func (t *RTree) overflowMinGroup() int {
	return min(t.minCapacity, (t.maxCapacity+1)/2)
}

func (t *RTree) joinRoots(r1, r2 int) {
	t.Nodes = append(t.Nodes, Node{
		IsLeaf: false,
		Entries: []Entry{
			{
				BBox:  t.calculateBound(r1),
				Index: r1,
			},
			{
				BBox:  t.calculateBound(r2),
				Index: r2,
			},
		},
		Parent: -1,
	})
	t.RootIndex = len(t.Nodes) - 1
	t.Nodes[r1].Parent = len(t.Nodes) - 1
	t.Nodes[r2].Parent = len(t.Nodes) - 1
}

func (t *RTree) adjustTree(n, nn int) (int, int) {
	for {
		if n == t.RootIndex {
			return n, nn
		}
		parent := t.Nodes[n].Parent
		parentEntry := -1
		for i, entry := range t.Nodes[parent].Entries {
			if entry.Index == n {
				parentEntry = i
				break
			}
		}
		t.Nodes[parent].Entries[parentEntry].BBox = t.calculateBound(n)

		// AT4
		pp := -1
		if nn != -1 {
			newEntry := Entry{
				BBox:  t.calculateBound(nn),
				Index: nn,
			}
			t.Nodes[parent].Entries = append(t.Nodes[parent].Entries, newEntry)
			t.Nodes[nn].Parent = parent
			if len(t.Nodes[parent].Entries) > t.maxCapacity {
				pp = t.splitNode(parent, t.overflowMinGroup())
			}
		}

		n, nn = parent, pp
	}
}

// splitNode splits node with index n into two nodes using the tree's
// splitter. The first node replaces n, and the second node is newly created.
// The return value is the index of the new node.
func (t *RTree) splitNode(n, minGroup int) int {
	entries := t.Nodes[n].Entries
	boxes := make([]Rect, len(entries))
	for i, entry := range entries {
		boxes[i] = entry.BBox
	}
	groupA, groupB := t.splitter.Split(boxes, minGroup)

	entriesA := make([]Entry, len(groupA))
	for i, j := range groupA {
		entriesA[i] = entries[j]
	}
	entriesB := make([]Entry, len(groupB))
	for i, j := range groupB {
		entriesB[i] = entries[j]
	}

	// Use the existing node for A, and create a new node for B.
	t.Nodes[n].Entries = entriesA
	t.Nodes = append(t.Nodes, Node{
		IsLeaf:  t.Nodes[n].IsLeaf,
		Entries: entriesB,
		Parent:  -1,
	})
	newNode := len(t.Nodes) - 1
	if !t.Nodes[n].IsLeaf {
		for _, entry := range entriesB {
			t.Nodes[entry.Index].Parent = newNode
		}
	}
	return newNode
}

func (t *RTree) chooseLeafNode(bb Rect) int {
	node := t.RootIndex

	for {
		if t.Nodes[node].IsLeaf {
			return node
		}
		entries := t.Nodes[node].Entries
		bestDelta := enlargement(entries[0].BBox, bb)
		bestEntry := 0
		for i := 1; i < len(entries); i++ {
			delta := enlargement(entries[i].BBox, bb)
			if delta < bestDelta {
				bestDelta = delta
				bestEntry = i
			} else if delta == bestDelta && area(entries[i].BBox) < area(entries[bestEntry].BBox) {
				// Area is used as a tie breaking if the enlargements are the same.
				bestEntry = i
			}
		}
		node = entries[bestEntry].Index
	}
}
