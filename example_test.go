package rtree_test

import (
	"fmt"

	"github.com/geoshard/rtree"
)

func ExamplePartitionPoints() {
	xs := []float64{1, 2, 3, 4, 5, 6, 9, 10, 10.5, 11, 12}
	ys := []float64{3, 12, 7, 10, 5, 8, 2, 9, 4, 6, 10}

	var locator rtree.Locator
	partitions, err := rtree.PartitionPoints(xs, ys, 8, false, &locator)
	if err != nil {
		panic(err)
	}

	for id, p := range partitions {
		fmt.Println(id, p)
	}
	fmt.Println("(10,5) is in partition", locator.Locate(10, 5))

	// Output:
	// 0 (1,3,6,12)
	// 1 (9,2,12,10)
	// (10,5) is in partition 1
}

func ExamplePartitionPoints_infinite() {
	xs := []float64{1, 2, 3, 4, 5, 6, 9, 10, 10.5, 11, 12}
	ys := []float64{3, 12, 7, 10, 5, 8, 2, 9, 4, 6, 10}

	var locator rtree.Locator
	partitions, err := rtree.PartitionPoints(xs, ys, 4, true, &locator)
	if err != nil {
		panic(err)
	}

	for id, p := range partitions {
		fmt.Println(id, p)
	}
	fmt.Println("(100,100) is in partition", locator.Locate(100, 100))

	// Output:
	// 0 (-Inf,-Inf,9,7)
	// 1 (-Inf,7,9,+Inf)
	// 2 (9,-Inf,+Inf,9)
	// 3 (9,9,+Inf,+Inf)
	// (100,100) is in partition 3
}

func ExampleRTree_Split() {
	tree, err := rtree.New(4, 16)
	if err != nil {
		panic(err)
	}
	xs := []float64{1, 2, 3, 4, 5, 6, 9, 10, 10.5, 11, 12}
	ys := []float64{3, 12, 7, 10, 5, 8, 2, 9, 4, 6, 10}
	if err := tree.InitializeFromPoints(xs, ys); err != nil {
		panic(err)
	}
	fmt.Println("height", tree.Height(), "entries", tree.NumDataEntries())

	if _, err := tree.Split(tree.RootIndex, 4); err != nil {
		panic(err)
	}
	for n := range tree.Leaves() {
		fmt.Println(tree.Bounds(n))
	}
	fmt.Println("height", tree.Height(), "entries", tree.NumDataEntries())

	// Output:
	// height 0 entries 11
	// (1,3,6,12)
	// (9,2,12,10)
	// height 1 entries 11
}
