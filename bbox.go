package rtree

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Rect is an axis-aligned rectangle. A point is a Rect with MinX == MaxX and
// MinY == MaxY. Coordinates may be infinite.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// PointRect gives the degenerate Rect holding only the point (x, y).
func PointRect(x, y float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// Infinite gives the Rect covering the entire plane.
func Infinite() Rect {
	return Rect{
		MinX: math.Inf(-1),
		MinY: math.Inf(-1),
		MaxX: math.Inf(+1),
		MaxY: math.Inf(+1),
	}
}

// RectFromBound converts an orb.Bound into a Rect.
func RectFromBound(b orb.Bound) Rect {
	return Rect{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}

// Bound converts the Rect into an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinX, r.MinY},
		Max: orb.Point{r.MaxX, r.MaxY},
	}
}

// Combine gives the smallest Rect containing both r and o.
func (r Rect) Combine(o Rect) Rect {
	return combine(r, o)
}

// Area gives the area of the Rect.
func (r Rect) Area() float64 {
	return area(r)
}

// Margin gives the perimeter of the Rect.
func (r Rect) Margin() float64 {
	return margin(r)
}

// Overlaps reports whether r and o share at least one point. Rects that only
// touch along an edge overlap.
func (r Rect) Overlaps(o Rect) bool {
	return overlap(r, o)
}

// Intersects reports whether the interiors of r and o intersect. Unlike
// Overlaps, Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Contains reports whether the point (x, y) lies inside or on the boundary of
// the Rect.
func (r Rect) Contains(x, y float64) bool {
	return r.Bound().Contains(orb.Point{x, y})
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// calculateBound calculates the smallest bounding box that fits a node.
func (t *RTree) calculateBound(n int) Rect {
	entries := t.Nodes[n].Entries
	if len(entries) == 0 {
		return Rect{}
	}
	bb := entries[0].BBox
	for _, entry := range entries[1:] {
		bb = combine(bb, entry.BBox)
	}
	return bb
}

// pointsBound gives the MBR of the points selected by idx.
func pointsBound(xs, ys []float64, idx []int) Rect {
	mp := make(orb.MultiPoint, len(idx))
	for i, j := range idx {
		mp[i] = orb.Point{xs[j], ys[j]}
	}
	return RectFromBound(mp.Bound())
}

// combine gives the smallest bounding box containing both bbox1 and bbox2.
func combine(bbox1, bbox2 Rect) Rect {
	return Rect{
		MinX: math.Min(bbox1.MinX, bbox2.MinX),
		MinY: math.Min(bbox1.MinY, bbox2.MinY),
		MaxX: math.Max(bbox1.MaxX, bbox2.MaxX),
		MaxY: math.Max(bbox1.MaxY, bbox2.MaxY),
	}
}

// enlargement returns how much additional area the existing Rect would have
// to enlarge by to accommodate the additional Rect.
func enlargement(existing, additional Rect) float64 {
	return area(combine(existing, additional)) - area(existing)
}

func area(bb Rect) float64 {
	return (bb.MaxX - bb.MinX) * (bb.MaxY - bb.MinY)
}

func margin(bb Rect) float64 {
	return 2 * ((bb.MaxX - bb.MinX) + (bb.MaxY - bb.MinY))
}

// overlapArea gives the area shared by bbox1 and bbox2.
func overlapArea(bbox1, bbox2 Rect) float64 {
	w := math.Min(bbox1.MaxX, bbox2.MaxX) - math.Max(bbox1.MinX, bbox2.MinX)
	h := math.Min(bbox1.MaxY, bbox2.MaxY) - math.Max(bbox1.MinY, bbox2.MinY)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func overlap(bbox1, bbox2 Rect) bool {
	return true &&
		(bbox1.MinX <= bbox2.MaxX) && (bbox1.MaxX >= bbox2.MinX) &&
		(bbox1.MinY <= bbox2.MaxY) && (bbox1.MaxY >= bbox2.MinY)
}
