package rtree

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestRect_touching(t *testing.T) {
	t.Parallel()

	a := Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Rect{MinX: 2, MinY: 0, MaxX: 4, MaxY: 2}

	require.True(t, a.Overlaps(b))
	require.False(t, a.Intersects(b))
	require.Zero(t, overlapArea(a, b))
}

func TestRect_intersecting(t *testing.T) {
	t.Parallel()

	a := Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Rect{MinX: 1, MinY: 1, MaxX: 4, MaxY: 3}

	require.True(t, a.Intersects(b))
	require.True(t, b.Intersects(a))
	require.Equal(t, 1.0, overlapArea(a, b))
	require.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3}, a.Combine(b))
	require.Equal(t, 4.0, a.Area())
	require.Equal(t, 8.0, a.Margin())
	require.Equal(t, 8.0, enlargement(a, b))
}

func TestRect_infinite(t *testing.T) {
	t.Parallel()

	inf := Infinite()
	left := Rect{MinX: math.Inf(-1), MinY: math.Inf(-1), MaxX: 9, MaxY: math.Inf(+1)}
	right := Rect{MinX: 9, MinY: math.Inf(-1), MaxX: math.Inf(+1), MaxY: math.Inf(+1)}

	require.Equal(t, inf, left.Combine(right))
	require.False(t, left.Intersects(right))
	require.True(t, inf.Contains(1e300, -1e300))
	require.True(t, left.Contains(9, 0))
	require.True(t, right.Contains(9, 0))
	require.False(t, right.Contains(8.99, 0))
}

func TestRect_degenerate(t *testing.T) {
	t.Parallel()

	p := PointRect(3, 4)

	require.Zero(t, p.Area())
	require.False(t, p.Intersects(p))
	require.True(t, p.Overlaps(p))
	require.True(t, p.Contains(3, 4))
	require.Equal(t, "(3,4,3,4)", p.String())
}

func TestRect_bound(t *testing.T) {
	t.Parallel()

	r := Rect{MinX: -1, MinY: 2, MaxX: 3, MaxY: 5}

	require.Equal(t, orb.Bound{Min: orb.Point{-1, 2}, Max: orb.Point{3, 5}}, r.Bound())
	require.Equal(t, r, RectFromBound(r.Bound()))
}

func TestPointsBound(t *testing.T) {
	t.Parallel()

	xs := []float64{5, -1, 7, 2}
	ys := []float64{0, 4, 9, -3}

	require.Equal(t, Rect{MinX: -1, MinY: -3, MaxX: 7, MaxY: 9}, pointsBound(xs, ys, []int{0, 1, 2, 3}))
	require.Equal(t, Rect{MinX: -1, MinY: 0, MaxX: 5, MaxY: 4}, pointsBound(xs, ys, []int{1, 0}))
}
