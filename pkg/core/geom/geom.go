package geom

import "math"

// Tolerance is the epsilon, in meters, used for adjacency matching.
const Tolerance = 0.05

// keyScale quantizes coordinates to centimeters for segment keys.
const keyScale = 100

// Point is a position on the plan, in meters.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points by X, then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Within reports whether v lies in [lo, hi] widened by eps on both ends.
func Within(v, lo, hi, eps float64) bool {
	return v >= lo-eps && v <= hi+eps
}

// Clamp limits v to [lo, hi]. If lo > hi the midpoint is returned.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, matching the editor canvas.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	const eps = 1e-9
	return r.X < o.MaxX()-eps && o.X < r.MaxX()-eps &&
		r.Y < o.MaxY()-eps && o.Y < r.MaxY()-eps
}

// Shrink returns r inset by m on every side. A rectangle narrower than 2m
// collapses to its center line on that axis.
func (r Rect) Shrink(m float64) Rect {
	out := Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// ClampPoint moves p to the nearest point inside r.
func (r Rect) ClampPoint(p Point) Point {
	return Point{X: Clamp(p.X, r.X, r.MaxX()), Y: Clamp(p.Y, r.Y, r.MaxY())}
}

// OnEdge reports whether p lies on one of r's four edges within eps,
// including the edge's span on the perpendicular axis.
func (r Rect) OnEdge(p Point, eps float64) bool {
	onVertical := (ApproxEqual(p.X, r.X, eps) || ApproxEqual(p.X, r.MaxX(), eps)) &&
		Within(p.Y, r.Y, r.MaxY(), eps)
	onHorizontal := (ApproxEqual(p.Y, r.Y, eps) || ApproxEqual(p.Y, r.MaxY(), eps)) &&
		Within(p.X, r.X, r.MaxX(), eps)
	return onVertical || onHorizontal
}

// =============================================================================
// SegmentKey
// =============================================================================

// SegmentKey is a direction-independent, centimeter-quantized identity for
// a segment. It is comparable and safe to use as a map key.
type SegmentKey struct {
	X1, Y1, X2, Y2 int64
}

// KeyOf returns the canonical key of the segment between a and b.
func KeyOf(a, b Point) SegmentKey {
	ax, ay := quantize(a.X), quantize(a.Y)
	bx, by := quantize(b.X), quantize(b.Y)
	if bx < ax || (bx == ax && by < ay) {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return SegmentKey{X1: ax, Y1: ay, X2: bx, Y2: by}
}

func quantize(v float64) int64 {
	return int64(math.Round(v * keyScale))
}
