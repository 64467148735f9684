package surface

import "math"

// buildPolygon wraps cycle vertices that the caller has already projected
// into the plane and checks whether the closed polygon self-intersects;
// non-adjacent edges sharing a crossing mark it invalid.
func buildPolygon(vertices []Vec2) Polygon2D {
	return Polygon2D{Vertices: vertices, Valid: !selfIntersects(vertices)}
}

func selfIntersects(v []Vec2) bool {
	n := len(v)
	if n < 4 {
		return false // a triangle can never self-intersect
	}
	for i := 0; i < n; i++ {
		a1, a2 := v[i], v[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// skip edges that share a vertex (adjacent, or first/last wrap)
			if j == i || j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b1, b2 := v[j], v[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	d1 := cross2(b2.Sub(b1), a1.Sub(b1))
	d2 := cross2(b2.Sub(b1), a2.Sub(b1))
	d3 := cross2(a2.Sub(a1), b1.Sub(a1))
	d4 := cross2(a2.Sub(a1), b2.Sub(a1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func cross2(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// PointInPolygon runs a ray-casting point-in-polygon test with an
// epsPolygon inclusion tolerance on edges: a point within epsPolygon of any
// edge counts as inside.
func PointInPolygon(poly Polygon2D, p Vec2, epsPolygon float64) bool {
	n := len(poly.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		b := poly.Vertices[(i+1)%n]
		if distanceToSegment(p, a, b) <= epsPolygon {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly.Vertices[i], poly.Vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xIntersect := vi.X + (p.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X)
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func distanceToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	abLenSq := ab.X*ab.X + ab.Y*ab.Y
	if abLenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Vec2{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}
