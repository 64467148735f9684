/*
Package surface fits a spanning surface to each secstruct.Loop's boundary
residues in 3D and represents it as a 2D polygon (mode 0, best-fit plane) or
a triangle fan (mode 1, triangulated), ready for the point-in-polygon and
Moller-Trumbore tests in package entangle.

There is no linear-algebra or computational-geometry dependency in the
example corpus's complete repos (the S2-style polygon code under
_examples/teamdatatonic-geo and _examples/other_examples is reference
material, not an importable module - see DESIGN.md), so the 3x3 eigen
decomposition and point-in-polygon test here are implemented directly on
top of the basepair package's Vec3, in the same from-scratch style the
teacher corpus uses for its own numerical code (e.g. mfe's partition
function arithmetic).
*/
package surface

import "github.com/TimothyStiles/rnaknot/basepair"

// Vec2 is a point in a loop's fitted 2D plane coordinates (e1, e2).
type Vec2 struct {
	X, Y float64
}

// Plane is a best-fit plane through a loop's cycle residues: origin C, an
// orthonormal in-plane basis (E1, E2), and the plane Normal. Valid is false
// when the loop's residues are too few or too collinear to fit a plane.
type Plane struct {
	C, E1, E2, Normal basepair.Vec3
	Valid             bool
}

// Point returns the 3D point corresponding to 2D plane coordinates (x, y).
func (p Plane) Point(v Vec2) basepair.Vec3 {
	return p.C.Add(p.E1.Scale(v.X)).Add(p.E2.Scale(v.Y))
}

// Project returns the 2D plane coordinates of a 3D point.
func (p Plane) Project(point basepair.Vec3) Vec2 {
	d := point.Sub(p.C)
	return Vec2{X: d.Dot(p.E1), Y: d.Dot(p.E2)}
}

// SignedDistance returns the signed distance of point from the plane along
// Normal.
func (p Plane) SignedDistance(point basepair.Vec3) float64 {
	return point.Sub(p.C).Dot(p.Normal)
}

// Polygon2D is the projected, ordered boundary of a loop in plane
// coordinates. Valid is false when the projected boundary self-intersects,
// in which case point-in-polygon tests must not be trusted even though the
// polygon is still kept (a mode-1 triangle fan built from the same vertices
// may still yield useful piercing tests).
type Polygon2D struct {
	Vertices []Vec2
	Valid    bool
}

// Triangle is a 3D triangle, either one fan wedge of a loop's triangulated
// surface (mode 1) or a standalone probe triangle.
type Triangle struct {
	A, B, C basepair.Vec3
}

// Surface is the spanning surface of one secstruct.Loop: a fitted Plane
// plus, depending on how it was built, a Polygon2D (mode 0) and/or a
// triangle fan (mode 1). Both payloads share the same Plane and LoopID.
type Surface struct {
	LoopID    int
	Plane     Plane
	Polygon   Polygon2D
	Triangles []Triangle
}
