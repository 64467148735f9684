/*
Package entangle runs the final stage of the core: it builds the backbone
polyline, walks every loop surface from package surface, and tests each
non-loop segment against it for a piercing. The result is an
EntanglementResult carrying the total hit count K and the ordered Hit list.
*/
package entangle

import "github.com/TimothyStiles/rnaknot/basepair"

// PolylineMode selects which backbone atoms form the piercing polyline.
type PolylineMode int

const (
	// SingleAtomPolyline uses only C4' atoms, one vertex per residue.
	SingleAtomPolyline PolylineMode = 0
	// AlternatingPolyline alternates P and C4' atoms within each residue.
	AlternatingPolyline PolylineMode = 1
)

// Params collects the epsilon envelope and mode switches governing a single
// evaluation. Zero-value Params is invalid; use DefaultParams as a base.
type Params struct {
	PolylineMode  PolylineMode
	MainLayerOnly bool
	EpsPlane      float64
	EpsPolygon    float64
	EpsCollinear  float64
	// Parallel enables per-surface evaluation across goroutines; each
	// surface's hits are stored by loop-ID position, so the result is in
	// canonical order regardless.
	Parallel bool
}

// DefaultParams returns the default epsilon envelope from the external
// interface contract: eps_plane=1e-2, eps_polygon=1e-2, eps_collinear=1e-6.
func DefaultParams() Params {
	return Params{
		PolylineMode: SingleAtomPolyline,
		EpsPlane:     1e-2,
		EpsPolygon:   1e-2,
		EpsCollinear: 1e-6,
	}
}

// Hit is one intersection of a non-loop backbone segment with a loop
// surface: (ResA, AtomA)-(ResB, AtomB) is the pierced segment, Point is
// where the segment crosses the surface in 3D.
type Hit struct {
	LoopID int
	ResA   int
	AtomA  basepair.AtomKind
	ResB   int
	AtomB  basepair.AtomKind
	Point  basepair.Vec3
}

// EntanglementResult is the final output of the pipeline: the total hit
// count K and the hits themselves, in canonical order (surfaces by loop_id
// ascending, then polyline segment order within a surface).
type EntanglementResult struct {
	K    int
	Hits []Hit
}

// vertex is one point on the backbone polyline, labelled with the residue
// and atom it was sampled from.
type vertex struct {
	res  int
	atom basepair.AtomKind
	pos  basepair.Vec3
}

// segment is one edge of the backbone polyline between two consecutive
// vertices.
type segment struct {
	a, b vertex
}
