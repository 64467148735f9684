package surface

import (
	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/secstruct"
)

// Mode selects the surface representation SurfaceBuilder produces.
type Mode int

const (
	// PlaneMode fits a single best-fit plane and polygon per loop.
	PlaneMode Mode = 0
	// TriangulatedMode additionally fans the polygon into triangles from
	// its centroid.
	TriangulatedMode Mode = 1
)

// Build constructs one Surface per loop, indexed by residue number into
// coords (coords[r-1].ResIndex == r for every residue 1..N present in the
// input; residues absent from coords - because their C4' atom was dropped
// upstream - are simply skipped when assembling a loop's cycle).
//
// Per spec: if fewer than 3 distinct cycle residues survive, or the
// survivors are collinear within epsCollinear, the plane (and so the
// surface) is invalid but still returned - it contributes no hits rather
// than aborting the whole evaluation.
func Build(coords []basepair.ResidueCoord, loops []secstruct.Loop, epsCollinear float64, mode Mode) []Surface {
	byIndex := make(map[int]basepair.Vec3, len(coords))
	for _, rc := range coords {
		byIndex[rc.ResIndex] = rc.Atom(basepair.C4)
	}

	surfaces := make([]Surface, 0, len(loops))
	for _, loop := range loops {
		cycle := cycleResidues(loop)

		var points []basepair.Vec3
		for _, r := range cycle {
			c, ok := byIndex[r]
			if !ok || c.IsNaN() {
				continue
			}
			points = append(points, c)
		}

		plane := fitPlane(points, epsCollinear)
		surf := Surface{LoopID: loop.ID, Plane: plane}

		if plane.Valid {
			vertices := make([]Vec2, len(points))
			for i, p := range points {
				vertices[i] = plane.Project(p)
			}
			surf.Polygon = buildPolygon(vertices)
			if mode == TriangulatedMode {
				surf.Triangles = fanTriangulate(plane, vertices)
			}
		}

		surfaces = append(surfaces, surf)
	}
	return surfaces
}

// cycleResidues reconstructs the ordered residue cycle of a loop: its own
// 5' endpoint, then for each child pair (in ascending 5' index) the
// boundary residues preceding it, the child's two endpoints, and finally
// the boundary residues preceding the loop's own 3' endpoint.
func cycleResidues(loop secstruct.Loop) []int {
	own := loop.ClosingPairs[0]
	children := loop.ClosingPairs[1:]
	boundary := loop.BoundaryResidues

	cycle := make([]int, 0, 2+2*len(children)+len(boundary))
	cycle = append(cycle, own.I)

	bi := 0
	consumeUpTo := func(limit int) {
		for bi < len(boundary) && boundary[bi] < limit {
			cycle = append(cycle, boundary[bi])
			bi++
		}
	}

	for _, child := range children {
		consumeUpTo(child.I)
		cycle = append(cycle, child.I, child.J)
	}
	consumeUpTo(own.J)
	cycle = append(cycle, own.J)
	return cycle
}

// fanTriangulate builds a fan of triangles from the polygon centroid over
// each ordered edge, producing n triangles for an n-vertex polygon.
func fanTriangulate(plane Plane, vertices []Vec2) []Triangle {
	n := len(vertices)
	if n < 3 {
		return nil
	}
	var centroid2 Vec2
	for _, v := range vertices {
		centroid2.X += v.X
		centroid2.Y += v.Y
	}
	centroid2.X /= float64(n)
	centroid2.Y /= float64(n)
	centroid3 := plane.Point(centroid2)

	triangles := make([]Triangle, n)
	for i := 0; i < n; i++ {
		a := plane.Point(vertices[i])
		b := plane.Point(vertices[(i+1)%n])
		triangles[i] = Triangle{A: centroid3, B: a, C: b}
	}
	return triangles
}
