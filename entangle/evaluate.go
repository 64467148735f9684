package entangle

import (
	"math"
	"sort"
	"sync"

	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/rnaerr"
	"github.com/TimothyStiles/rnaknot/secstruct"
	"github.com/TimothyStiles/rnaknot/surface"
)

// Evaluate runs the full piercing test: build the backbone polyline from
// coords per params.PolylineMode, then for every surface test every segment
// that does not belong to that surface's own loop cycle.
//
// surfaces and loops must correspond index-for-index with the same loop_id;
// callers normally obtain both from surface.Build against the same loop
// slice from secstruct.BuildLoops.
func Evaluate(coords []basepair.ResidueCoord, loops []secstruct.Loop, surfaces []surface.Surface, params Params) (EntanglementResult, error) {
	if params.PolylineMode != SingleAtomPolyline && params.PolylineMode != AlternatingPolyline {
		return EntanglementResult{}, rnaerr.Parameter("unsupported polyline mode %d", params.PolylineMode)
	}

	polyline := buildPolyline(coords, params.PolylineMode)
	members := make(map[int]map[int]bool, len(loops))
	for _, loop := range loops {
		members[loop.ID] = loopMembers(loop)
	}

	surfByLoop := make(map[int]surface.Surface, len(surfaces))
	for _, s := range surfaces {
		surfByLoop[s.LoopID] = s
	}

	loopIDs := make([]int, 0, len(surfaces))
	for _, s := range surfaces {
		loopIDs = append(loopIDs, s.LoopID)
	}
	sort.Ints(loopIDs)

	if !params.Parallel {
		var hits []Hit
		for _, id := range loopIDs {
			hits = append(hits, evaluateSurface(surfByLoop[id], polyline, members[id], params)...)
		}
		return EntanglementResult{K: len(hits), Hits: hits}, nil
	}

	results := make([][]Hit, len(loopIDs))
	var wg sync.WaitGroup
	for idx, id := range loopIDs {
		wg.Add(1)
		go func(idx, id int) {
			defer wg.Done()
			results[idx] = evaluateSurface(surfByLoop[id], polyline, members[id], params)
		}(idx, id)
	}
	wg.Wait()

	var hits []Hit
	for _, r := range results {
		hits = append(hits, r...)
	}
	return EntanglementResult{K: len(hits), Hits: hits}, nil
}

func loopMembers(loop secstruct.Loop) map[int]bool {
	members := make(map[int]bool, len(loop.ClosingPairs)*2+len(loop.BoundaryResidues))
	for _, bp := range loop.ClosingPairs {
		members[bp.I] = true
		members[bp.J] = true
	}
	for _, r := range loop.BoundaryResidues {
		members[r] = true
	}
	return members
}

func buildPolyline(coords []basepair.ResidueCoord, mode PolylineMode) []segment {
	var verts []vertex
	for _, rc := range coords {
		switch mode {
		case SingleAtomPolyline:
			verts = append(verts, vertex{res: rc.ResIndex, atom: basepair.C4, pos: rc.Atom(basepair.C4)})
		case AlternatingPolyline:
			verts = append(verts, vertex{res: rc.ResIndex, atom: basepair.P, pos: rc.Atom(basepair.P)})
			verts = append(verts, vertex{res: rc.ResIndex, atom: basepair.C4, pos: rc.Atom(basepair.C4)})
		}
	}
	segs := make([]segment, 0, len(verts)-1)
	for i := 0; i+1 < len(verts); i++ {
		segs = append(segs, segment{a: verts[i], b: verts[i+1]})
	}
	return segs
}

func evaluateSurface(s surface.Surface, polyline []segment, members map[int]bool, params Params) []Hit {
	if !s.Plane.Valid {
		return nil
	}
	var hits []Hit
	for _, seg := range polyline {
		if members[seg.a.res] || members[seg.b.res] {
			continue
		}
		if seg.a.pos.IsNaN() || seg.b.pos.IsNaN() {
			continue
		}
		var point basepair.Vec3
		var ok bool
		if len(s.Triangles) > 0 {
			point, ok = triangleFanHit(s.Triangles, seg, params.EpsPlane, params.EpsPolygon)
		} else {
			point, ok = planarPolygonHit(s, seg, params.EpsPlane, params.EpsPolygon)
		}
		if ok {
			hits = append(hits, Hit{
				LoopID: s.LoopID,
				ResA:   seg.a.res, AtomA: seg.a.atom,
				ResB: seg.b.res, AtomB: seg.b.atom,
				Point: point,
			})
		}
	}
	return hits
}

// triangleFanHit runs Moller-Trumbore segment-triangle intersection against
// each triangle of a mode-1 surface, stopping at the first hit.
func triangleFanHit(triangles []surface.Triangle, seg segment, epsPlane, epsPolygon float64) (basepair.Vec3, bool) {
	dir := seg.b.pos.Sub(seg.a.pos)
	for _, tri := range triangles {
		edge1 := tri.B.Sub(tri.A)
		edge2 := tri.C.Sub(tri.A)
		pvec := dir.Cross(edge2)
		det := edge1.Dot(pvec)
		if math.Abs(det) < epsPlane {
			continue // segment parallel to triangle plane
		}
		invDet := 1 / det
		tvec := seg.a.pos.Sub(tri.A)
		u := tvec.Dot(pvec) * invDet
		if u < -epsPolygon || u > 1+epsPolygon {
			continue
		}
		qvec := tvec.Cross(edge1)
		v := dir.Dot(qvec) * invDet
		if v < -epsPolygon || u+v > 1+epsPolygon {
			continue
		}
		t := edge2.Dot(qvec) * invDet
		if t <= epsPlane || t >= 1-epsPlane {
			continue // exclude endpoint-grazing
		}
		return seg.a.pos.Add(dir.Scale(t)), true
	}
	return basepair.Vec3{}, false
}

// planarPolygonHit tests a segment against a mode-0 best-fit-plane surface:
// signed distances of both endpoints must straddle the plane with both
// magnitudes above epsPlane, and the projected crossing point must fall
// inside the polygon.
func planarPolygonHit(s surface.Surface, seg segment, epsPlane, epsPolygon float64) (basepair.Vec3, bool) {
	da := s.Plane.SignedDistance(seg.a.pos)
	db := s.Plane.SignedDistance(seg.b.pos)
	if math.Abs(da) <= epsPlane || math.Abs(db) <= epsPlane {
		return basepair.Vec3{}, false
	}
	if (da > 0) == (db > 0) {
		return basepair.Vec3{}, false
	}
	if !s.Polygon.Valid {
		return basepair.Vec3{}, false
	}
	t := da / (da - db)
	point := seg.a.pos.Add(seg.b.pos.Sub(seg.a.pos).Scale(t))
	p2 := s.Plane.Project(point)
	if !surface.PointInPolygon(s.Polygon, p2, epsPolygon) {
		return basepair.Vec3{}, false
	}
	return point, true
}
