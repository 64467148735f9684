package rnaknot

import (
	"math"
	"testing"

	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/entangle"
	"github.com/TimothyStiles/rnaknot/surface"
)

// helicalCoords scatters C4' atoms on a regular helical spiral, matching
// the "regular helical spiral" fixtures described for scenario 1.
func helicalCoords(n int) []basepair.ResidueCoord {
	coords := make([]basepair.ResidueCoord, n)
	for i := 0; i < n; i++ {
		rc := basepair.NewResidueCoord(i + 1)
		angle := float64(i) * 0.6
		rc.Atoms[basepair.C4] = basepair.Vec3{X: math.Cos(angle), Y: math.Sin(angle), Z: float64(i) * 0.3}
		coords[i] = rc
	}
	return coords
}

// TestEvaluateSimpleHairpinNoKnot is scenario 1.
func TestEvaluateSimpleHairpinNoKnot(t *testing.T) {
	n := 10
	coords := helicalCoords(n)
	pairs := []basepair.BasePair{{I: 1, J: 10}, {I: 2, J: 9}, {I: 3, J: 8}}

	result, err := Evaluate(coords, pairs, n, DefaultEvalParams())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(result.Loops) != 1 {
		t.Fatalf("Evaluate produced %d loops, want 1", len(result.Loops))
	}
	if result.Entangle.K != 0 {
		t.Errorf("K = %d, want 0 for a non-threaded hairpin", result.Entangle.K)
	}
}

// TestEvaluateDegeneratePlanarLoop is scenario 4.
func TestEvaluateDegeneratePlanarLoop(t *testing.T) {
	n := 6
	coords := make([]basepair.ResidueCoord, n)
	for i := range coords {
		rc := basepair.NewResidueCoord(i + 1)
		rc.Atoms[basepair.C4] = basepair.Vec3{X: float64(i), Y: 0, Z: 0}
		coords[i] = rc
	}
	pairs := []basepair.BasePair{{I: 1, J: 6}}

	result, err := Evaluate(coords, pairs, n, DefaultEvalParams())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(result.Loops) != 1 || result.Loops[0].Kind.String() != "HAIRPIN" {
		t.Fatalf("Evaluate produced loops %v, want a single HAIRPIN", result.Loops)
	}
	if result.Surfaces[0].Plane.Valid {
		t.Errorf("collinear loop should have an invalid plane")
	}
	if result.Entangle.K != 0 {
		t.Errorf("K = %d, want 0 for a degenerate planar loop", result.Entangle.K)
	}
}

// TestEvaluateHTypePseudoknotThreading is scenario 3: a crossing pair
// dropped by MainLayer, with residue 11 threaded through the (1,8) hairpin.
func TestEvaluateHTypePseudoknotThreading(t *testing.T) {
	n := 16
	coords := make([]basepair.ResidueCoord, n)
	for i := range coords {
		rc := basepair.NewResidueCoord(i + 1)
		coords[i] = rc
	}

	// Build a flat octagonal hairpin loop (1..8) in the XY plane at Z=0,
	// and route residues 9-16 so that residue 11 passes straight through
	// the hairpin's plane inside its boundary polygon.
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		coords[i].Atoms[basepair.C4] = basepair.Vec3{X: 2 * math.Cos(angle), Y: 2 * math.Sin(angle), Z: 0}
	}
	for i := 8; i < 16; i++ {
		coords[i].Atoms[basepair.C4] = basepair.Vec3{X: 10 + float64(i), Y: 10, Z: float64(i - 8)}
	}
	// residue 11 (index 10) pierces straight through the hairpin's plane,
	// residues 10 and 12 stay off to either side of Z=0.
	coords[9].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: -1}
	coords[10].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: 0.01}
	coords[11].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: 1}

	pairs := []basepair.BasePair{
		{I: 1, J: 8}, {I: 2, J: 7}, {I: 3, J: 6},
		{I: 10, J: 16}, {I: 11, J: 15}, {I: 12, J: 14},
		{I: 4, J: 12},
	}

	params := DefaultEvalParams()
	params.MainLayerOnly = true
	result, err := Evaluate(coords, pairs, n, params)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if result.Entangle.K < 1 {
		t.Fatalf("K = %d, want at least 1 hit from the threaded segment", result.Entangle.K)
	}

	var hairpinLoopID int
	for _, loop := range result.Loops {
		if len(loop.ClosingPairs) == 1 && loop.ClosingPairs[0] == (basepair.BasePair{I: 1, J: 8}) {
			hairpinLoopID = loop.ID
		}
	}
	foundHairpinHit := false
	for _, hit := range result.Entangle.Hits {
		if hit.LoopID == hairpinLoopID {
			foundHairpinHit = true
		}
	}
	if !foundHairpinHit {
		t.Errorf("expected at least one hit against the (1,8) hairpin loop, got hits %v", result.Entangle.Hits)
	}
}

// TestEvaluateMissingPAtomsMonotone is scenario 5: polyline_mode=1 with
// missing P atoms must report K no greater than polyline_mode=0 on the same
// coordinates.
func TestEvaluateMissingPAtomsMonotone(t *testing.T) {
	n := 16
	coords := make([]basepair.ResidueCoord, n)
	for i := range coords {
		rc := basepair.NewResidueCoord(i + 1)
		coords[i] = rc
	}
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		coords[i].Atoms[basepair.C4] = basepair.Vec3{X: 2 * math.Cos(angle), Y: 2 * math.Sin(angle), Z: 0}
	}
	for i := 8; i < 16; i++ {
		coords[i].Atoms[basepair.C4] = basepair.Vec3{X: 10 + float64(i), Y: 10, Z: float64(i - 8)}
	}
	coords[9].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: -1}
	coords[10].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: 0.01}
	coords[11].Atoms[basepair.C4] = basepair.Vec3{X: 0.1, Y: 0.1, Z: 1}
	// P atoms are left as NaN (NewResidueCoord default) throughout.

	pairs := []basepair.BasePair{
		{I: 1, J: 8}, {I: 2, J: 7}, {I: 3, J: 6},
		{I: 10, J: 16}, {I: 11, J: 15}, {I: 12, J: 14},
		{I: 4, J: 12},
	}

	paramsMode0 := DefaultEvalParams()
	paramsMode0.MainLayerOnly = true
	resultMode0, err := Evaluate(coords, pairs, n, paramsMode0)
	if err != nil {
		t.Fatalf("Evaluate (mode 0) returned error: %v", err)
	}

	paramsMode1 := paramsMode0
	paramsMode1.PolylineMode = entangle.AlternatingPolyline
	resultMode1, err := Evaluate(coords, pairs, n, paramsMode1)
	if err != nil {
		t.Fatalf("Evaluate (mode 1) returned error: %v", err)
	}

	if resultMode1.Entangle.K > resultMode0.Entangle.K {
		t.Errorf("K with missing P atoms (polyline_mode=1) = %d, want <= mode-0 K = %d",
			resultMode1.Entangle.K, resultMode0.Entangle.K)
	}
}

// TestEvaluateRigidMotionInvariance is invariant 5.
func TestEvaluateRigidMotionInvariance(t *testing.T) {
	n := 10
	coords := helicalCoords(n)
	pairs := []basepair.BasePair{{I: 1, J: 10}, {I: 2, J: 9}, {I: 3, J: 8}}

	result1, err := Evaluate(coords, pairs, n, DefaultEvalParams())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	translated := make([]basepair.ResidueCoord, n)
	offset := basepair.Vec3{X: 100, Y: -50, Z: 7}
	for i, rc := range coords {
		moved := rc
		moved.Atoms[basepair.C4] = rc.Atoms[basepair.C4].Add(offset)
		translated[i] = moved
	}
	result2, err := Evaluate(translated, pairs, n, DefaultEvalParams())
	if err != nil {
		t.Fatalf("Evaluate (translated) returned error: %v", err)
	}

	if result1.Entangle.K != result2.Entangle.K {
		t.Errorf("K changed under translation: %d vs %d", result1.Entangle.K, result2.Entangle.K)
	}
}

func TestEvaluateSurfaceModeTriangulated(t *testing.T) {
	n := 10
	coords := helicalCoords(n)
	pairs := []basepair.BasePair{{I: 1, J: 10}, {I: 2, J: 9}, {I: 3, J: 8}}

	params := DefaultEvalParams()
	params.SurfaceMode = surface.TriangulatedMode
	result, err := Evaluate(coords, pairs, n, params)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(result.Surfaces[0].Triangles) == 0 {
		t.Errorf("triangulated mode should produce a non-empty triangle fan")
	}
}
