/*
Package rnaknot ties together the four pipeline stages - basepair.MainLayer,
secstruct.BuildLoops, surface.Build, and entangle.Evaluate - into the single
entry point most callers want: hand it residue coordinates, a base pair
list, and an EvalParams, and it returns the EntanglementResult plus the
intermediate Loop and Surface slices a caller may want for introspection or
visualisation overlays.

Per-surface evaluation can run concurrently through EvalParams.Parallel, and
the cmd/rnaknot command exposes the same pipeline on the command line.

We've made great progress and are always looking for more support!
*/
package rnaknot

import (
	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/entangle"
	"github.com/TimothyStiles/rnaknot/rnaerr"
	"github.com/TimothyStiles/rnaknot/secstruct"
	"github.com/TimothyStiles/rnaknot/surface"
)

// EvalParams collects every knob the pipeline exposes, re-stated here so a
// caller configures one struct instead of threading mode/epsilon arguments
// through each stage.
type EvalParams struct {
	SurfaceMode   surface.Mode
	PolylineMode  entangle.PolylineMode
	MainLayerOnly bool
	EpsPlane      float64
	EpsPolygon    float64
	EpsCollinear  float64
	Parallel      bool
}

// DefaultEvalParams mirrors the external-interface default epsilon
// envelope: eps_plane=1e-2, eps_polygon=1e-2, eps_collinear=1e-6.
func DefaultEvalParams() EvalParams {
	return EvalParams{
		SurfaceMode:  surface.PlaneMode,
		PolylineMode: entangle.SingleAtomPolyline,
		EpsPlane:     1e-2,
		EpsPolygon:   1e-2,
		EpsCollinear: 1e-6,
	}
}

// Result bundles the final EntanglementResult with the intermediate Loop
// and Surface slices the pipeline produced along the way.
type Result struct {
	Loops    []secstruct.Loop
	Surfaces []surface.Surface
	Entangle entangle.EntanglementResult
}

// Evaluate runs the full pipeline: MainLayer (if requested) -> BuildLoops ->
// Build surfaces -> Evaluate entanglement. n is the number of residues the
// pair indices are defined over; it need not equal len(coords), since
// coords may omit residues whose atoms were unreadable upstream.
func Evaluate(coords []basepair.ResidueCoord, pairs []basepair.BasePair, n int, params EvalParams) (Result, error) {
	if params.SurfaceMode != surface.PlaneMode && params.SurfaceMode != surface.TriangulatedMode {
		return Result{}, rnaerr.Parameter("unsupported surface mode %d", params.SurfaceMode)
	}

	loops, err := secstruct.BuildLoops(pairs, n, params.MainLayerOnly)
	if err != nil {
		return Result{}, err
	}

	surfaces := surface.Build(coords, loops, params.EpsCollinear, params.SurfaceMode)

	entResult, err := entangle.Evaluate(coords, loops, surfaces, entangle.Params{
		PolylineMode:  params.PolylineMode,
		MainLayerOnly: params.MainLayerOnly,
		EpsPlane:      params.EpsPlane,
		EpsPolygon:    params.EpsPolygon,
		EpsCollinear:  params.EpsCollinear,
		Parallel:      params.Parallel,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Loops: loops, Surfaces: surfaces, Entangle: entResult}, nil
}
