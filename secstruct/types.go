/*
Package secstruct decomposes a secondary structure's base pairs into the
closed loops (hairpin, internal/bulge, multi, stacking) that the
SurfaceBuilder spans and the EntanglementEvaluator probes for piercings.

It is the spiritual successor of the teacher corpus's secondary_structure
package: where that package builds a recursive Hairpin/MultiLoop/Stem tree
keyed on free-energy bookkeeping, this package builds a flat Loop slice keyed
on the 3D entanglement question - which residues bound each loop's surface,
and which pairs close it.
*/
package secstruct

import "github.com/TimothyStiles/rnaknot/basepair"

// LoopKind classifies a Loop by how many base pairs close it and whether it
// has any unpaired boundary residues.
type LoopKind int

const (
	// HAIRPIN is a loop with no enclosed child pairs.
	HAIRPIN LoopKind = iota
	// INTERNAL is a loop with exactly one child pair and at least one
	// unpaired boundary residue (covers bulges).
	INTERNAL
	// MULTI is a loop with two or more child pairs.
	MULTI
	// STACKING is a loop with exactly one child pair and no unpaired
	// boundary residues at all.
	STACKING
)

// String returns the loop kind's name.
func (k LoopKind) String() string {
	switch k {
	case HAIRPIN:
		return "HAIRPIN"
	case INTERNAL:
		return "INTERNAL"
	case MULTI:
		return "MULTI"
	case STACKING:
		return "STACKING"
	default:
		return "UNKNOWN"
	}
}

// Loop is a closed region of the secondary structure, bounded by one or
// more closing base pairs and the unpaired residues on its cycle.
//
// ClosingPairs always has the loop's own closing pair first, followed by its
// direct children in ascending order of their 5' index. BoundaryResidues are
// the unpaired residues on the loop's cycle, in sequence order; no residue
// appears in more than one Loop's BoundaryResidues.
type Loop struct {
	ID               int
	Kind             LoopKind
	ClosingPairs     []basepair.BasePair
	BoundaryResidues []int
}
