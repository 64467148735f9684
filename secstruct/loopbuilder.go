package secstruct

import (
	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/rnaerr"
)

// frame is the in-progress state of one loop while its stem is still open,
// kept on a stack keyed by nesting depth.
type frame struct {
	pair     basepair.BasePair
	children []basepair.BasePair
	boundary []int
}

// BuildLoops partitions the secondary structure's paired/unpaired residues
// into Loops, covering every unpaired residue that lies inside some pair.
// Residues outside every pair form the implicit exterior region and are not
// emitted as a Loop.
//
// With mainLayerOnly set, pairs is first reduced by basepair.MainLayer;
// calling BuildLoops with mainLayerOnly on an already-reduced pair list is a
// no-op, since MainLayer is itself idempotent.
//
// Loop IDs are assigned in DFS post-order of the enclosing pairs, starting
// from 1, which falls out naturally of the left-to-right scan below: a pair
// always closes (and is assigned its ID) after every pair nested inside it.
func BuildLoops(pairs []basepair.BasePair, n int, mainLayerOnly bool) ([]Loop, error) {
	if mainLayerOnly {
		reduced, err := basepair.MainLayer(pairs, n)
		if err != nil {
			return nil, err
		}
		pairs = reduced
	}

	partner := make([]int, n+1)
	bpType := make([]string, n+1)
	for _, bp := range pairs {
		if bp.I < 1 || bp.I > n || bp.J < 1 || bp.J > n {
			return nil, rnaerr.Index(bp.I, "base pair (%d,%d) out of range [1,%d]", bp.I, bp.J, n)
		}
		if bp.I >= bp.J {
			return nil, rnaerr.Index(bp.I, "base pair (%d,%d) must have i < j", bp.I, bp.J)
		}
		if partner[bp.I] != 0 || partner[bp.J] != 0 {
			return nil, rnaerr.Pairing(bp.I, bp.J, "residue endpoint reused while building loops")
		}
		partner[bp.I] = bp.J
		partner[bp.J] = bp.I
		bpType[bp.I] = bp.BPType
	}

	var stack []*frame
	var loops []Loop
	nextID := 1

	for i := 1; i <= n; i++ {
		switch {
		case partner[i] == 0:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.boundary = append(top.boundary, i)
			}
		case partner[i] > i:
			// i opens a new pair.
			f := &frame{pair: basepair.BasePair{I: i, J: partner[i], BPType: bpType[i]}}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.children = append(top.children, f.pair)
			}
			stack = append(stack, f)
		default:
			// i closes a pair; it must close the innermost open frame.
			if len(stack) == 0 || stack[len(stack)-1].pair.J != i {
				return nil, rnaerr.Pairing(partner[i], i, "overlapping pairs detected while building loops")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			loop := Loop{
				ID:               nextID,
				ClosingPairs:     append([]basepair.BasePair{top.pair}, top.children...),
				BoundaryResidues: top.boundary,
			}
			loop.Kind = classify(len(top.children), len(top.boundary))
			loops = append(loops, loop)
			nextID++
		}
	}

	if len(stack) != 0 {
		return nil, rnaerr.Pairing(stack[len(stack)-1].pair.I, stack[len(stack)-1].pair.J,
			"unclosed pair while building loops")
	}

	return loops, nil
}

func classify(numChildren, numBoundary int) LoopKind {
	switch {
	case numChildren == 0:
		return HAIRPIN
	case numChildren == 1 && numBoundary == 0:
		return STACKING
	case numChildren == 1:
		return INTERNAL
	default:
		return MULTI
	}
}
