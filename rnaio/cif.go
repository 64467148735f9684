/*
Package rnaio adapts the file formats the core's collaborators hand it (PDB,
mmCIF, secondary-structure notation) into the plain basepair.ResidueCoord and
basepair.BasePair slices package basepair, secstruct, surface, and entangle
operate on. None of this package's parsing logic feeds back into the core;
it is the thin external-collaborator layer the specification calls out as
out of scope for the core itself.
*/
package rnaio

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/io/pdbx/cif"
)

// LoadCIF reads the first model of the first chain's ATOM records from an
// mmCIF file, keeping only the P and C4' backbone atoms, and returns one
// ResidueCoord per residue in ascending seq-id order, renumbered 1..N.
// Residues missing either atom keep that atom slot NaN.
//
// mmCIF tag casing is not standardized across writers (wwPDB emits
// "_atom_site.Cartn_x", some tools emit "_atom_site.cartn_x"); tag lookups
// below are case-insensitive to tolerate both.
func LoadCIF(r io.Reader) ([]basepair.ResidueCoord, error) {
	parsed, err := cif.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("rnaio: parsing mmCIF: %w", err)
	}

	var block cif.DataBlock
	for _, b := range parsed.DataBlocks {
		block = b
		break
	}
	if block.DataItems == nil {
		return nil, fmt.Errorf("rnaio: mmCIF file has no data block")
	}
	items := normalizeTags(block)

	atomID, ok := loopColumn(items, "_atom_site.label_atom_id")
	if !ok {
		return nil, fmt.Errorf("rnaio: mmCIF file has no _atom_site.label_atom_id loop")
	}
	chain, hasChain := loopColumn(items, "_atom_site.label_asym_id")
	if !hasChain {
		chain, hasChain = loopColumn(items, "_atom_site.auth_asym_id")
	}
	seqID, hasSeq := loopColumn(items, "_atom_site.label_seq_id")
	if !hasSeq {
		seqID, hasSeq = loopColumn(items, "_atom_site.auth_seq_id")
	}
	x, _ := loopColumn(items, "_atom_site.cartn_x")
	y, _ := loopColumn(items, "_atom_site.cartn_y")
	z, _ := loopColumn(items, "_atom_site.cartn_z")
	model, hasModel := loopColumn(items, "_atom_site.pdbx_pdb_model_num")
	group, hasGroup := loopColumn(items, "_atom_site.group_pdb")

	if !hasSeq || x == nil || y == nil || z == nil {
		return nil, fmt.Errorf("rnaio: mmCIF _atom_site loop missing required coordinate columns")
	}

	firstChain := ""
	firstModel := ""
	byResidue := make(map[int]*basepair.ResidueCoord)

	for row := range atomID {
		if hasGroup && anyToString(group[row]) != "ATOM" {
			continue
		}
		kind, ok := atomKind(anyToString(atomID[row]))
		if !ok {
			continue
		}
		if hasChain {
			c := anyToString(chain[row])
			if firstChain == "" {
				firstChain = c
			} else if c != firstChain {
				continue
			}
		}
		if hasModel {
			m := anyToString(model[row])
			if firstModel == "" {
				firstModel = m
			} else if m != firstModel {
				continue
			}
		}

		seq, err := anyToInt(seqID[row])
		if err != nil {
			continue
		}
		px, errx := anyToFloat(x[row])
		py, erry := anyToFloat(y[row])
		pz, errz := anyToFloat(z[row])
		if errx != nil || erry != nil || errz != nil {
			continue
		}

		rc, ok := byResidue[seq]
		if !ok {
			nrc := basepair.NewResidueCoord(seq)
			rc = &nrc
			byResidue[seq] = rc
		}
		rc.Atoms[kind] = basepair.Vec3{X: px, Y: py, Z: pz}
	}

	return renumber(byResidue), nil
}

func atomKind(name string) (basepair.AtomKind, bool) {
	switch name {
	case "P":
		return basepair.P, true
	case "C4'", "C4*":
		return basepair.C4, true
	default:
		return 0, false
	}
}

// renumber sorts residues by their original seq id and reassigns 1-based
// indices in that order, per the core's 1-based, loader-defined indexing
// convention.
func renumber(byResidue map[int]*basepair.ResidueCoord) []basepair.ResidueCoord {
	seqIDs := make([]int, 0, len(byResidue))
	for seq := range byResidue {
		seqIDs = append(seqIDs, seq)
	}
	sort.Ints(seqIDs)

	out := make([]basepair.ResidueCoord, len(seqIDs))
	for i, seq := range seqIDs {
		rc := *byResidue[seq]
		rc.ResIndex = i + 1
		out[i] = rc
	}
	return out
}

// normalizeTags returns block's DataItems keyed by lowercased tag, so
// lookups are insensitive to the tag casing a particular mmCIF writer used.
func normalizeTags(block cif.DataBlock) map[string]any {
	items := make(map[string]any, len(block.DataItems))
	for tag, v := range block.DataItems {
		items[strings.ToLower(tag)] = v
	}
	return items
}

func loopColumn(items map[string]any, tag string) ([]any, bool) {
	v, ok := items[strings.ToLower(tag)]
	if !ok {
		return nil, false
	}
	col, ok := v.([]any)
	if !ok {
		return []any{v}, true
	}
	return col, true
}

func anyToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case cif.SpecialValue:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func anyToInt(v any) (int, error) {
	switch t := v.(type) {
	case int64:
		return int(t), nil
	case uint64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("rnaio: cannot convert %v to int", v)
	}
}

func anyToFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return math.NaN(), fmt.Errorf("rnaio: cannot convert %v to float64", v)
	}
}
