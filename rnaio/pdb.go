package rnaio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/TimothyStiles/rnaknot/basepair"
)

// LoadPDB reads the first model of the first chain's ATOM records from a
// legacy fixed-column PDB file, keeping only the P and C4' backbone atoms,
// and returns one ResidueCoord per residue in file order, renumbered 1..N.
//
// No collaborator in the corpus touches the legacy PDB column format (only
// mmCIF, via package cif); the fixed-width field layout is read directly off
// the wwPDB specification rather than through a third-party reader (see
// DESIGN.md).
func LoadPDB(r io.Reader) ([]basepair.ResidueCoord, error) {
	scanner := bufio.NewScanner(r)

	firstChain := byte(0)
	seenModel := false
	byResidue := make(map[int]*basepair.ResidueCoord)
	var order []int

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "MODEL") {
			if seenModel {
				break
			}
			seenModel = true
			continue
		}
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}
		if len(line) < 54 {
			continue
		}

		atomName := strings.TrimSpace(line[12:16])
		kind, ok := atomKind(atomName)
		if !ok {
			continue
		}

		chain := byte(0)
		if len(line) > 21 {
			chain = line[21]
		}
		if firstChain == 0 {
			firstChain = chain
		} else if chain != firstChain {
			continue
		}

		resSeq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			continue
		}
		x, errx := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
		y, erry := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
		z, errz := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
		if errx != nil || erry != nil || errz != nil {
			continue
		}

		rc, ok := byResidue[resSeq]
		if !ok {
			nrc := basepair.NewResidueCoord(resSeq)
			rc = &nrc
			byResidue[resSeq] = rc
			order = append(order, resSeq)
		}
		rc.Atoms[kind] = basepair.Vec3{X: x, Y: y, Z: z}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	out := make([]basepair.ResidueCoord, len(order))
	for i, resSeq := range order {
		rc := *byResidue[resSeq]
		rc.ResIndex = i + 1
		out[i] = rc
	}
	return out, nil
}
