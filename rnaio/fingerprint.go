package rnaio

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/TimothyStiles/rnaknot/basepair"
	"lukechampine.com/blake3"
)

// Fingerprint builds a deterministic content hash over a loaded structure's
// coordinates and base pairs, for use as a provenance or cache-key field
// alongside an EntanglementResult. Two loads of the same residue coordinates
// and pairing (regardless of source file format or on-disk column order)
// produce the same fingerprint.
//
// Modeled on seqhash.Hash's "canonicalize to a deterministic string, then
// blake3.Sum256, then hex-encode" shape, versioned the same way ("v1_...").
func Fingerprint(coords []basepair.ResidueCoord, pairs []basepair.BasePair) string {
	var b strings.Builder
	for _, rc := range coords {
		fmt.Fprintf(&b, "%d:%v;", rc.ResIndex, rc.Atoms)
	}
	b.WriteByte('|')
	for _, bp := range pairs {
		fmt.Fprintf(&b, "%d-%d:%s;", bp.I, bp.J, bp.BPType)
	}

	sum := blake3.Sum256([]byte(b.String()))
	return "v1_" + hex.EncodeToString(sum[:])
}
