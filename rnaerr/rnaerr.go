/*
Package rnaerr defines the structural error taxonomy surfaced by the
entanglement core: InvalidPairing, InvalidIndex, and InvalidParameter.

Degenerate geometry and missing atoms are handled locally by the packages
that encounter them (a surface is marked invalid, a segment is skipped) and
never reach this package - see surface and entangle.
*/
package rnaerr

import "fmt"

// Kind classifies the structural errors the core can raise. All three are
// fatal: the caller gets back enough context to identify the offending pair
// or residue and the pipeline halts.
type Kind int

const (
	// InvalidPairing marks a duplicate endpoint or a pair overlap that
	// MainLayer did not reduce away.
	InvalidPairing Kind = iota
	// InvalidIndex marks a residue or pair index outside [1, N].
	InvalidIndex
	// InvalidParameter marks a surface_mode / polyline_mode value, or a
	// dot-bracket/BPSEQ symbol, outside the set the core accepts.
	InvalidParameter
)

// String returns the name used in error messages.
func (k Kind) String() string {
	switch k {
	case InvalidPairing:
		return "InvalidPairing"
	case InvalidIndex:
		return "InvalidIndex"
	case InvalidParameter:
		return "InvalidParameter"
	default:
		return "Unknown"
	}
}

// Error is a structural error raised by the core. It always carries a Kind
// and a human-readable Msg, and may carry the offending residue index(es)
// when known.
type Error struct {
	Kind Kind
	Msg  string
	// ResA and ResB are the offending residue indices, when applicable.
	// ResB is 0 when only one residue is implicated.
	ResA, ResB int
	InnerErr   error
}

// Error returns a formatted error message naming the Kind and, when known,
// the offending residue indices.
func (e Error) Error() string {
	if e.ResA != 0 || e.ResB != 0 {
		return fmt.Sprintf("%v: %s (residues %d,%d)", e.Kind, e.Msg, e.ResA, e.ResB)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e Error) Unwrap() error {
	return e.InnerErr
}

// Pairing returns an InvalidPairing error naming the offending residues.
func Pairing(resA, resB int, format string, a ...any) error {
	return Error{Kind: InvalidPairing, Msg: fmt.Sprintf(format, a...), ResA: resA, ResB: resB}
}

// Index returns an InvalidIndex error naming the offending residue.
func Index(res int, format string, a ...any) error {
	return Error{Kind: InvalidIndex, Msg: fmt.Sprintf(format, a...), ResA: res}
}

// Parameter returns an InvalidParameter error.
func Parameter(format string, a ...any) error {
	return Error{Kind: InvalidParameter, Msg: fmt.Sprintf(format, a...)}
}
