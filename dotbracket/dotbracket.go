/*
Package dotbracket implements the two bit-exact secondary-structure formats
the core's collaborators exchange: dot-bracket notation and BPSEQ.

Dot-bracket parsing generalizes the teacher corpus's single-stack
secondary_structure/dot_bracket.go pairTable() (which only recognizes a
single `(`/`)` bracket type) to four independent per-bracket-type stacks, the
way the original Python source's secstruct2bpseq.parse_secstruct does it, so
that `(`, `[`, `{`, and `<` can each carry an independent pseudoknot layer.
*/
package dotbracket

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/rnaerr"
)

var openToClose = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

var closeToOpen = func() map[byte]byte {
	m := make(map[byte]byte, len(openToClose))
	for o, c := range openToClose {
		m[c] = o
	}
	return m
}()

func isUnpaired(c byte) bool {
	switch c {
	case '.', '-', 'x', 'X':
		return true
	default:
		return false
	}
}

// Parse reads a dot-bracket string into a base pair list. Each of `(`, `[`,
// `{`, `<` maintains its own stack, so `([)]`-style crossing layers are
// parsed independently rather than rejected as unbalanced. `.`, `-`, `x`,
// `X` denote unpaired positions; any other character is InvalidParameter.
// Pairs are returned in ascending order of their 5' index I.
func Parse(structure string) ([]basepair.BasePair, error) {
	stacks := make(map[byte][]int, len(openToClose))
	var pairs []basepair.BasePair

	for idx := 0; idx < len(structure); idx++ {
		c := structure[idx]
		pos := idx + 1 // 1-based
		switch {
		case isUnpaired(c):
			continue
		case openToClose[c] != 0:
			stacks[c] = append(stacks[c], pos)
		case closeToOpen[c] != 0:
			open := closeToOpen[c]
			stack := stacks[open]
			if len(stack) == 0 {
				return nil, rnaerr.Parameter("unbalanced dot-bracket: unexpected %q at position %d", c, pos)
			}
			i := stack[len(stack)-1]
			stacks[open] = stack[:len(stack)-1]
			pairs = append(pairs, basepair.BasePair{I: i, J: pos})
		default:
			return nil, rnaerr.Parameter("unsupported dot-bracket symbol %q at position %d", c, pos)
		}
	}

	for open, stack := range stacks {
		if len(stack) != 0 {
			return nil, rnaerr.Parameter("unbalanced dot-bracket: missing %q", openToClose[open])
		}
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].I < pairs[b].I })
	return pairs, nil
}

// Format renders a non-crossing pair list of length n as dot-bracket
// notation using a single `(`/`)` layer. Crossing pairs cannot be expressed
// with a single bracket type and return InvalidPairing; reduce with
// basepair.MainLayer first if the input may contain pseudoknots.
func Format(pairs []basepair.BasePair, n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		out[i] = '.'
	}
	for _, bp := range pairs {
		if bp.I < 1 || bp.J > n || bp.I >= bp.J {
			return "", rnaerr.Index(bp.I, "base pair (%d,%d) out of range [1,%d]", bp.I, bp.J, n)
		}
		if out[bp.I-1] != '.' || out[bp.J-1] != '.' {
			return "", rnaerr.Pairing(bp.I, bp.J, "residue endpoint reused while formatting dot-bracket")
		}
		out[bp.I-1] = '('
		out[bp.J-1] = ')'
	}
	if crossed := firstCrossing(pairs); crossed != nil {
		return "", rnaerr.Pairing(crossed.I, crossed.J, "pair set contains a crossing; reduce with MainLayer first")
	}
	return string(out), nil
}

func firstCrossing(pairs []basepair.BasePair) *basepair.BasePair {
	for a := range pairs {
		for b := range pairs {
			if a == b {
				continue
			}
			if pairs[a].Crosses(pairs[b]) {
				return &pairs[a]
			}
		}
	}
	return nil
}

// ParseBPSEQ reads BPSEQ-format lines (whitespace-separated `index base
// partner`, partner 0 if unpaired) into a base pair list, emitting a pair
// only once, for the line with the smaller index (j > i).
func ParseBPSEQ(lines []string) ([]basepair.BasePair, error) {
	var pairs []basepair.BasePair
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, rnaerr.Parameter("bpseq line %d: expected 3 fields, got %d: %q", lineNo+1, len(fields), line)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, rnaerr.Parameter("bpseq line %d: invalid index %q", lineNo+1, fields[0])
		}
		j, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, rnaerr.Parameter("bpseq line %d: invalid partner %q", lineNo+1, fields[2])
		}
		if j > i {
			pairs = append(pairs, basepair.BasePair{I: i, J: j})
		}
	}
	return pairs, nil
}

// FormatBPSEQ renders sequence and pairs as BPSEQ lines, one per residue.
// seq must have length n; pairs need not be non-crossing, since BPSEQ has
// no single-layer bracket limitation.
func FormatBPSEQ(seq string, pairs []basepair.BasePair, n int) ([]string, error) {
	if len(seq) != n {
		return nil, rnaerr.Parameter("sequence length %d does not match n=%d", len(seq), n)
	}
	partner := make([]int, n+1)
	for _, bp := range pairs {
		if bp.I < 1 || bp.J > n || bp.I >= bp.J {
			return nil, rnaerr.Index(bp.I, "base pair (%d,%d) out of range [1,%d]", bp.I, bp.J, n)
		}
		partner[bp.I] = bp.J
		partner[bp.J] = bp.I
	}
	lines := make([]string, n)
	for idx := 1; idx <= n; idx++ {
		lines[idx-1] = fmt.Sprintf("%d %c %d", idx, seq[idx-1], partner[idx])
	}
	return lines, nil
}
