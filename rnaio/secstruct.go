package rnaio

import (
	"bufio"
	"io"
	"strings"

	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/dotbracket"
)

// ReadSecstruct reads a dot-bracket structure, skipping blank lines and lines
// starting with '#', joins the remaining lines (each trimmed of surrounding
// whitespace) into one structure string, and parses it into base pairs. It
// returns the pairs and the structure length.
func ReadSecstruct(r io.Reader) ([]basepair.BasePair, int, error) {
	scanner := bufio.NewScanner(r)
	var b strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	structure := b.String()
	pairs, err := dotbracket.Parse(structure)
	if err != nil {
		return nil, 0, err
	}
	return pairs, len(structure), nil
}

// ReadBPSEQ reads a BPSEQ-format stream into a base pair list and the
// residue count (the number of non-comment, non-blank lines read).
func ReadBPSEQ(r io.Reader) ([]basepair.BasePair, int, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	pairs, err := dotbracket.ParseBPSEQ(lines)
	if err != nil {
		return nil, 0, err
	}
	return pairs, n, nil
}

// WriteBPSEQ writes a BPSEQ-format stream for seq and pairs.
func WriteBPSEQ(w io.Writer, seq string, pairs []basepair.BasePair) error {
	lines, err := dotbracket.FormatBPSEQ(seq, pairs, len(seq))
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
