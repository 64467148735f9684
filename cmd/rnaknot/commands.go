package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/TimothyStiles/rnaknot"
	"github.com/TimothyStiles/rnaknot/basepair"
	"github.com/TimothyStiles/rnaknot/dotbracket"
	"github.com/TimothyStiles/rnaknot/entangle"
	"github.com/TimothyStiles/rnaknot/rnaio"
	"github.com/TimothyStiles/rnaknot/surface"
)

// evaluateCommand loads coordinates and a secondary structure, runs the
// full pipeline, and prints either a one-line summary or the full
// EntanglementResult as JSON.
func evaluateCommand(c *cli.Context) error {
	coords, err := loadCoords(c.String("coords"), c.String("coords-format"))
	if err != nil {
		return fmt.Errorf("loading coordinates: %w", err)
	}

	pairs, n, err := loadSecstruct(c.String("secstruct"), c.String("secstruct-format"))
	if err != nil {
		return fmt.Errorf("loading secondary structure: %w", err)
	}

	params := rnaknot.EvalParams{
		SurfaceMode:   surface.Mode(c.Int("surface-mode")),
		PolylineMode:  entangle.PolylineMode(c.Int("polyline-mode")),
		MainLayerOnly: c.Bool("main-layer-only"),
		EpsPlane:      c.Float64("eps-plane"),
		EpsPolygon:    c.Float64("eps-polygon"),
		EpsCollinear:  c.Float64("eps-collinear"),
		Parallel:      c.Bool("parallel"),
	}

	result, err := rnaknot.Evaluate(coords, pairs, n, params)
	if err != nil {
		return fmt.Errorf("evaluating entanglement: %w", err)
	}
	fingerprint := rnaio.Fingerprint(coords, pairs)

	if c.Bool("json") {
		output, err := json.MarshalIndent(struct {
			rnaknot.Result
			Fingerprint string
		}{result, fingerprint}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("K=%d loops=%d surfaces=%d fingerprint=%s\n", result.Entangle.K, len(result.Loops), len(result.Surfaces), fingerprint)
	for _, hit := range result.Entangle.Hits {
		fmt.Printf("  loop %d: (%d,%s)-(%d,%s) at (%.3f, %.3f, %.3f)\n",
			hit.LoopID, hit.ResA, hit.AtomA, hit.ResB, hit.AtomB, hit.Point.X, hit.Point.Y, hit.Point.Z)
	}
	return nil
}

// secstruct2bpseqCommand converts a dot-bracket file plus sequence into
// BPSEQ on stdout.
func secstruct2bpseqCommand(c *cli.Context) error {
	f, err := os.Open(c.String("secstruct"))
	if err != nil {
		return err
	}
	defer f.Close()

	pairs, n, err := rnaio.ReadSecstruct(f)
	if err != nil {
		return err
	}

	seq := c.String("seq")
	if len(seq) != n {
		return fmt.Errorf("sequence length %d does not match structure length %d", len(seq), n)
	}

	return rnaio.WriteBPSEQ(os.Stdout, seq, pairs)
}

// bpseq2secstructCommand converts a BPSEQ file into dot-bracket notation on
// stdout.
func bpseq2secstructCommand(c *cli.Context) error {
	f, err := os.Open(c.String("bpseq"))
	if err != nil {
		return err
	}
	defer f.Close()

	pairs, n, err := rnaio.ReadBPSEQ(f)
	if err != nil {
		return err
	}

	structure, err := dotbracket.Format(pairs, n)
	if err != nil {
		return err
	}
	fmt.Println(structure)
	return nil
}

func loadCoords(path, format string) ([]basepair.ResidueCoord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == "" {
		format = formatFromExt(path, map[string]string{
			".cif": "cif",
			".pdb": "pdb",
			".ent": "pdb",
		})
	}

	switch strings.ToLower(format) {
	case "cif":
		return rnaio.LoadCIF(f)
	case "pdb":
		return rnaio.LoadPDB(f)
	default:
		return nil, fmt.Errorf("unrecognized coordinate format %q", format)
	}
}

func loadSecstruct(path, format string) ([]basepair.BasePair, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	if format == "" {
		format = formatFromExt(path, map[string]string{
			".bpseq": "bpseq",
			".dbn":   "dotbracket",
			".db":    "dotbracket",
		})
	}

	switch strings.ToLower(format) {
	case "bpseq":
		return rnaio.ReadBPSEQ(f)
	case "dotbracket":
		return rnaio.ReadSecstruct(f)
	default:
		return nil, 0, fmt.Errorf("unrecognized secondary-structure format %q", format)
	}
}

func formatFromExt(path string, known map[string]string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := known[ext]; ok {
		return format
	}
	return ext
}
