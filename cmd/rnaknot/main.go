package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

/******************************************************************************

This file is the entry point for the command line utility. Argument parsing
and the command tree are defined entirely through "github.com/urfave/cli/v2":

https://github.com/urfave/cli/blob/master/docs/v2/manual.md

The app is built via the &cli.App{} struct, given Name, Usage, and Commands
at the top level. Command logic itself lives in commands.go so this file
stays a pure template of what's available.

******************************************************************************/

// main is the entry point. Separated from run so application() can be
// exercised directly in tests.
func main() {
	run(os.Args)
}

// run builds the app and executes it against args, logging any error.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the command tree for the rnaknot CLI.
func application() *cli.App {
	app := &cli.App{
		Name:  "rnaknot",
		Usage: "Detect topological entanglement in RNA 3D structures.",

		Commands: []*cli.Command{
			{
				Name:  "evaluate",
				Usage: "Evaluate entanglement for a structure and secondary-structure file.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "coords",
						Usage:    "Path to an mmCIF or PDB coordinate file.",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "coords-format",
						Usage: "Coordinate file format: cif or pdb. Defaults to the file extension.",
					},
					&cli.StringFlag{
						Name:     "secstruct",
						Usage:    "Path to a dot-bracket or BPSEQ secondary-structure file.",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "secstruct-format",
						Usage: "Secondary-structure file format: dotbracket or bpseq. Defaults to the file extension.",
					},
					&cli.IntFlag{
						Name:  "surface-mode",
						Value: 0,
						Usage: "0 = best-fit plane, 1 = triangulated fan.",
					},
					&cli.IntFlag{
						Name:  "polyline-mode",
						Value: 0,
						Usage: "0 = C4' only, 1 = alternating P/C4'.",
					},
					&cli.BoolFlag{
						Name:  "main-layer-only",
						Usage: "Reduce the input pairs to their non-crossing main layer before building loops.",
					},
					&cli.BoolFlag{
						Name:  "parallel",
						Usage: "Evaluate loop surfaces concurrently.",
					},
					&cli.Float64Flag{
						Name:  "eps-plane",
						Value: 1e-2,
					},
					&cli.Float64Flag{
						Name:  "eps-polygon",
						Value: 1e-2,
					},
					&cli.Float64Flag{
						Name:  "eps-collinear",
						Value: 1e-6,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full EntanglementResult as JSON instead of a one-line summary.",
					},
				},
				Action: func(c *cli.Context) error {
					return evaluateCommand(c)
				},
			},
			{
				Name:  "secstruct2bpseq",
				Usage: "Convert a dot-bracket secondary structure plus sequence into BPSEQ.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "secstruct",
						Usage:    "Path to a dot-bracket file.",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "seq",
						Usage:    "The nucleotide sequence, same length as the structure.",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return secstruct2bpseqCommand(c)
				},
			},
			{
				Name:  "bpseq2secstruct",
				Usage: "Convert a BPSEQ file into dot-bracket notation.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "bpseq",
						Usage:    "Path to a BPSEQ file.",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return bpseq2secstructCommand(c)
				},
			},
		},
	}

	return app
}
