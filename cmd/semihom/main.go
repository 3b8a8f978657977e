// Command semihom computes the integral homology groups of a finite
// semigroup given by its multiplication table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/grouphomology/semihom"
	"github.com/grouphomology/semihom/collaborators/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("semihom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	table := fs.String("table", "", "multiplication table in compact form, e.g. \"01;10\"")
	maxdim := fs.Int("maxdim", 5, "highest homological dimension to compute")
	variants := fs.Int("variants", 1, "number of relabeled variants to peek before committing")
	seed := fs.Uint64("seed", 1, "seed for deterministic variant relabeling")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *table == "" {
		fmt.Fprintln(stderr, "semihom: -table is required")
		return 2
	}

	t, err := cli.ParseTable(*table)
	if err != nil {
		fmt.Fprintf(stderr, "semihom: %v\n", err)
		return 1
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	groups, err := semihom.Run(context.Background(), t, semihom.Options{
		MaxDim:        *maxdim,
		VariantBudget: *variants,
		Seed:          *seed,
		Logger:        logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "semihom: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, cli.FormatHomology(groups))
	return 0
}
