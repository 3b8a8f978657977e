// Package hdf5 adapts semihom to the bulk catalogue format used by the
// reference implementation's HDF5 dataset: a list of multiplication
// tables grouped by size, each tagged with a "kind" label, alongside
// the homology group lists already computed for them. Rather than
// linking against the real HDF5 C library, this package works against
// an injected io.Reader/io.Writer pair using a simple newline/record
// text encoding, so the catalogue format can be exercised without a
// system dependency.
package hdf5

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grouphomology/semihom/collaborators/cli"
	"github.com/grouphomology/semihom/invariants"
	"github.com/grouphomology/semihom/semigroup"
)

// Record is one catalogued semigroup: its table, a free-form kind
// label (e.g. "rectangular band", "group"), and its homology group
// list if already computed.
type Record struct {
	Table     semigroup.Table
	Kind      string
	Homology  []invariants.Group
}

// ReadCatalogue reads a sequence of records from r, one per line, in
// the form "<kind>\t<table>\t<homology>", where <table> is in
// cli.ParseTable's compact form and <homology> is WriteCatalogue's
// ';'-joined list of invariants.Group.String() results (or the literal
// "-" if homology has not been computed for that record yet). The
// third field is not parsed: every record read has a nil Homology.
func ReadCatalogue(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, fmt.Errorf("hdf5: malformed record %q", line)
		}
		table, err := cli.ParseTable(parts[1])
		if err != nil {
			return nil, fmt.Errorf("hdf5: record %q: %w", line, err)
		}
		out = append(out, Record{Table: table, Kind: parts[0]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteCatalogue writes records to w in ReadCatalogue's format.
func WriteCatalogue(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		hom := "-"
		if rec.Homology != nil {
			parts := make([]string, len(rec.Homology))
			for i, g := range rec.Homology {
				parts[i] = g.String()
			}
			hom = strings.Join(parts, ";")
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", rec.Kind, cli.FormatTable(rec.Table), hom); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Compute fills in Homology for every record in records that doesn't
// already have it, running up to concurrency computations at once.
// compute is the homology function to apply to each table (normally
// semihom.Run bound to a chosen Options), injected so this package
// does not need to import semihom itself and create an import cycle.
func Compute(ctx context.Context, records []Record, concurrency int, maxdim int, compute func(context.Context, semigroup.Table, int) ([]invariants.Group, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range records {
		i := i
		if records[i].Homology != nil {
			continue
		}
		g.Go(func() error {
			groups, err := compute(ctx, records[i].Table, maxdim)
			if err != nil {
				return fmt.Errorf("hdf5: record %d (%s): %w", i, records[i].Kind, err)
			}
			records[i].Homology = groups
			return nil
		})
	}
	return g.Wait()
}

// SizeHistogram counts records by the size of their semigroup, for a
// quick sanity check of a catalogue's composition.
func SizeHistogram(records []Record) map[int]int {
	out := map[int]int{}
	for _, r := range records {
		out[r.Table.Size()]++
	}
	return out
}

// sizeHistogramKeys returns the sorted sizes present in a histogram,
// used by the plotting helper so bars are drawn in a stable order.
func sizeHistogramKeys(h map[int]int) []int {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func formatSize(n int) string { return strconv.Itoa(n) }
