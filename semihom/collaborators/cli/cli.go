// Package cli implements the text formats used to pass a semigroup
// table into semihom and to print back its computed homology groups.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grouphomology/semihom/invariants"
	"github.com/grouphomology/semihom/semigroup"
)

// ParseTable reads a multiplication table from its compact text form:
// one row per semigroup element, rows separated by ';', entries within
// a row are adjacent base-36 digits (so tables up to size 36 need no
// separator within a row). For example "01;10" is the table of C2.
func ParseTable(s string) (semigroup.Table, error) {
	rows := strings.Split(strings.TrimSpace(s), ";")
	t := make(semigroup.Table, len(rows))
	for i, row := range rows {
		entries := make([]int, len(row))
		for j, r := range row {
			v, err := strconv.ParseInt(string(r), 36, 64)
			if err != nil {
				return nil, fmt.Errorf("cli: invalid table entry %q at row %d col %d: %w", string(r), i, j, err)
			}
			entries[j] = int(v)
		}
		t[i] = entries
	}
	if err := semigroup.Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// FormatTable renders t back into ParseTable's compact text form.
func FormatTable(t semigroup.Table) string {
	rows := make([]string, t.Size())
	for i := 0; i < t.Size(); i++ {
		var b strings.Builder
		for j := 0; j < t.Size(); j++ {
			b.WriteString(strconv.FormatInt(int64(t.Mul(i, j)), 36))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, ";")
}

// FormatHomology renders a list of homology groups, one line per
// dimension, as "H_i: <group>".
func FormatHomology(groups []invariants.Group) string {
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = fmt.Sprintf("H_%d: %s", i, g.String())
	}
	return strings.Join(lines, "\n")
}
