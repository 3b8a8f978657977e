// Package cover selects a small generating subset of a set of kernel
// vectors under the closure of a group (or monoid) action: given a
// lattice of "known" relation generators and a set of actions that
// each send any known vector to another element of the same lattice,
// it greedily picks a subset whose combined action-orbits ℤ-span the
// whole lattice, then tries to shrink and minimize that subset.
package cover

import (
	"github.com/grouphomology/semihom/lattice"
	"github.com/grouphomology/semihom/zvec"
)

// GeneratingSubset picks a subset of known whose ℤ-span, closed under
// every action in actions, equals K = ℤ-span(known) (in dim-dimensional
// ambient space). orbitSizes[i], when present, is the size of the
// group orbit known[i] belongs to, used only to prefer covering with
// representatives of larger orbits first, since a single generator in
// a large orbit accounts for many symmetric relations at once; it
// never changes which lattice is ultimately spanned, only which
// minimal subset is found when several exist.
//
// Internally each known[i] is relativized to K's own R-dimensional
// coordinate system (R = K.Rank()), and its action lattice L_i is
// built as the ℤ-span of the coordinates of known[i] itself together
// with every shuffled image known[i].shuffled_by_action(a): selecting
// i is only as good as the whole orbit L_i it brings in, not just the
// single vector known[i]. A selection spans K exactly when the sum of
// its members' L_i reaches K's full rank R.
//
// When tryShrink is set, a second pass tries removing each selected
// vector (smallest orbit first) and keeps the removal if the remaining
// selection's action lattices still span all of K. When tryMinimal is
// set, a third exhaustive pass repeats single-vector removal attempts
// over the whole selection until no further vector can be dropped.
func GeneratingSubset(dim int, known []zvec.Vector, actions []zvec.Action, orbitSizes []int, tryShrink, tryMinimal bool) []zvec.Vector {
	full := lattice.New(dim)
	for _, v := range known {
		full.AddVector(v)
	}
	targetRank := full.Rank()

	actionLattices := make([]*lattice.Lattice, len(known))
	for i, v := range known {
		actionLattices[i] = orbitLattice(full, v, actions, targetRank)
	}

	order := orderByOrbitDesc(len(known), orbitSizes)

	selected := map[int]bool{}
	covered := lattice.New(targetRank)
	for _, i := range order {
		if mergeIn(covered, actionLattices[i]) {
			selected[i] = true
		}
	}

	if tryShrink {
		shrink(selected, order, actionLattices, targetRank)
	}
	if tryMinimal {
		minimize(selected, actionLattices, targetRank)
	}

	var out []zvec.Vector
	for i, v := range known {
		if selected[i] {
			out = append(out, v)
		}
	}
	return out
}

// orbitLattice computes L_i, the ℤ-span (in K's own coordinates) of v
// and every image of v under an action in actions.
func orbitLattice(k *lattice.Lattice, v zvec.Vector, actions []zvec.Action, rank int) *lattice.Lattice {
	l := lattice.New(rank)
	if coeffs, ok := k.CoefficientsOf(v); ok {
		l.AddVector(zvec.Vector(coeffs))
	}
	for _, a := range actions {
		shuffled := a.Shuffle(v, k.Dim())
		if coeffs, ok := k.CoefficientsOf(shuffled); ok {
			l.AddVector(zvec.Vector(coeffs))
		}
	}
	return l
}

// mergeIn folds add's basis into covered and reports whether covered's
// rank increased as a result.
func mergeIn(covered, add *lattice.Lattice) bool {
	before := covered.Rank()
	for _, v := range add.Basis() {
		covered.AddVector(v)
	}
	return covered.Rank() > before
}

func orderByOrbitDesc(n int, orbitSizes []int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	size := func(i int) int {
		if i < len(orbitSizes) {
			return orbitSizes[i]
		}
		return 0
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && size(order[j-1]) < size(order[j]); j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}

// spansAll reports whether the selected subset's combined action
// lattices reach the full target rank.
func spansAll(selected map[int]bool, actionLattices []*lattice.Lattice, targetRank int) bool {
	covered := lattice.New(targetRank)
	for i, l := range actionLattices {
		if !selected[i] {
			continue
		}
		for _, v := range l.Basis() {
			covered.AddVector(v)
		}
	}
	return covered.Rank() >= targetRank
}

func shrink(selected map[int]bool, order []int, actionLattices []*lattice.Lattice, targetRank int) {
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		if !selected[i] {
			continue
		}
		delete(selected, i)
		if !spansAll(selected, actionLattices, targetRank) {
			selected[i] = true
		}
	}
}

func minimize(selected map[int]bool, actionLattices []*lattice.Lattice, targetRank int) {
	for {
		removedAny := false
		for i := range selected {
			delete(selected, i)
			if spansAll(selected, actionLattices, targetRank) {
				removedAny = true
				continue
			}
			selected[i] = true
		}
		if !removedAny {
			return
		}
	}
}
