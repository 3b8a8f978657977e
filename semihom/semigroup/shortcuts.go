package semigroup

import (
	"math/big"

	"github.com/grouphomology/semihom/invariants"
)

// Shortcut attempts to produce the homology groups H_0, ..., H_maxdim
// of t directly from its structure, without running the full
// resolution engine. It reports false when no shortcut applies.
func Shortcut(t Table, maxdim int) ([]invariants.Group, bool) {
	if t.Size() == 1 {
		return trivialList(maxdim), true
	}
	if _, ok := t.HasLeftZero(); ok {
		return zeroHomology(maxdim), true
	}
	if n, ok := cyclicGroupOrder(t); ok {
		return cyclicGroupHomology(n, maxdim), true
	}
	return nil, false
}

func trivialList(maxdim int) []invariants.Group {
	out := make([]invariants.Group, maxdim+1)
	out[0] = invariants.FromElementaryDivisors(1, nil)
	for i := 1; i <= maxdim; i++ {
		out[i] = invariants.Trivial()
	}
	return out
}

// zeroHomology is the homology of a monoid with a two-sided zero (or a
// semigroup with a left zero): the identity map on its bar resolution
// factors through the constant map at the zero, so every reduced
// homology group vanishes.
func zeroHomology(maxdim int) []invariants.Group {
	return trivialList(maxdim)
}

// cyclicGroupOrder reports n and true if t, as a monoid, is a cyclic
// group of order n: has an identity, every element has an inverse,
// and the monoid is commutative and generated by a single element.
func cyclicGroupOrder(t Table) (int, bool) {
	e, ok := t.Identity()
	if !ok {
		return 0, false
	}
	n := t.Size()
	for i := 0; i < n; i++ {
		hasInverse := false
		for j := 0; j < n; j++ {
			if t.Mul(i, j) == e && t.Mul(j, i) == e {
				hasInverse = true
				break
			}
		}
		if !hasInverse {
			return 0, false
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if t.Mul(i, j) != t.Mul(j, i) {
				return 0, false
			}
		}
	}
	for g := 0; g < n; g++ {
		seen := make(map[int]bool)
		cur := e
		for k := 0; k < n; k++ {
			cur = t.Mul(cur, g)
			seen[cur] = true
		}
		if len(seen) == n {
			return n, true
		}
	}
	return 0, false
}

// cyclicGroupHomology returns the standard integral homology of the
// cyclic group of order n: H_0 = Z, H_{2k-1} = Z/n for k >= 1,
// H_{2k} = 0 for k >= 1 (periodic resolution of period 2).
func cyclicGroupHomology(n, maxdim int) []invariants.Group {
	out := make([]invariants.Group, maxdim+1)
	out[0] = invariants.FromElementaryDivisors(1, nil)
	for i := 1; i <= maxdim; i++ {
		if i%2 == 1 {
			out[i] = invariants.FromElementaryDivisors(0, []*big.Int{big.NewInt(int64(n))})
		} else {
			out[i] = invariants.Trivial()
		}
	}
	return out
}
