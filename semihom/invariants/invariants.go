// Package invariants normalizes the elementary divisors of a finitely
// generated abelian group into its invariant factor decomposition:
// Z^r x Z/d_1 x Z/d_2 x ... x Z/d_k with d_1 | d_2 | ... | d_k, each
// d_i > 1.
package invariants

import (
	"fmt"
	"math/big"
	"sort"
)

// Term is one cyclic (or free) factor of a group, raised to a count:
// Value == 0 means a free factor Z, repeated Count times; Value > 1
// means a cyclic factor Z/Value, repeated Count times.
type Term struct {
	Value *big.Int
	Count int
}

// Group is a finitely generated abelian group presented as its
// invariant factor decomposition, ordered free-rank term first (if
// present), then cyclic terms with strictly increasing divisors.
type Group struct {
	Terms []Term
}

// Trivial is the zero group.
func Trivial() Group { return Group{} }

// IsTrivial reports whether g is the zero group.
func (g Group) IsTrivial() bool { return len(g.Terms) == 0 }

// String renders g as e.g. "Z^2 x C_6" or "trivial".
func (g Group) String() string {
	if g.IsTrivial() {
		return "trivial"
	}
	s := ""
	for i, t := range g.Terms {
		if i > 0 {
			s += " x "
		}
		if t.Value.Sign() == 0 {
			if t.Count == 1 {
				s += "Z"
			} else {
				s += fmt.Sprintf("Z^%d", t.Count)
			}
			continue
		}
		if t.Count == 1 {
			s += fmt.Sprintf("C_%s", t.Value)
		} else {
			s += fmt.Sprintf("C_%s^%d", t.Value, t.Count)
		}
	}
	return s
}

// counterTerm is an internal (value, multiplicity) pair used while
// merging divisors, kept distinct from the public Term so the merge
// can freely mutate counts without touching caller-visible state.
type counterTerm struct {
	value *big.Int // 0 means "free" (infinite order)
	count int
}

// FromElementaryDivisors builds the invariant factor decomposition of
// a group given as a free rank and a list of nonzero elementary
// divisors (e.g. as returned by lattice.Lattice.NonzeroInvariants,
// including any 1's — divisors equal to 1 contribute the trivial
// factor and are dropped).
//
// The algorithm merges divisors pairwise by repeatedly replacing two
// outstanding (value, count) pairs by their gcd and lcm, without
// materializing the full elementary-divisor multiset as a flat list:
// inputs are tracked as counted pairs throughout.
func FromElementaryDivisors(freeRank int, divisors []*big.Int) Group {
	var counted []counterTerm
	counts := map[string]int{}
	order := []string{}
	for _, d := range divisors {
		if d.Cmp(big.NewInt(1)) <= 0 {
			continue
		}
		key := d.String()
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	byKey := map[string]*big.Int{}
	for _, d := range divisors {
		if d.Cmp(big.NewInt(1)) > 0 {
			byKey[d.String()] = d
		}
	}
	for _, key := range order {
		counted = append(counted, counterTerm{value: byKey[key], count: counts[key]})
	}

	merged := mergeToInvariantFactors(counted)

	g := Group{}
	if freeRank > 0 {
		g.Terms = append(g.Terms, Term{Value: big.NewInt(0), Count: freeRank})
	}
	for _, m := range merged {
		g.Terms = append(g.Terms, Term{Value: m.value, Count: m.count})
	}
	return g
}

// mergeToInvariantFactors takes elementary divisors as counted pairs
// and produces the invariant-factor chain d_1 | d_2 | ... | d_k. It
// repeatedly finds two divisor values a and b neither of which divides
// the other and replaces them by gcd(a,b) and lcm(a,b): Z/a x Z/b is
// isomorphic to Z/gcd(a,b) x Z/lcm(a,b), and a gcd of 1 is a trivial
// factor and is dropped. Because the two counts involved can be merged
// n = min(count_a, count_b) at a time — n copies of Z/a together with
// n copies of Z/b become n copies each of Z/gcd and Z/lcm, leaving
// count_a-n and count_b-n of the originals behind — a pair is fully
// resolved in a single step no matter how large its multiplicity is;
// the multiset is never expanded element by element. The process
// terminates once every remaining pair of distinct values is ordered
// by divisibility, at which point sorting ascending yields the chain.
func mergeToInvariantFactors(counted []counterTerm) []counterTerm {
	if len(counted) == 0 {
		return nil
	}

	values := map[string]*big.Int{}
	counts := map[string]int{}
	var order []string
	for _, c := range counted {
		key := c.value.String()
		if _, ok := values[key]; !ok {
			values[key] = c.value
			order = append(order, key)
		}
		counts[key] += c.count
	}

	for {
		merged := false
		for i := 0; i < len(order) && !merged; i++ {
			ki := order[i]
			if counts[ki] == 0 {
				continue
			}
			for j := i + 1; j < len(order); j++ {
				kj := order[j]
				if counts[kj] == 0 {
					continue
				}
				a, b := values[ki], values[kj]
				if new(big.Int).Mod(a, b).Sign() == 0 || new(big.Int).Mod(b, a).Sign() == 0 {
					continue
				}
				n := counts[ki]
				if counts[kj] < n {
					n = counts[kj]
				}
				g := new(big.Int).GCD(nil, nil, a, b)
				lcm := new(big.Int).Div(new(big.Int).Mul(a, b), g)
				for _, v := range []*big.Int{g, lcm} {
					if v.Cmp(big.NewInt(1)) == 0 {
						continue
					}
					vk := v.String()
					if _, ok := values[vk]; !ok {
						values[vk] = v
						order = append(order, vk)
					}
					counts[vk] += n
				}
				counts[ki] -= n
				counts[kj] -= n
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}

	var out []counterTerm
	for _, k := range order {
		if counts[k] == 0 {
			continue
		}
		out = append(out, counterTerm{value: values[k], count: counts[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value.Cmp(out[j].value) < 0 })
	return out
}
