package semigroup

// AdjoinOne returns a table with a fresh identity element adjoined at
// the end if t has none, along with whether an element was actually
// adjoined. The resolution engine always needs an identity to build
// its augmentation map, so this is the first preprocessing step run on
// any input table.
func AdjoinOne(t Table) (Table, bool) {
	if _, ok := t.Identity(); ok {
		return t, false
	}
	n := t.Size()
	out := make(Table, n+1)
	for i, row := range t {
		newRow := make([]int, n+1)
		copy(newRow, row)
		newRow[n] = i
		out[i] = newRow
	}
	lastRow := make([]int, n+1)
	for j := 0; j <= n; j++ {
		lastRow[j] = j
	}
	out[n] = lastRow
	return out, true
}

// EquivalentSubmonoid looks for a proper sub-monoid of t that has the
// same homology as t itself, and returns it along with the indices (in
// t) of its carrier, in ascending order. It reports false if no
// smaller equivalent sub-monoid was found, in which case callers should
// fall back to working with t directly: an empty set of candidates is
// not an error, just a sign that no shortcut applies here.
//
// The search considers, for each idempotent e, the sub-monoid e*S*e
// (identity e): it is a candidate when it is smaller than S itself and
// equal to e*S or to S*e, since in that case it shares S's integral
// homology. Among all candidates the smallest is preferred, as it gives
// the resolution engine the least work.
func EquivalentSubmonoid(t Table) (Table, []int, bool) {
	var bestCarrier []int
	for _, e := range t.Idempotents() {
		eS := t.EToSe(e)
		se, ese := map[int]bool{}, map[int]bool{}
		var carrier []int
		for x := 0; x < t.Size(); x++ {
			se[t.Mul(x, e)] = true
			if y := t.Mul(t.Mul(e, x), e); !ese[y] {
				ese[y] = true
				carrier = append(carrier, y)
			}
		}
		sortInts(carrier)
		if len(carrier) >= t.Size() || (len(carrier) != len(eS) && len(carrier) != len(se)) {
			continue
		}
		if bestCarrier == nil || len(carrier) < len(bestCarrier) {
			bestCarrier = carrier
		}
	}
	if bestCarrier == nil {
		return nil, nil, false
	}
	return restrict(t, bestCarrier), bestCarrier, true
}

// restrict builds the multiplication table of the sub-semigroup of t
// carried by the given (ascending, closed-under-multiplication) subset
// of indices.
func restrict(t Table, carrier []int) Table {
	pos := make(map[int]int, len(carrier))
	for i, c := range carrier {
		pos[c] = i
	}
	out := make(Table, len(carrier))
	for i, ci := range carrier {
		row := make([]int, len(carrier))
		for j, cj := range carrier {
			row[j] = pos[t.Mul(ci, cj)]
		}
		out[i] = row
	}
	return out
}
