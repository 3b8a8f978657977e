// Package lattice maintains a finitely generated sublattice of Z^n in
// reduced row echelon form with arbitrary-precision entries, supporting
// incremental insertion, membership testing, coefficient extraction,
// and Smith normal form (elementary divisor) computation.
package lattice

import (
	"fmt"
	"math/big"

	"github.com/grouphomology/semihom/zvec"
)

// Lattice is a finitely generated subgroup of Z^dim, represented by a
// basis held in reduced row echelon form: rows are sorted ascending by
// pivot column, every pivot entry is positive, and every other row's
// entry in a pivot column is reduced into [0, pivot). Those entries are
// not in general zero: the span of (2,4) and (3,5), for one, has no
// integer echelon basis with a single nonzero entry per pivot column.
// CoefficientsOf reads off coordinates by working down the rows in
// pivot order, one division per row.
type Lattice struct {
	dim    int
	rows   []zvec.Vector
	pivots []int
}

// New returns the zero lattice in Z^dim.
func New(dim int) *Lattice {
	return &Lattice{dim: dim}
}

// Dim reports the ambient dimension n of Z^n.
func (l *Lattice) Dim() int { return l.dim }

// Rank reports the number of basis vectors, i.e. the rank of the
// lattice as a free abelian group.
func (l *Lattice) Rank() int { return len(l.rows) }

// Basis returns a defensive copy of the current reduced basis, one row
// per generator, sorted ascending by pivot column.
func (l *Lattice) Basis() []zvec.Vector {
	out := make([]zvec.Vector, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Clone()
	}
	return out
}

// Clone returns an independent deep copy of l.
func (l *Lattice) Clone() *Lattice {
	out := &Lattice{dim: l.dim, pivots: append([]int(nil), l.pivots...)}
	out.rows = make([]zvec.Vector, len(l.rows))
	for i, r := range l.rows {
		out.rows[i] = r.Clone()
	}
	return out
}

func firstNonzero(v zvec.Vector) int {
	for i, c := range v {
		if c.Sign() != 0 {
			return i
		}
	}
	return -1
}

func (l *Lattice) pivotRowIndex(col int) int {
	for i, p := range l.pivots {
		if p == col {
			return i
		}
	}
	return -1
}

func scaleBig(c *big.Int, v zvec.Vector) zvec.Vector {
	return zvec.Scale(c, v)
}

// floorDivMod returns (q, r) with v = q*d + r, 0 <= r < d, for d > 0.
// Go's big.Int.DivMod already implements Euclidean division, which
// coincides with floor division exactly when the divisor is positive;
// every divisor passed here is a pivot entry, and pivot entries are
// kept strictly positive by construction.
func floorDivMod(v, d *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.DivMod(v, d, r)
	return q, r
}

// insertRow inserts a new basis row with the given pivot column,
// maintaining ascending pivot order.
func (l *Lattice) insertRow(pivotCol int, row zvec.Vector) {
	i := 0
	for i < len(l.pivots) && l.pivots[i] < pivotCol {
		i++
	}
	l.rows = append(l.rows, nil)
	copy(l.rows[i+1:], l.rows[i:])
	l.rows[i] = row

	l.pivots = append(l.pivots, 0)
	copy(l.pivots[i+1:], l.pivots[i:])
	l.pivots[i] = pivotCol
}

// AddVector inserts v into the lattice, adjusting the basis so it
// remains in reduced row echelon form. It reports whether the rank of
// the lattice increased (v was not already in its span).
func (l *Lattice) AddVector(v zvec.Vector) bool {
	if v.Len() != l.dim {
		panic(fmt.Sprintf("lattice: vector has length %d, want %d", v.Len(), l.dim))
	}
	before := len(l.rows)
	cur := v.Clone()
	for {
		p := firstNonzero(cur)
		if p < 0 {
			break
		}
		idx := l.pivotRowIndex(p)
		if idx < 0 {
			if cur[p].Sign() < 0 {
				cur = zvec.Neg(cur)
			}
			l.insertRow(p, cur)
			break
		}
		row := l.rows[idx]
		a, b := row[p], cur[p]
		g, sigma, tau := new(big.Int), new(big.Int), new(big.Int)
		g.GCD(sigma, tau, a, b)

		newPivot := zvec.Add(scaleBig(sigma, row), scaleBig(tau, cur))
		bOverG := new(big.Int).Div(b, g)
		aOverG := new(big.Int).Div(a, g)
		newOther := zvec.Sub(scaleBig(bOverG, row), scaleBig(aOverG, cur))

		if newPivot[p].Sign() < 0 {
			newPivot = zvec.Neg(newPivot)
		}
		l.rows[idx] = newPivot
		cur = newOther
	}
	l.fullyReduce()
	return len(l.rows) != before
}

// fullyReduce reduces every other row's entry in each pivot column to
// its remainder modulo that pivot, in [0, pivot). It is a fixed-point
// pass: eliminating one row's entry
// in another row's pivot column can introduce a remainder that, after
// combination, collides with yet another pivot, so passes repeat until
// a full sweep makes no change. Each pass can only shrink entries (it
// replaces a coordinate with its remainder modulo a pivot), so it
// terminates.
func (l *Lattice) fullyReduce() {
	for {
		changed := false
		for i, row := range l.rows {
			for j, pcol := range l.pivots {
				if i == j {
					continue
				}
				if row[pcol].Sign() == 0 {
					continue
				}
				q, r := floorDivMod(row[pcol], l.rows[j][pcol])
				if q.Sign() == 0 {
					continue
				}
				l.rows[i] = zvec.Sub(row, scaleBig(q, l.rows[j]))
				l.rows[i][pcol] = r
				row = l.rows[i]
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// Contains reports whether v lies in the lattice.
func (l *Lattice) Contains(v zvec.Vector) bool {
	if v.Len() != l.dim {
		panic(fmt.Sprintf("lattice: vector has length %d, want %d", v.Len(), l.dim))
	}
	cur := v.Clone()
	for i, pcol := range l.pivots {
		if cur[pcol].Sign() == 0 {
			continue
		}
		_, r := floorDivMod(cur[pcol], l.rows[i][pcol])
		q := new(big.Int).Sub(cur[pcol], r)
		q.Div(q, l.rows[i][pcol])
		cur = zvec.Sub(cur, scaleBig(q, l.rows[i]))
	}
	return cur.IsZero()
}

// CoefficientsOf returns the integer coefficients expressing v in
// terms of the current basis, and reports whether v lies in the
// lattice at all. Working down the rows in pivot order, each
// coefficient is one division of what remains of v at that row's pivot
// column by the pivot, after the earlier rows' multiples are removed.
func (l *Lattice) CoefficientsOf(v zvec.Vector) ([]*big.Int, bool) {
	if v.Len() != l.dim {
		panic(fmt.Sprintf("lattice: vector has length %d, want %d", v.Len(), l.dim))
	}
	coeffs := make([]*big.Int, len(l.rows))
	remainder := v.Clone()
	for i, pcol := range l.pivots {
		c := new(big.Int)
		c.Div(remainder[pcol], l.rows[i][pcol])
		coeffs[i] = c
		remainder = zvec.Sub(remainder, scaleBig(c, l.rows[i]))
	}
	return coeffs, remainder.IsZero()
}

// Sum returns a new lattice equal to l + m, the subgroup generated by
// the union of both lattices' bases. l and m must share a dimension.
func Sum(l, m *Lattice) *Lattice {
	if l.dim != m.dim {
		panic(fmt.Sprintf("lattice: dimension mismatch: %d vs %d", l.dim, m.dim))
	}
	out := l.Clone()
	for _, r := range m.rows {
		out.AddVector(r)
	}
	return out
}

// Decompose splits the lattice's basis into a family of sub-lattices,
// one per group of coordinate indices in groups, by projecting every
// basis row onto each group's coordinates. It is used when a chain
// group factors as a direct sum over disjoint index blocks (as when a
// tensored resolution node's module splits along an orbit partition)
// and each block's relations need to be worked with independently.
func (l *Lattice) Decompose(groups [][]int) []*Lattice {
	out := make([]*Lattice, len(groups))
	for gi, idxs := range groups {
		sub := New(len(idxs))
		for _, row := range l.rows {
			proj := make(zvec.Vector, len(idxs))
			for k, idx := range idxs {
				proj[k] = new(big.Int).Set(row[idx])
			}
			if !proj.IsZero() {
				sub.AddVector(proj)
			}
		}
		out[gi] = sub
	}
	return out
}

// RelationsAmong computes the lattice of integer relations among the
// given vectors: the set of coefficient tuples (c_1, ..., c_k) in Z^k
// with sum c_i * vectors[i] = 0. It works by building the augmented
// lattice generated by rows (vectors[i] | e_i) in Z^(n+k) and reducing
// with vector-block columns ordered first; any basis row that reduces
// to an all-zero vector block carries a relation in its e-block.
func RelationsAmong(vectors []zvec.Vector, n int) *Lattice {
	k := len(vectors)
	aug := New(n + k)
	for i, v := range vectors {
		if v.Len() != n {
			panic(fmt.Sprintf("lattice: relation input %d has length %d, want %d", i, v.Len(), n))
		}
		e := zvec.NewVector(k)
		e[i] = big.NewInt(1)
		aug.AddVector(zvec.Concat(v, e))
	}
	rel := New(k)
	for i, row := range aug.rows {
		vBlock := row[:n]
		if firstNonzero(vBlock) >= 0 {
			continue
		}
		_ = i
		cBlock := row[n:].Clone()
		if !cBlock.IsZero() {
			rel.AddVector(cBlock)
		}
	}
	return rel
}

// NonzeroInvariants computes the nonzero elementary divisors d_1 | d_2
// | ... | d_r of the lattice, i.e. the diagonal of its Smith normal
// form restricted to nonzero entries. It operates on a dense working
// copy of the basis and is independent of the echelon representation
// used for insertion: repeatedly pick the smallest nonzero entry in
// the remaining submatrix as pivot, clear its row and column by
// floor-division, and absorb any entry the pivot fails to divide by
// adding that row onto the pivot row before retrying. The diagonal
// entries are then replaced pairwise by their gcd and lcm, so that each
// divides the next.
func (l *Lattice) NonzeroInvariants() []*big.Int {
	rows := len(l.rows)
	if rows == 0 {
		return nil
	}
	m := make([][]*big.Int, rows)
	for i, r := range l.rows {
		m[i] = make([]*big.Int, l.dim)
		for j := range m[i] {
			m[i][j] = new(big.Int).Set(r[j])
		}
	}

	var divisors []*big.Int
	rowOff, colOff := 0, 0
	for rowOff < rows && colOff < l.dim {
		pr, pc, ok := smallestNonzero(m, rowOff, colOff)
		if !ok {
			break
		}
		m[rowOff], m[pr] = m[pr], m[rowOff]
		for i := range m {
			m[i][colOff], m[i][pc] = m[i][pc], m[i][colOff]
		}

		for {
			pivot := m[rowOff][colOff]
			clean := true
			for i := rowOff + 1; i < rows; i++ {
				if m[i][colOff].Sign() == 0 {
					continue
				}
				q, r := floorDivMod(m[i][colOff], pivot)
				if r.Sign() != 0 {
					for j := colOff; j < l.dim; j++ {
						m[i][j].Sub(m[i][j], new(big.Int).Mul(q, m[rowOff][j]))
					}
					m[rowOff], m[i] = m[i], m[rowOff]
					clean = false
					break
				}
				for j := colOff; j < l.dim; j++ {
					m[i][j].Sub(m[i][j], new(big.Int).Mul(q, m[rowOff][j]))
				}
			}
			if !clean {
				continue
			}
			for j := colOff + 1; j < l.dim; j++ {
				if m[rowOff][j].Sign() == 0 {
					continue
				}
				q, r := floorDivMod(m[rowOff][j], pivot)
				if r.Sign() != 0 {
					clean = false
					for i := rowOff; i < rows; i++ {
						m[i][j].Sub(m[i][j], new(big.Int).Mul(q, m[i][colOff]))
					}
					// swap the offending column to the front for retry
					for i := range m {
						m[i][colOff], m[i][j] = m[i][j], m[i][colOff]
					}
					break
				}
				for i := rowOff; i < rows; i++ {
					m[i][j].Sub(m[i][j], new(big.Int).Mul(q, m[i][colOff]))
				}
			}
			if clean {
				break
			}
		}

		pivot := new(big.Int).Set(m[rowOff][colOff])
		if pivot.Sign() < 0 {
			pivot.Neg(pivot)
		}
		if pivot.Sign() != 0 {
			divisors = append(divisors, pivot)
		}
		rowOff++
		colOff++
	}
	for i := 0; i < len(divisors); i++ {
		for j := i + 1; j < len(divisors); j++ {
			g := new(big.Int).GCD(nil, nil, divisors[i], divisors[j])
			lcm := new(big.Int).Mul(divisors[i], divisors[j])
			lcm.Div(lcm, g)
			divisors[i], divisors[j] = g, lcm
		}
	}
	return divisors
}

func smallestNonzero(m [][]*big.Int, rowOff, colOff int) (int, int, bool) {
	bestR, bestC := -1, -1
	var bestAbs *big.Int
	for i := rowOff; i < len(m); i++ {
		for j := colOff; j < len(m[i]); j++ {
			if m[i][j].Sign() == 0 {
				continue
			}
			abs := new(big.Int).Abs(m[i][j])
			if bestAbs == nil || abs.Cmp(bestAbs) < 0 {
				bestAbs = abs
				bestR, bestC = i, j
			}
		}
	}
	if bestR < 0 {
		return 0, 0, false
	}
	return bestR, bestC, true
}
