// Package semigroup validates and preprocesses a finite semigroup
// given by its multiplication table, finds shortcuts that let the
// resolution engine skip the general machinery for small or structured
// inputs, and transforms inputs the way the monoid-homology algorithm
// expects (adjoining an identity, or passing through an equivalent
// sub-monoid already containing one).
package semigroup

import "fmt"

// Table is a semigroup multiplication table: Table[i][j] is the index
// of the product of element i and element j.
type Table [][]int

// ErrNotSquare is returned when a table's rows are not all the same
// length as the table itself.
type ErrNotSquare struct {
	Row, Want, Got int
}

func (e ErrNotSquare) Error() string {
	return fmt.Sprintf("semigroup: row %d has length %d, want %d", e.Row, e.Got, e.Want)
}

// ErrOutOfRange is returned when a table entry names an element index
// outside the table.
type ErrOutOfRange struct {
	Row, Col, Value, Size int
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("semigroup: table[%d][%d] = %d out of range [0,%d)", e.Row, e.Col, e.Value, e.Size)
}

// ErrNotAssociative is returned when a table fails (a*b)*c == a*(b*c)
// for some triple.
type ErrNotAssociative struct {
	A, B, C int
}

func (e ErrNotAssociative) Error() string {
	return fmt.Sprintf("semigroup: table is not associative at (%d, %d, %d)", e.A, e.B, e.C)
}

// Size reports the number of elements in the semigroup.
func (t Table) Size() int { return len(t) }

// Mul returns the product of elements i and j.
func (t Table) Mul(i, j int) int { return t[i][j] }

// Validate checks that t is a well formed, associative multiplication
// table: square, with every entry a valid element index, and
// associative on every triple.
func Validate(t Table) error {
	n := len(t)
	for i, row := range t {
		if len(row) != n {
			return ErrNotSquare{Row: i, Want: n, Got: len(row)}
		}
	}
	for i, row := range t {
		for j, v := range row {
			if v < 0 || v >= n {
				return ErrOutOfRange{Row: i, Col: j, Value: v, Size: n}
			}
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			ab := t.Mul(a, b)
			for c := 0; c < n; c++ {
				if t.Mul(ab, c) != t.Mul(a, t.Mul(b, c)) {
					return ErrNotAssociative{A: a, B: b, C: c}
				}
			}
		}
	}
	return nil
}

// Identity returns the index of a two-sided identity element, if one
// exists.
func (t Table) Identity() (int, bool) {
	n := t.Size()
	for e := 0; e < n; e++ {
		isID := true
		for x := 0; x < n; x++ {
			if t.Mul(e, x) != x || t.Mul(x, e) != x {
				isID = false
				break
			}
		}
		if isID {
			return e, true
		}
	}
	return 0, false
}

// Idempotents returns the indices of every idempotent element (e with
// e*e == e).
func (t Table) Idempotents() []int {
	var out []int
	for i := 0; i < t.Size(); i++ {
		if t.Mul(i, i) == i {
			out = append(out, i)
		}
	}
	return out
}

// LeftZero reports whether e is a left zero: e*x == e for every x.
func (t Table) LeftZero(e int) bool {
	for x := 0; x < t.Size(); x++ {
		if t.Mul(e, x) != e {
			return false
		}
	}
	return true
}

// HasLeftZero reports whether the table has any left zero element.
func (t Table) HasLeftZero() (int, bool) {
	for e := 0; e < t.Size(); e++ {
		if t.LeftZero(e) {
			return e, true
		}
	}
	return 0, false
}

// EToSe returns the elements of e*S = { e*x : x in S } for idempotent
// e, deduplicated, sorted ascending. EquivalentSubmonoid compares it
// with e*S*e to decide whether e*S*e can stand in for S.
func (t Table) EToSe(e int) []int {
	seen := make(map[int]bool)
	var out []int
	for x := 0; x < t.Size(); x++ {
		v := t.Mul(e, x)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sortInts(out)
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
