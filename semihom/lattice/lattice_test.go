package lattice

import (
	"math/big"
	"testing"

	"github.com/grouphomology/semihom/zvec"
)

func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestAddVectorRankAndContains(t *testing.T) {
	l := New(3)
	if l.AddVector(zvec.FromInts(0, 0, 0)) {
		t.Error("AddVector(zero) reported rank increase")
	}
	if !l.AddVector(zvec.FromInts(2, 0, 0)) {
		t.Error("AddVector((2,0,0)) should increase rank")
	}
	if !l.AddVector(zvec.FromInts(0, 3, 0)) {
		t.Error("AddVector((0,3,0)) should increase rank")
	}
	if l.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", l.Rank())
	}
	if !l.Contains(zvec.FromInts(4, -6, 0)) {
		t.Error("Contains((4,-6,0)) = false, want true")
	}
	if l.Contains(zvec.FromInts(1, 0, 0)) {
		t.Error("Contains((1,0,0)) = true, want false")
	}
	if l.Contains(zvec.FromInts(0, 0, 1)) {
		t.Error("Contains((0,0,1)) = true, want false")
	}
}

func TestFullyReducedInvariant(t *testing.T) {
	l := New(2)
	l.AddVector(zvec.FromInts(2, 4))
	l.AddVector(zvec.FromInts(3, 5))
	// basis now spans a rank-2 sublattice of Z^2; check pivot columns
	// are each zero in every row but their own.
	for i, pcol := range l.pivots {
		for j, row := range l.rows {
			if i == j {
				continue
			}
			if row[pcol].Sign() != 0 {
				t.Errorf("row %d not reduced at pivot column %d: %v", j, pcol, row)
			}
		}
	}
}

func TestCoefficientsOf(t *testing.T) {
	l := New(2)
	l.AddVector(zvec.FromInts(2, 0))
	l.AddVector(zvec.FromInts(0, 3))
	coeffs, ok := l.CoefficientsOf(zvec.FromInts(6, -9))
	if !ok {
		t.Fatal("CoefficientsOf reported not contained")
	}
	want := bigs(3, -3)
	for i, c := range coeffs {
		if c.Cmp(want[i]) != 0 {
			t.Errorf("coeffs[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestNonzeroInvariantsCyclicGroup(t *testing.T) {
	// the sublattice generated by (2,0) and (0,3) in Z^2 has elementary
	// divisors 1, 6 (the quotient Z^2/L is Z/1 x Z/6 = Z/6).
	l := New(2)
	l.AddVector(zvec.FromInts(2, 0))
	l.AddVector(zvec.FromInts(0, 3))
	got := l.NonzeroInvariants()
	if len(got) != 2 {
		t.Fatalf("NonzeroInvariants() = %v, want 2 entries", got)
	}
	if got[0].Cmp(big.NewInt(1)) != 0 || got[1].Cmp(big.NewInt(6)) != 0 {
		t.Errorf("NonzeroInvariants() = %v, want [1 6]", got)
	}
}

func TestRelationsAmong(t *testing.T) {
	// 2*v0 - 1*v1 = 0, when v0=1, v1=2.
	vs := []zvec.Vector{zvec.FromInts(1), zvec.FromInts(2)}
	rel := RelationsAmong(vs, 1)
	if !rel.Contains(zvec.FromInts(2, -1)) {
		t.Error("RelationsAmong should contain (2,-1)")
	}
	if rel.Contains(zvec.FromInts(1, 0)) {
		t.Error("RelationsAmong should not contain (1,0)")
	}
}

func TestSum(t *testing.T) {
	a := New(2)
	a.AddVector(zvec.FromInts(2, 0))
	b := New(2)
	b.AddVector(zvec.FromInts(0, 3))
	s := Sum(a, b)
	if s.Rank() != 2 {
		t.Errorf("Sum rank = %d, want 2", s.Rank())
	}
	if !s.Contains(zvec.FromInts(2, 3)) {
		t.Error("Sum should contain (2,3)")
	}
}
