package invariants

import (
	"math/big"
	"testing"
)

func TestFromElementaryDivisorsMergesIntoChain(t *testing.T) {
	// elementary divisors 2, 2, 3 should merge into invariant factors
	// 2, 6: the two 2's already divide each other and are left alone,
	// while one of the 2's combines with 3 into gcd=1 (dropped) and
	// lcm=6.
	g := FromElementaryDivisors(0, []*big.Int{big.NewInt(2), big.NewInt(2), big.NewInt(3)})
	if len(g.Terms) != 2 {
		t.Fatalf("Terms = %v, want 2 entries", g.Terms)
	}
	if g.Terms[0].Value.Cmp(big.NewInt(2)) != 0 || g.Terms[0].Count != 1 {
		t.Errorf("Terms[0] = %+v, want {2 1}", g.Terms[0])
	}
	if g.Terms[1].Value.Cmp(big.NewInt(6)) != 0 || g.Terms[1].Count != 1 {
		t.Errorf("Terms[1] = %+v, want {6 1}", g.Terms[1])
	}
}

func TestFromElementaryDivisorsDropsOnes(t *testing.T) {
	g := FromElementaryDivisors(0, []*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(5)})
	if len(g.Terms) != 1 || g.Terms[0].Value.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("Terms = %+v, want single {5 1}", g.Terms)
	}
}

func TestFromElementaryDivisorsFreeRank(t *testing.T) {
	g := FromElementaryDivisors(3, nil)
	if len(g.Terms) != 1 || g.Terms[0].Value.Sign() != 0 || g.Terms[0].Count != 3 {
		t.Errorf("Terms = %+v, want free rank 3", g.Terms)
	}
	if g.String() != "Z^3" {
		t.Errorf("String() = %q, want Z^3", g.String())
	}
}

func TestTrivial(t *testing.T) {
	g := FromElementaryDivisors(0, nil)
	if !g.IsTrivial() {
		t.Error("IsTrivial() = false, want true")
	}
	if g.String() != "trivial" {
		t.Errorf("String() = %q, want trivial", g.String())
	}
}

func TestStringCompound(t *testing.T) {
	g := FromElementaryDivisors(2, []*big.Int{big.NewInt(2), big.NewInt(4)})
	want := "Z^2 x C_2 x C_4"
	if g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}
