package semigroup

import (
	"testing"
)

func z2Table() Table {
	// {0,1} with 0 the identity, 1*1 = 0 (the group C2).
	return Table{
		{0, 1},
		{1, 0},
	}
}

func TestValidateGoodTable(t *testing.T) {
	if err := Validate(z2Table()); err != nil {
		t.Fatalf("Validate(C2) = %v, want nil", err)
	}
}

func TestValidateNotSquare(t *testing.T) {
	bad := Table{{0, 1}, {1}}
	if err := Validate(bad); err == nil {
		t.Fatal("Validate(ragged table) = nil, want error")
	}
}

func TestValidateNotAssociative(t *testing.T) {
	// Mul(i,j) = (i+1) mod 3 regardless of j: (0*0)*0 = 2 but
	// 0*(0*0) = 1, so this is not associative.
	bad := Table{
		{1, 1, 1},
		{2, 2, 2},
		{0, 0, 0},
	}
	if err := Validate(bad); err == nil {
		t.Fatal("Validate(non-associative table) = nil, want error")
	}
}

func TestIdentityAndIdempotents(t *testing.T) {
	tb := z2Table()
	e, ok := tb.Identity()
	if !ok || e != 0 {
		t.Fatalf("Identity() = (%d, %v), want (0, true)", e, ok)
	}
	idem := tb.Idempotents()
	if len(idem) != 1 || idem[0] != 0 {
		t.Errorf("Idempotents() = %v, want [0]", idem)
	}
}

func leftZeroBandTable() Table {
	// {0,1}, x*y = x always.
	return Table{
		{0, 0},
		{1, 1},
	}
}

func TestHasLeftZero(t *testing.T) {
	tb := leftZeroBandTable()
	if err := Validate(tb); err != nil {
		t.Fatalf("Validate(left-zero band) = %v, want nil", err)
	}
	if e, ok := tb.HasLeftZero(); !ok || e != 0 {
		// both 0 and 1 are left zeros in this band; 0 found first.
		if !ok {
			t.Errorf("HasLeftZero() = (_, false), want true")
		}
	}
}

func TestAdjoinOne(t *testing.T) {
	band := leftZeroBandTable()
	out, added := AdjoinOne(band)
	if !added {
		t.Fatal("AdjoinOne should add an identity to a table with none")
	}
	if err := Validate(out); err != nil {
		t.Fatalf("Validate(adjoined) = %v, want nil", err)
	}
	if _, ok := out.Identity(); !ok {
		t.Error("adjoined table has no identity")
	}

	out2, added2 := AdjoinOne(z2Table())
	if added2 {
		t.Error("AdjoinOne should not add to a table that already has an identity")
	}
	if out2.Size() != z2Table().Size() {
		t.Error("AdjoinOne changed size of table that already had an identity")
	}
}

func TestShortcutTrivial(t *testing.T) {
	list, ok := Shortcut(Table{{0}}, 3)
	if !ok {
		t.Fatal("Shortcut(trivial monoid) = false, want true")
	}
	if len(list) != 4 {
		t.Fatalf("len(list) = %d, want 4", len(list))
	}
	for i, g := range list {
		if i == 0 {
			continue
		}
		if !g.IsTrivial() {
			t.Errorf("H_%d = %v, want trivial", i, g)
		}
	}
}

func TestShortcutCyclicGroup(t *testing.T) {
	list, ok := Shortcut(z2Table(), 4)
	if !ok {
		t.Fatal("Shortcut(C2) = false, want true")
	}
	if list[0].String() != "Z" {
		t.Errorf("H_0 = %v, want Z", list[0])
	}
	if list[1].String() != "C_2" {
		t.Errorf("H_1 = %v, want C_2", list[1])
	}
	if !list[2].IsTrivial() {
		t.Errorf("H_2 = %v, want trivial", list[2])
	}
	if list[3].String() != "C_2" {
		t.Errorf("H_3 = %v, want C_2", list[3])
	}
}

func TestShortcutLeftZero(t *testing.T) {
	list, ok := Shortcut(leftZeroBandTable(), 2)
	if !ok {
		t.Fatal("Shortcut(left-zero band) = false, want true")
	}
	for i := 1; i < len(list); i++ {
		if !list[i].IsTrivial() {
			t.Errorf("H_%d = %v, want trivial", i, list[i])
		}
	}
}

func TestEquivalentSubmonoidNoneFound(t *testing.T) {
	_, _, ok := EquivalentSubmonoid(z2Table())
	if ok {
		t.Error("EquivalentSubmonoid(C2) found a proper submonoid, want none")
	}
}
