package zvec

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func bigCmp() cmp.Option {
	return cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })
}

func TestAddSub(t *testing.T) {
	v := FromInts(1, 2, 3)
	w := FromInts(4, -1, 0)

	got := Add(v, w)
	want := FromInts(5, 1, 3)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Add(%v, %v) = %v, want %v", v, w, got, want)
	}

	got = Sub(v, w)
	want = FromInts(-3, 3, 3)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Sub(%v, %v) = %v, want %v", v, w, got, want)
	}
}

func TestScale(t *testing.T) {
	v := FromInts(1, -2, 3)
	got := ScaleInt(3, v)
	want := FromInts(3, -6, 9)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("ScaleInt(3, %v) = %v, want %v", v, got, want)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(FromInts(1, 2), FromInts(1, 2)) {
		t.Error("Equal(1,2 / 1,2) = false, want true")
	}
	if Equal(FromInts(1, 2), FromInts(1, 3)) {
		t.Error("Equal(1,2 / 1,3) = true, want false")
	}
	if Equal(FromInts(1, 2), FromInts(1, 2, 3)) {
		t.Error("Equal with mismatched lengths = true, want false")
	}
}

func TestConcat(t *testing.T) {
	got := Concat(FromInts(1, 2), FromInts(3), FromInts())
	want := FromInts(1, 2, 3)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Concat = %v, want %v", got, want)
	}
}

func TestActionShufflePermutation(t *testing.T) {
	// a sends source index i to target index a[i]; when a is a
	// bijection this is an ordinary coordinate permutation.
	a := Action{2, 0, 1}
	v := FromInts(10, 20, 30)
	got := a.Shuffle(v, 3)
	want := FromInts(20, 30, 10)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Shuffle = %v, want %v", got, want)
	}
}

func TestActionShuffleAccumulatesCollisions(t *testing.T) {
	// a non-injective action models a non-invertible semigroup element:
	// indices 0 and 2 both land on target 0, so their coordinates sum.
	a := Action{0, 1, 0}
	v := FromInts(5, 7, 11)
	got := a.Shuffle(v, 2)
	want := FromInts(16, 7)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Shuffle = %v, want %v", got, want)
	}
}

func TestActionShuffleDropsOutOfRangeAndShrinksLength(t *testing.T) {
	a := Action{0, 2, 5}
	v := FromInts(1, 2, 3)
	got := a.Shuffle(v, 3)
	want := FromInts(1, 0, 2)
	if !cmp.Equal(got, want, bigCmp()) {
		t.Errorf("Shuffle = %v, want %v", got, want)
	}
}

func TestActionCompose(t *testing.T) {
	a := Action{1, 2, 0}
	b := Action{2, 0, 1}
	got := a.Compose(b)
	want := Action{0, 1, 2}
	if diff := cmp.Diff(want, got, cmpopts.EquateComparable()); diff != "" {
		t.Errorf("Compose mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentityShuffle(t *testing.T) {
	id := Identity(4)
	v := FromInts(1, 2, 3, 4)
	got := id.Shuffle(v, 4)
	if !cmp.Equal(got, v, bigCmp()) {
		t.Errorf("Identity.Shuffle = %v, want %v", got, v)
	}
}
