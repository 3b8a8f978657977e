package cover

import (
	"github.com/google/go-cmp/cmp"
	"testing"

	"github.com/grouphomology/semihom/zvec"
)

func eqVecs(vecCmp cmp.Option, a, b []zvec.Vector) bool {
	return cmp.Equal(a, b, vecCmp)
}

func vecCmpOpt() cmp.Option {
	return cmp.Comparer(func(a, b zvec.Vector) bool { return zvec.Equal(a, b) })
}

func TestGeneratingSubsetSingleVector(t *testing.T) {
	known := []zvec.Vector{zvec.FromInts(1)}
	got := GeneratingSubset(1, known, nil, []int{1}, false, false)
	want := []zvec.Vector{zvec.FromInts(1)}
	if !eqVecs(vecCmpOpt(), got, want) {
		t.Errorf("GeneratingSubset = %v, want %v", got, want)
	}
}

func TestGeneratingSubsetActionClosureCoversWithFewerGenerators(t *testing.T) {
	// A single generator whose action orbit reaches the whole lattice
	// should suffice on its own: selecting known[0] and following its
	// swap-action image spans both dimensions without needing known[1].
	known := []zvec.Vector{zvec.FromInts(1, 0), zvec.FromInts(0, 1)}
	swap := zvec.Action{1, 0}
	got := GeneratingSubset(2, known, []zvec.Action{swap}, []int{1, 1}, false, false)
	if len(got) != 1 {
		t.Fatalf("GeneratingSubset = %v, want exactly 1 generator via action closure", got)
	}
	if !zvec.Equal(got[0], known[0]) {
		t.Errorf("GeneratingSubset picked %v, want %v", got[0], known[0])
	}
}

func TestGeneratingSubsetKeepsIndependentGenerators(t *testing.T) {
	known := []zvec.Vector{
		zvec.FromInts(1, 0, 0),
		zvec.FromInts(0, 1, 0),
		zvec.FromInts(0, 0, 1),
	}
	got := GeneratingSubset(3, known, nil, []int{1, 1, 1}, true, true)
	if len(got) != 3 {
		t.Errorf("GeneratingSubset dropped an independent generator: got %v", got)
	}
}

func TestGeneratingSubsetDropsRedundant(t *testing.T) {
	known := []zvec.Vector{
		zvec.FromInts(1, 0),
		zvec.FromInts(0, 1),
		zvec.FromInts(1, 1),
	}
	got := GeneratingSubset(2, known, nil, []int{1, 1, 1}, true, true)
	if len(got) != 2 {
		t.Errorf("GeneratingSubset = %v, want 2 generators after shrinking", got)
	}
}
