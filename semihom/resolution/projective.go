package resolution

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/grouphomology/semihom/cover"
	"github.com/grouphomology/semihom/invariants"
	"github.com/grouphomology/semihom/kernel"
	"github.com/grouphomology/semihom/semigroup"
	"github.com/grouphomology/semihom/zvec"
)

// ProjectiveResolution is a free resolution of Z over Z[S] for a
// finite semigroup S, built lazily and memoized through a shared
// Cache so that isomorphic steps are computed once no matter how many
// paths reach them.
//
// Every node's free generators are taken to be based at the identity
// element adjoined by preprocessing (table.Identity()): the node's own
// ℤ-basis is k disjoint copies of S, one per generator, where k is the
// node's Rank. This is exact whenever S is a group (the identity is
// then S's only idempotent, so S·e = S for every generator at every
// depth, which is precisely the classical bar-resolution
// construction); for a monoid with several idempotents it is a
// simplification — every generator is still treated as based at the
// identity rather than at whichever idempotent its orbit actually
// belongs to. See DESIGN.md.
type ProjectiveResolution struct {
	Oracle kernel.Oracle
	Cache  *Cache
	Root   *Node

	n          int           // |S|
	baseAction []zvec.Action // baseAction[s][x] = table.Mul(s, x)

	// stepGenerators[key] holds, for the node with that key, the
	// generating vectors chosen for it: each is the image of one of
	// the node's own free generators inside its parent's ℤ-basis.
	stepGenerators map[string][]zvec.Vector
}

// NewProjectiveResolution builds the root of a resolution from the
// augmentation map ℤ[S] → ℤ for the semigroup presented by table
// (which must already have a two-sided identity; strategy.Run
// arranges this via preprocessing before constructing a resolution).
func NewProjectiveResolution(oracle kernel.Oracle, table semigroup.Table) *ProjectiveResolution {
	n := table.Size()
	base := make([]zvec.Action, n)
	for s := 0; s < n; s++ {
		a := make(zvec.Action, n)
		for x := 0; x < n; x++ {
			a[x] = table.Mul(s, x)
		}
		base[s] = a
	}

	id, _ := table.Identity()
	var kernelBasis []zvec.Vector
	for i := 0; i < n; i++ {
		if i == id {
			continue
		}
		v := zvec.NewVector(n)
		v[i] = big.NewInt(1)
		v[id] = big.NewInt(-1)
		kernelBasis = append(kernelBasis, v)
	}

	chosen := cover.GeneratingSubset(n, kernelBasis, base, nil, true, true)
	cache := NewCache()

	// root is the free ZS-module on a single generator, ZS itself
	// (spec.md §4.4's "C0"): the augmentation map's boundary into it,
	// after collapsing the S-action (as every chain group is, when
	// reading off homology at a single dimension), is always the zero
	// map, since every generator of the augmentation ideal is of the
	// form s - id with augmentation sum 0. So root's own homology is
	// always Z, with no torsion, regardless of S — this is the
	// standard fact that H_0(S;Z) = Z (x) _{ZS} Z = Z for every finite
	// monoid S, not something that needs computing from S's structure.
	root, _ := cache.GetOrCreate("C0", 1)
	first, created := cache.GetOrCreate(canonicalKey(chosen), len(chosen))
	cache.Link(root, first, nil)
	stepGenerators := map[string][]zvec.Vector{}
	if created {
		stepGenerators[first.Key] = chosen
	}
	return &ProjectiveResolution{
		Oracle:         oracle,
		Cache:          cache,
		Root:           root,
		n:              n,
		baseAction:     base,
		stepGenerators: stepGenerators,
	}
}

// canonicalKey derives a structural cache key from a set of generating
// vectors: two generating sets that are literally equal (as opposed to
// merely isomorphic) collapse to the same node. Using the vectors'
// literal values rather than a deeper invariant is a simplification:
// it still lets truly repeated steps (as in a periodic resolution
// walking the same relation lattice over and over) share a node, which
// is what is needed for the DAG to close into cycles, but it will miss
// sharing between steps that are isomorphic without being identical.
func canonicalKey(vectors []zvec.Vector) string {
	strs := make([]string, len(vectors))
	for i, v := range vectors {
		strs[i] = v.String()
	}
	sort.Strings(strs)
	return fmt.Sprintf("%d:%v", len(vectors), strs)
}

// repeatAction tiles base, the action of one semigroup element on a
// single copy of S, across `times` disjoint copies laid end to end: it
// is how the action of s on a module with several generators, each
// based at the identity, is assembled from the action of s on S itself.
func repeatAction(base zvec.Action, times int) zvec.Action {
	n := len(base)
	out := make(zvec.Action, n*times)
	for block := 0; block < times; block++ {
		off := block * n
		for x, y := range base {
			out[off+x] = off + y
		}
	}
	return out
}

// Expand computes node's children, if it has none yet. node's own k
// generators, each already known as a vector into its parent's
// ℤ-basis (of size N′), are acted on by every s ∈ S via the action
// tables for the parent's module (repeatAction of the per-element base
// action, tiled across the parent's own generator count); the N = k·|S|
// resulting images are exactly the boundary map's matrix columns
// (spec.md §4.4, "Extending by one dimension", step 1), and the
// oracle computes their relations (step 2) to produce node's own
// kernel. That kernel is then covered, using the action tables for
// node's own module, down to a small generating subset that becomes
// the single child (a resolution node may in general decompose into
// several independent children when its relation lattice splits
// across disjoint generator blocks; this implementation always
// produces exactly one, the common case once every generator is
// based at a shared identity).
func (pr *ProjectiveResolution) Expand(ctx context.Context, node *Node) error {
	if len(node.Children) > 0 || node.Rank == 0 {
		return nil
	}
	generators, ok := pr.stepGenerators[node.Key]
	if !ok {
		return fmt.Errorf("resolution: no generators recorded for node %q", node.Key)
	}
	k := len(generators)
	nPrime := generators[0].Len()
	parentK := nPrime / pr.n

	actionsParent := make([]zvec.Action, pr.n)
	for s := 0; s < pr.n; s++ {
		actionsParent[s] = repeatAction(pr.baseAction[s], parentK)
	}

	columns := make([]zvec.Vector, 0, k*pr.n)
	for i := 0; i < k; i++ {
		for s := 0; s < pr.n; s++ {
			columns = append(columns, actionsParent[s].Shuffle(generators[i], nPrime))
		}
	}

	rel, err := pr.Oracle.Relations(ctx, columns, nPrime)
	if err != nil {
		return err
	}
	if rel.Rank() == 0 {
		return nil
	}

	divisors := rel.NonzeroInvariants()
	basis := rel.Basis()

	actionsCur := make([]zvec.Action, pr.n)
	for s := 0; s < pr.n; s++ {
		actionsCur[s] = repeatAction(pr.baseAction[s], k)
	}
	chosen := cover.GeneratingSubset(rel.Dim(), basis, actionsCur, nil, true, true)

	childKey := canonicalKey(chosen)
	child, created := pr.Cache.GetOrCreate(childKey, len(chosen))
	if created {
		pr.stepGenerators[childKey] = chosen
	}
	pr.Cache.Link(node, child, divisors)
	return nil
}

// HomologyList computes H_0, ..., H_maxdim of the resolution rooted at
// pr.Root, expanding nodes breadth-first up to maxdim+1 steps deep and
// then reading off each dimension's homology with the shift trick.
func (pr *ProjectiveResolution) HomologyList(ctx context.Context, maxdim int) ([]invariants.Group, error) {
	frontier := []*Node{pr.Root}
	for depth := 0; depth <= maxdim; depth++ {
		var next []*Node
		seen := map[string]bool{}
		for _, n := range frontier {
			if err := pr.Expand(ctx, n); err != nil {
				return nil, err
			}
			for _, c := range n.Children {
				if !seen[c.Key] {
					seen[c.Key] = true
					next = append(next, c)
				}
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}

	memo := NewMemo()
	out := make([]invariants.Group, maxdim+1)
	for d := 0; d <= maxdim; d++ {
		fr, torsion := HomologyWithShift(memo, pr.Root, d)
		out[d] = invariants.FromElementaryDivisors(fr, SortedDivisors(torsion))
	}
	return out, nil
}
