// Package kernel provides the oracle abstraction used by the
// resolution engine to compute relation lattices among a list of
// vectors, and a resource-bounded variant that aborts expensive
// computations instead of running unbounded.
package kernel

//go:generate go tool stringer -type=FailureKind

import (
	"context"
	"errors"
	"fmt"

	"github.com/grouphomology/semihom/lattice"
	"github.com/grouphomology/semihom/zvec"
)

// ErrResourceExceeded is returned by a Bounded oracle when a relation
// computation would exceed its configured resource bound.
var ErrResourceExceeded = errors.New("kernel: resource bound exceeded")

// FailureKind classifies why an Oracle call failed, for diagnostics
// and logging at the call site.
type FailureKind int

const (
	// FailureNone indicates no failure occurred.
	FailureNone FailureKind = iota
	// FailureResourceExceeded indicates a configured resource bound
	// (vector count or dimension) was exceeded.
	FailureResourceExceeded
	// FailureContextCanceled indicates the caller's context was
	// canceled or timed out before the computation completed.
	FailureContextCanceled
)

// Oracle computes the lattice of integer relations among a list of
// vectors: the set of coefficient tuples (c_1, ..., c_k) such that
// sum c_i * vectors[i] = 0.
type Oracle interface {
	Relations(ctx context.Context, vectors []zvec.Vector, dim int) (*lattice.Lattice, error)
}

// Default is the Oracle backed directly by lattice.RelationsAmong,
// with no resource bound.
type Default struct{}

// Relations computes the relation lattice directly.
func (Default) Relations(ctx context.Context, vectors []zvec.Vector, dim int) (*lattice.Lattice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return lattice.RelationsAmong(vectors, dim), nil
}

// Bounded wraps an Oracle, refusing to compute relations among more
// than MaxVectors vectors or in more than MaxDim ambient dimensions. A
// value of zero for either bound means unbounded in that dimension.
type Bounded struct {
	Inner      Oracle
	MaxVectors int
	MaxDim     int
}

// Relations enforces the configured bounds before delegating to Inner.
func (b Bounded) Relations(ctx context.Context, vectors []zvec.Vector, dim int) (*lattice.Lattice, error) {
	if b.MaxVectors > 0 && len(vectors) > b.MaxVectors {
		return nil, fmt.Errorf("kernel: %w: %d vectors exceeds bound %d", ErrResourceExceeded, len(vectors), b.MaxVectors)
	}
	if b.MaxDim > 0 && dim > b.MaxDim {
		return nil, fmt.Errorf("kernel: %w: dimension %d exceeds bound %d", ErrResourceExceeded, dim, b.MaxDim)
	}
	inner := b.Inner
	if inner == nil {
		inner = Default{}
	}
	return inner.Relations(ctx, vectors, dim)
}

// Classify reports the FailureKind corresponding to an error returned
// from an Oracle, or FailureNone if err is nil.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrResourceExceeded):
		return FailureResourceExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return FailureContextCanceled
	default:
		return FailureNone
	}
}
