// Package semihom computes the integral homology groups of a finite
// semigroup, presented by its multiplication table, via a projective
// resolution over its semigroup ring.
package semihom

import (
	"context"
	"log/slog"

	"github.com/grouphomology/semihom/invariants"
	"github.com/grouphomology/semihom/kernel"
	"github.com/grouphomology/semihom/semigroup"
	"github.com/grouphomology/semihom/strategy"
)

// Options configures a homology computation.
type Options struct {
	// MaxDim is the highest homological dimension to compute; H_0
	// through H_MaxDim are returned.
	MaxDim int

	// Oracle computes relation lattices for the resolution engine; if
	// nil, kernel.Default{} is used.
	Oracle kernel.Oracle

	// VariantBudget is the number of relabeled variants of the
	// resolution engine's hard attempt to peek at before committing;
	// see strategy.Options.
	VariantBudget int

	// Seed drives the deterministic relabelings used for variant
	// spawning.
	Seed uint64

	// Logger receives progress messages as the computation proceeds.
	// If nil, logging is suppressed.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(discardHandler{})
}

// Run computes the integral homology groups H_0(S;Z), ..., H_MaxDim(S;Z)
// of the finite semigroup presented by table.
func Run(ctx context.Context, table [][]int, opts Options) ([]invariants.Group, error) {
	t := semigroup.Table(table)
	log := opts.logger()
	log.InfoContext(ctx, "starting homology computation", "size", t.Size(), "maxdim", opts.MaxDim)

	so := strategy.Options{
		MaxDim:        opts.MaxDim,
		Oracle:        opts.Oracle,
		VariantBudget: opts.VariantBudget,
		Seed:          opts.Seed,
	}
	groups, err := strategy.Run(ctx, t, so)
	if err != nil {
		log.ErrorContext(ctx, "homology computation failed", "err", err)
		return nil, err
	}
	log.InfoContext(ctx, "homology computation complete", "dims", len(groups))
	return groups, nil
}

// discardHandler is a slog.Handler that drops every record; used as
// the zero-value logger so callers who don't configure one pay no
// logging cost.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
