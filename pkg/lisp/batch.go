package lisp

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one tree of a batch.
type Result struct {
	Value Value
	Err   error
}

type Results []Result

// Err combines the errors of all failed trees, nil if every tree was evaluated.
func (rs Results) Err() error {
	var err error
	for i, r := range rs {
		if r.Err != nil {
			err = multierr.Append(err, errors.Wrapf(r.Err, "expression %d", i))
		}
	}
	return err
}

// Values returns the results in input order, nil for the failed trees.
func (rs Results) Values() []Value {
	vs := make([]Value, len(rs))
	for i, r := range rs {
		vs[i] = r.Value
	}
	return vs
}

// EvaluateContext evaluates n on a separate goroutine and gives up when ctx is done.
// An abandoned evaluation runs to completion and its result is dropped.
func (e *Evaluator) EvaluateContext(ctx context.Context, n Node) (Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch := make(chan Result, 1)
	go func() {
		v, err := e.Evaluate(n)
		ch <- Result{Value: v, Err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.Value, r.Err
	}
}

// EvaluateBatch evaluates independent trees concurrently. Failure of one tree does not stop the others,
// the returned error is only set if ctx ends before all trees are evaluated.
func (e *Evaluator) EvaluateBatch(ctx context.Context, nodes []Node) (Results, error) {
	rs := make(Results, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, n := range nodes {
		i, n := i, n
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := e.Evaluate(n)
			rs[i] = Result{Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}
