// SPDX-License-Identifier: MIT
// Package sparse: concurrent solves sharing one factor.

package sparse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveMany solves A·x = rhs[i] for every i, running at most limit solves at
// once (limit <= 0 means no limit). Results are returned in rhs order.
//
// The first failure cancels the remaining solves and is returned with the
// index of its right-hand side; ctx cancellation is reported as ctx.Err().
func (c *Cholesky) SolveMany(ctx context.Context, rhs [][]float64, limit int) ([][]float64, error) {
	if c == nil {
		return nil, sparseErrorf(opSolveMany, ErrNilMatrix)
	}
	out := make([][]float64, len(rhs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, b := range rhs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := c.Solve(b)
			if err != nil {
				return fmt.Errorf("rhs %d: %w", i, err)
			}
			out[i] = x

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, sparseErrorf(opSolveMany, err)
	}

	return out, nil
}
