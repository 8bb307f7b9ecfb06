// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"context"

	"github.com/toeirei/passforge/core/model"
	"golang.org/x/sync/errgroup"
)

// GenerateBatch produces n independent passwords on a bounded worker pool.
// Results are returned in index order; the first error cancels the rest.
func (g *Generator) GenerateBatch(ctx context.Context, s model.GenerationSettings, n int) ([]model.GenerationResult, error) {
	if n <= 0 {
		return nil, nil
	}
	// Fail fast and once for settings every worker would reject.
	if err := Validate(s.Normalized()); err != nil {
		return nil, err
	}

	out := make([]model.GenerationResult, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.batchWorkers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.Generate(s)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
