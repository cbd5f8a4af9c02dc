package ast

import (
	"context"

	"golang.org/x/sync/errgroup"

	ferrors "github.com/ferrite-lang/ferrite/internal/errors"
)

// Pass is a read-only analysis over a finished tree. Passes must not modify
// nodes; results go into side tables owned by the pass.
type Pass interface {
	Name() string
	Run(ctx context.Context, tree *Ast) error
}

// PassFunc adapts a function to the Pass interface.
type PassFunc struct {
	PassName string
	Fn       func(ctx context.Context, tree *Ast) error
}

func (p PassFunc) Name() string                             { return p.PassName }
func (p PassFunc) Run(ctx context.Context, tree *Ast) error { return p.Fn(ctx, tree) }

// RunPasses runs every pass concurrently over the same tree. Trees are
// immutable, so the passes need no coordination. The first failure cancels
// the context handed to the remaining passes and is returned wrapped in a
// PASS_FAILED error.
func RunPasses(ctx context.Context, tree *Ast, passes ...Pass) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range passes {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.Run(gctx, tree); err != nil {
				return ferrors.PassFailed(p.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
