package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// viewReads runs the independent reads of one page concurrently. A failing
// read is logged and leaves its target at the zero value; it never fails
// the page.
type viewReads struct {
	g      *errgroup.Group
	ctx    context.Context
	logger *slog.Logger
	page   string
}

func newViewReads(ctx context.Context, logger *slog.Logger, page string) *viewReads {
	g, gctx := errgroup.WithContext(ctx)
	return &viewReads{g: g, ctx: gctx, logger: logger, page: page}
}

func (v *viewReads) Go(what string, read func(ctx context.Context) error) {
	v.g.Go(func() error {
		if err := read(v.ctx); err != nil {
			v.logger.Warn("view read failed, using empty value",
				slog.String("page", v.page),
				slog.String("read", what),
				slog.Any("error", err),
			)
		}
		return nil
	})
}

func (v *viewReads) Wait() {
	_ = v.g.Wait()
}
