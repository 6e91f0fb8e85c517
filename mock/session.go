package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.PageSession = (*PageSession)(nil)

// PageSession is a mock implementation of docqa.PageSession.
type PageSession struct {
	NavigateFn func(ctx context.Context, url string) error
	EvaluateFn func(ctx context.Context, js string, out interface{}, args ...interface{}) error
	CloseFn    func() error
}

func (s *PageSession) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *PageSession) Evaluate(ctx context.Context, js string, out interface{}, args ...interface{}) error {
	return s.EvaluateFn(ctx, js, out, args...)
}

func (s *PageSession) Close() error {
	return s.CloseFn()
}
