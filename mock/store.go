package mock

import (
	"context"

	"github.com/fwojciec/mdxport"
)

// Compile-time interface verification.
var (
	_ mdxport.LinkStore = (*LinkStore)(nil)
	_ mdxport.Throttle  = (*Throttle)(nil)
)

// LinkStore is a mock implementation of mdxport.LinkStore.
type LinkStore struct {
	LoadFn func(ctx context.Context) ([]string, error)
	SaveFn func(ctx context.Context, links []string) error
}

func (s *LinkStore) Load(ctx context.Context) ([]string, error) {
	return s.LoadFn(ctx)
}

func (s *LinkStore) Save(ctx context.Context, links []string) error {
	return s.SaveFn(ctx, links)
}

// Throttle is a mock implementation of mdxport.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
