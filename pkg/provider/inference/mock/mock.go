// Package mock provides a configurable in-memory inference.Provider for tests.
package mock

import (
	"context"
	"sync"

	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
)

// Provider implements inference.Provider. Configure Result/Err before use, or
// set AnimateFunc for per-call behaviour. All fields are read under a mutex so
// a single mock can serve concurrent requests in tests.
type Provider struct {
	mu sync.Mutex

	// AnimateFunc, when non-nil, handles the call outright.
	AnimateFunc func(ctx context.Context, req inference.Request) (*inference.Result, error)

	// Result and Err are returned by Animate when AnimateFunc is nil.
	Result *inference.Result
	Err    error

	// Calls records every request received, in order.
	Calls []inference.Request
}

// Animate records the request and returns the configured outcome.
func (p *Provider) Animate(ctx context.Context, req inference.Request) (*inference.Result, error) {
	p.mu.Lock()
	p.Calls = append(p.Calls, req)
	fn := p.AnimateFunc
	res, err := p.Result, p.Err
	p.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return res, err
}

// LastCall returns the most recent request, or a zero Request when Animate
// has not been called.
func (p *Provider) LastCall() inference.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Calls) == 0 {
		return inference.Request{}
	}
	return p.Calls[len(p.Calls)-1]
}
