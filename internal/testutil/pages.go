package testutil

import (
	"context"
	"sync"
)

// PageRecorder records revalidated paths.
type PageRecorder struct {
	mu    sync.Mutex
	Paths []string
	Err   error
}

func (p *PageRecorder) Revalidate(ctx context.Context, paths ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Paths = append(p.Paths, paths...)
	return p.Err
}

func (p *PageRecorder) Seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Paths...)
}
