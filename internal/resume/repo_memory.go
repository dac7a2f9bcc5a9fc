package resume

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.Mutex
	data []Request
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the request in memory.
func (r *MemoryRepo) Create(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, req)
	return nil
}

// All returns a copy of the stored requests.
func (r *MemoryRepo) All() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.data))
	copy(out, r.data)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
