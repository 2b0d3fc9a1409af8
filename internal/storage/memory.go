package storage

import (
	"context"
	"slices"
	"sync"

	"citadels-console/internal/engine"
)

type memoryRepo struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemory returns a process-local repository. Snapshots are stored
// encoded so callers never share state with the store.
func NewMemory() Repository {
	return &memoryRepo{items: make(map[string][]byte)}
}

func (r *memoryRepo) Save(ctx context.Context, name string, s *engine.Snapshot) error {
	key, err := normalizeName(name)
	if err != nil {
		return err
	}
	data, err := encode(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = data
	return nil
}

func (r *memoryRepo) Load(ctx context.Context, name string) (*engine.Snapshot, error) {
	key, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	data, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}

func (r *memoryRepo) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	slices.Sort(names)
	return names, nil
}

func (r *memoryRepo) Close() error { return nil }
