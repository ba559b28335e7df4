package advocate

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("advocate not found")
	ErrSeedDisabled = errors.New("seeding is disabled")
)

type Repository interface {
	List(ctx context.Context) ([]Advocate, error)
	GetByID(ctx context.Context, id string) (Advocate, error)
	// Insert stores the given advocates and returns them with their assigned ids.
	Insert(ctx context.Context, advocates []Advocate) ([]Advocate, error)
}

// InMemoryRepository is used when no database is configured and in tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Advocate
}

func NewInMemoryRepository(seed []Advocate) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Advocate, 0, len(seed))}
	for _, a := range seed {
		r.storage = append(r.storage, withID(Normalize(a)))
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Advocate, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (Advocate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.ID == id {
			return a, nil
		}
	}
	return Advocate{}, ErrNotFound
}

func (r *InMemoryRepository) Insert(ctx context.Context, advocates []Advocate) ([]Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Advocate, 0, len(advocates))
	for _, a := range advocates {
		a = withID(Normalize(a))
		r.storage = append(r.storage, a)
		out = append(out, a)
	}
	return out, nil
}

func withID(a Advocate) Advocate {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a
}
