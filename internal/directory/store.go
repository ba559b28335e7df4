package directory

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

var storeSeq atomic.Uint64

// Store is an immutable snapshot of every known advocate. New data replaces the
// whole store; a Store is never modified after NewStore returns.
type Store struct {
	generation uint64
	records    []advocate.Advocate

	optionsOnce sync.Once
	degrees     []string
	specialties []string
}

// NewStore copies records into a new snapshot with a fresh generation number.
func NewStore(records []advocate.Advocate) *Store {
	copied := make([]advocate.Advocate, len(records))
	for i, a := range records {
		a.Specialties = slices.Clone(a.Specialties)
		copied[i] = a
	}
	return &Store{
		generation: storeSeq.Add(1),
		records:    copied,
	}
}

// EmptyStore returns a store holding no records.
func EmptyStore() *Store {
	return NewStore(nil)
}

// Generation identifies this snapshot. Two stores never share a generation.
func (s *Store) Generation() uint64 { return s.generation }

// Records returns the snapshot in its original order. The slice is a copy; the
// specialties of each record must be treated as read-only.
func (s *Store) Records() []advocate.Advocate {
	return slices.Clone(s.records)
}

func (s *Store) Len() int { return len(s.records) }

func (s *Store) IsEmpty() bool { return len(s.records) == 0 }

// Holder owns the current store for the rendering layer. Load swaps the snapshot
// atomically, so readers always see either the old or the new store in full.
type Holder struct {
	current atomic.Pointer[Store]
	loaded  atomic.Bool
}

func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(EmptyStore())
	return h
}

// Load replaces the entire store with records.
func (h *Holder) Load(records []advocate.Advocate) *Store {
	s := NewStore(records)
	h.current.Store(s)
	h.loaded.Store(true)
	return s
}

// replace installs next only if prev is still current.
func (h *Holder) replace(prev, next *Store) bool {
	if !h.current.CompareAndSwap(prev, next) {
		return false
	}
	h.loaded.Store(true)
	return true
}

// Current never returns nil; before the first load it is an empty store.
func (h *Holder) Current() *Store { return h.current.Load() }

// IsLoading is true until the first store has been loaded.
func (h *Holder) IsLoading() bool { return !h.loaded.Load() }

// IsEmpty is true once loading finished with no records.
func (h *Holder) IsEmpty() bool {
	return !h.IsLoading() && h.Current().IsEmpty()
}
