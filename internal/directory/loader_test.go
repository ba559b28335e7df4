package directory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

type fakeSource struct {
	records []advocate.Advocate
	err     error
	gate    chan struct{}
	calls   atomic.Int32
}

func (f *fakeSource) List(ctx context.Context) ([]advocate.Advocate, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func TestLoader_RefreshInstallsRecords(t *testing.T) {
	holder := NewHolder()
	loader := NewLoader(&fakeSource{records: fixture()}, holder)

	store, err := loader.Refresh(context.Background())
	require.NoError(t, err)
	assert.Same(t, store, holder.Current())
	assert.Equal(t, 5, store.Len())
	assert.False(t, holder.IsLoading())
	assert.False(t, holder.IsEmpty())
}

func TestLoader_SourceErrorLoadsEmptyStore(t *testing.T) {
	holder := NewHolder()
	holder.Load(fixture())
	loader := NewLoader(&fakeSource{err: errors.New("connection refused")}, holder)

	store, err := loader.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, store.IsEmpty())
	assert.False(t, holder.IsLoading())
	assert.True(t, holder.IsEmpty())
}

func TestLoader_CancelledRefreshLeavesStore(t *testing.T) {
	holder := NewHolder()
	before := holder.Load(fixture())
	source := &fakeSource{records: []advocate.Advocate{janeDoe()}, gate: make(chan struct{})}
	loader := NewLoader(source, holder)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for source.calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	store, err := loader.Refresh(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Same(t, before, store)
	assert.Same(t, before, holder.Current())
}

func TestLoader_ConcurrentRefreshSharesFetch(t *testing.T) {
	holder := NewHolder()
	source := &fakeSource{records: fixture(), gate: make(chan struct{})}
	loader := NewLoader(source, holder)

	const callers = 5
	stores := make([]*Store, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := loader.Refresh(context.Background())
			assert.NoError(t, err)
			stores[i] = s
		}()
	}

	require.Eventually(t, func() bool { return source.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load())
	for _, s := range stores {
		assert.Same(t, holder.Current(), s)
	}
}

func TestLoader_NormalizesRecords(t *testing.T) {
	holder := NewHolder()
	loader := NewLoader(&fakeSource{records: []advocate.Advocate{
		{FirstName: "Ana", Specialties: []string{" ", "Grief", ""}, YearsOfExperience: -3},
		{FirstName: "Ben"},
	}}, holder)

	store, err := loader.Refresh(context.Background())
	require.NoError(t, err)

	got := store.Records()
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Grief"}, got[0].Specialties)
	assert.Equal(t, 0, got[0].YearsOfExperience)
	assert.NotNil(t, got[1].Specialties)
}
