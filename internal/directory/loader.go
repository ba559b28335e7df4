package directory

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

// Source supplies the full advocate list. advocate.Service and advocate.Client both satisfy it.
type Source interface {
	List(ctx context.Context) ([]advocate.Advocate, error)
}

// Loader refreshes a Holder from a Source. A failing source yields an empty store;
// a cancelled refresh leaves the holder untouched.
type Loader struct {
	source Source
	holder *Holder
	group  singleflight.Group
	logger *slog.Logger
}

func NewLoader(source Source, holder *Holder) *Loader {
	return &Loader{
		source: source,
		holder: holder,
		logger: slog.Default().With("component", "directory-loader"),
	}
}

type loadResult struct {
	prev, next *Store
	failed     bool
}

// Refresh fetches all records and installs them as the new store. Concurrent calls
// share one fetch. The returned store is the holder's current store after the call.
// The only error returned is ctx's, when ctx ends before the fetch completes.
func (l *Loader) Refresh(ctx context.Context) (*Store, error) {
	ch := l.group.DoChan("refresh", func() (any, error) {
		prev := l.holder.Current()
		records, err := l.source.List(ctx)
		failed := err != nil
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			l.logger.Warn("advocate source failed, loading an empty directory", "error", err)
			records = nil
		}
		return loadResult{prev: prev, next: NewStore(advocate.NormalizeAll(records)), failed: failed}, nil
	})

	select {
	case <-ctx.Done():
		storeLoads.WithLabelValues("cancelled").Inc()
		return l.holder.Current(), ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			storeLoads.WithLabelValues("cancelled").Inc()
			return l.holder.Current(), res.Err
		}
		if err := ctx.Err(); err != nil {
			storeLoads.WithLabelValues("cancelled").Inc()
			return l.holder.Current(), err
		}
		lr := res.Val.(loadResult)
		if l.holder.replace(lr.prev, lr.next) {
			outcome := "ok"
			if lr.failed {
				outcome = "source_error"
			}
			storeLoads.WithLabelValues(outcome).Inc()
			storeSize.Set(float64(lr.next.Len()))
			l.logger.Info("directory loaded", "records", lr.next.Len(), "generation", lr.next.Generation())
		}
		return l.holder.Current(), nil
	}
}
