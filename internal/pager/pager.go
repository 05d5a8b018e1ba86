package pager

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// FetchFunc retrieves one page of items at the given offset
type FetchFunc[T any] func(ctx context.Context, skip, limit int) ([]T, error)

// KeyFunc extracts the identifier used for duplicate filtering
type KeyFunc[T any] func(item T) string

// Loader accumulates a paginated list: fetch at the current offset,
// append the genuinely new items, and stop once a short page arrives.
// A single owned loading flag makes concurrent load triggers idempotent,
// and a generation counter lets Reset win over any fetch still in flight.
type Loader[T any] struct {
	pageSize int
	fetch    FetchFunc[T]
	key      KeyFunc[T]
	logger   *zap.Logger

	mu         sync.Mutex
	items      []T
	seen       map[string]struct{}
	skip       int
	exhausted  bool
	loading    bool
	generation uint64
}

// New creates a loader. pageSize is fixed per call site; key must be
// stable per item identity.
func New[T any](pageSize int, fetch FetchFunc[T], key KeyFunc[T], logger *zap.Logger) *Loader[T] {
	return &Loader[T]{
		pageSize: pageSize,
		fetch:    fetch,
		key:      key,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

// LoadMore fetches the next page and appends its new items. It is a no-op
// when the list is exhausted or another load is already in flight.
// Returns the number of items actually appended.
func (l *Loader[T]) LoadMore(ctx context.Context) (int, error) {
	l.mu.Lock()
	if l.loading || l.exhausted {
		l.mu.Unlock()
		return 0, nil
	}
	l.loading = true
	gen := l.generation
	skip := l.skip
	l.mu.Unlock()

	page, err := l.fetch(ctx, skip, l.pageSize)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		// A reset happened while this fetch was in flight. The page is
		// stale: discard it without touching the accumulated list. The
		// loading flag now belongs to the new generation.
		l.logger.Debug("Discarding stale page",
			zap.Int("skip", skip),
			zap.Uint64("generation", gen),
		)
		return 0, nil
	}

	l.loading = false
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range page {
		k := l.key(item)
		if _, dup := l.seen[k]; dup {
			continue
		}
		l.seen[k] = struct{}{}
		l.items = append(l.items, item)
		added++
	}

	l.skip += l.pageSize
	if len(page) < l.pageSize {
		l.exhausted = true
	}

	l.logger.Debug("Page loaded",
		zap.Int("skip", skip),
		zap.Int("page_len", len(page)),
		zap.Int("added", added),
		zap.Bool("exhausted", l.exhausted),
	)

	return added, nil
}

// Reset restarts pagination from offset zero with an empty accumulation.
// Used when the search text or date filter changes: the replacement
// semantics always win over an in-flight prior fetch.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.items = nil
	l.seen = make(map[string]struct{})
	l.skip = 0
	l.exhausted = false
	l.loading = false
}

// Items returns a snapshot copy of the accumulated list
func (l *Loader[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the accumulated item count
func (l *Loader[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// HasMore reports whether another page may exist
func (l *Loader[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.exhausted
}

// DrainAll loads pages until the list is exhausted or the context is
// cancelled. Convenience for non-interactive callers.
func (l *Loader[T]) DrainAll(ctx context.Context) error {
	for l.HasMore() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.LoadMore(ctx); err != nil {
			return err
		}
	}
	return nil
}
