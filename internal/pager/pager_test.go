package pager

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"
)

type item struct {
	ID string
}

func byID(i item) string { return i.ID }

func makeItems(start, count int) []item {
	out := make([]item, count)
	for i := 0; i < count; i++ {
		out[i] = item{ID: fmt.Sprintf("id-%d", start+i)}
	}
	return out
}

func TestLoadMoreAdvancesUntilShortPage(t *testing.T) {
	pages := [][]item{
		makeItems(0, 3),
		makeItems(3, 3),
		makeItems(6, 1), // short page: list is exhausted
	}
	calls := 0
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		if wantSkip := calls * 3; skip != wantSkip {
			t.Errorf("call %d: skip = %d, want %d", calls, skip, wantSkip)
		}
		page := pages[calls]
		calls++
		return page, nil
	}

	l := New(3, fetch, byID, zap.NewNop())

	for i := 0; i < 3; i++ {
		if !l.HasMore() {
			t.Fatalf("exhausted after %d pages, want 3", i)
		}
		if _, err := l.LoadMore(context.Background()); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}

	if l.HasMore() {
		t.Error("short page should have exhausted the list")
	}
	if got := l.Len(); got != 7 {
		t.Errorf("accumulated %d items, want 7", got)
	}

	// Further loads are no-ops
	if _, err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("load after exhaustion failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("fetch called %d times, want 3", calls)
	}
}

func TestEmptyPageExhausts(t *testing.T) {
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		return nil, nil
	}

	l := New(10, fetch, byID, zap.NewNop())
	if _, err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if l.HasMore() {
		t.Error("zero-length page must set no-more-data")
	}
	if l.Len() != 0 {
		t.Errorf("accumulated %d items, want 0", l.Len())
	}
}

func TestDedupOnAppend(t *testing.T) {
	pages := [][]item{
		{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		{{ID: "c"}, {ID: "d"}, {ID: "e"}}, // "c" repeats across pages
	}
	calls := 0
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		page := pages[calls]
		calls++
		return page, nil
	}

	l := New(3, fetch, byID, zap.NewNop())
	l.LoadMore(context.Background())

	added, err := l.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if added != 2 {
		t.Errorf("second page added %d items, want 2", added)
	}
	if got := l.Len(); got != 5 {
		t.Errorf("accumulated %d items, want 5", got)
	}

	seen := make(map[string]int)
	for _, it := range l.Items() {
		seen[it.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("item %q appears %d times", id, n)
		}
	}
}

func TestResetRestartsFromZero(t *testing.T) {
	var gotSkips []int
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		gotSkips = append(gotSkips, skip)
		return makeItems(skip, limit), nil
	}

	l := New(2, fetch, byID, zap.NewNop())
	l.LoadMore(context.Background())
	l.LoadMore(context.Background())

	l.Reset()

	if l.Len() != 0 {
		t.Errorf("reset left %d items, want 0", l.Len())
	}
	if !l.HasMore() {
		t.Error("reset must clear exhaustion")
	}

	l.LoadMore(context.Background())
	want := []int{0, 2, 0}
	if len(gotSkips) != len(want) {
		t.Fatalf("skips = %v, want %v", gotSkips, want)
	}
	for i := range want {
		if gotSkips[i] != want[i] {
			t.Errorf("skips = %v, want %v", gotSkips, want)
			break
		}
	}
}

func TestStalePageDiscardedAfterReset(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		close(started)
		<-release
		return []item{{ID: "stale-1"}, {ID: "stale-2"}}, nil
	}

	l := New(2, fetch, byID, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.LoadMore(context.Background())
	}()

	<-started
	l.Reset() // filter changed while the fetch is in flight
	close(release)
	wg.Wait()

	if got := l.Len(); got != 0 {
		t.Errorf("stale page was appended after reset: %d items", got)
	}

	// The new generation can still load normally
	l2calls := 0
	l.fetch = func(ctx context.Context, skip, limit int) ([]item, error) {
		l2calls++
		return []item{{ID: "fresh"}}, nil
	}
	if _, err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("load after reset failed: %v", err)
	}
	if l2calls != 1 || l.Len() != 1 {
		t.Errorf("load after reset: calls=%d len=%d, want 1/1", l2calls, l.Len())
	}
}

func TestConcurrentLoadSuppressed(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		calls++
		close(started)
		<-release
		return makeItems(0, 1), nil
	}

	l := New(2, fetch, byID, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.LoadMore(context.Background())
	}()

	<-started
	// Second trigger while the first is in flight must be a no-op
	added, err := l.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("concurrent load errored: %v", err)
	}
	if added != 0 {
		t.Errorf("concurrent load added %d items, want 0", added)
	}

	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestFetchErrorKeepsState(t *testing.T) {
	fail := true
	fetch := func(ctx context.Context, skip, limit int) ([]item, error) {
		if fail {
			return nil, fmt.Errorf("backend unavailable")
		}
		return makeItems(skip, 1), nil
	}

	l := New(2, fetch, byID, zap.NewNop())
	if _, err := l.LoadMore(context.Background()); err == nil {
		t.Fatal("expected error from failing fetch")
	}

	if !l.HasMore() {
		t.Error("a failed fetch must not exhaust the list")
	}

	// Retry succeeds at the same offset
	fail = false
	if _, err := l.LoadMore(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("accumulated %d items after retry, want 1", l.Len())
	}
}
