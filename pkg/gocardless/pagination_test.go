package gocardless_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetcher serves a fixed sequence of pages keyed by cursor and records
// every cursor it is called with.
type pagedFetcher struct {
	pages   map[string]*gocardless.Page[string]
	calls   []string
	callErr map[string]error
}

func newPagedFetcher() *pagedFetcher {
	return &pagedFetcher{
		pages:   make(map[string]*gocardless.Page[string]),
		callErr: make(map[string]error),
	}
}

func (f *pagedFetcher) addPage(cursor string, items []string, after *string) {
	f.pages[cursor] = &gocardless.Page[string]{Items: items, After: after}
}

func (f *pagedFetcher) failAt(cursor string, err error) {
	f.callErr[cursor] = err
}

func (f *pagedFetcher) fetch(ctx context.Context, after *string) (*gocardless.Page[string], error) {
	key := "<nil>"
	if after != nil {
		key = *after
	}

	f.calls = append(f.calls, key)

	if err, ok := f.callErr[key]; ok {
		return nil, err
	}

	page, ok := f.pages[key]
	if !ok {
		return nil, errors.New("unexpected cursor: " + key)
	}

	return page, nil
}

func cursor(s string) *string {
	return &s
}

func TestIteratorWalksAllPages(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.addPage("c1", []string{"C", "D"}, cursor("c2"))
	fetcher.addPage("c2", []string{"E"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, items)
	assert.Equal(t, []string{"<nil>", "c1", "c2"}, fetcher.calls)
	assert.False(t, it.HasNext())
}

func TestIteratorSinglePage(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"only"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	require.True(t, it.HasNext())

	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "only", item)
	assert.False(t, it.HasNext())

	_, err = it.Next()
	require.ErrorIs(t, err, gocardless.ErrNoMoreItems)
	assert.Len(t, fetcher.calls, 1)
}

func TestIteratorEmptyFirstPage(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", nil, cursor("c1"))
	fetcher.addPage("c1", []string{"late"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	// Next skips over the empty page and keeps fetching.
	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "late", item)
	assert.Equal(t, []string{"<nil>", "c1"}, fetcher.calls)
}

func TestIteratorEmptyTerminalPage(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.addPage("c1", nil, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, items)
}

func TestIteratorFetchErrorIsTerminal(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.failAt("c1", fetchErr)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	// Every item before the failing boundary is delivered.
	for _, want := range []string{"A", "B"} {
		item, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, want, item)
	}

	_, err := it.Next()
	require.ErrorIs(t, err, fetchErr)
	assert.False(t, it.HasNext())

	// The error sticks and no further fetches happen.
	_, err = it.Next()
	require.ErrorIs(t, err, fetchErr)
	assert.Equal(t, []string{"<nil>", "c1"}, fetcher.calls)
}

func TestIteratorAllPropagatesError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.failAt("c1", fetchErr)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	items, err := it.All()
	require.ErrorIs(t, err, fetchErr)
	assert.Nil(t, items)
}

func TestIteratorEmptyStringCursorIsNotTerminal(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor(""))
	fetcher.addPage("", []string{"B"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, items)
	// The empty cursor must be passed through verbatim, not treated as
	// absent.
	assert.Equal(t, []string{"<nil>", ""}, fetcher.calls)
}

func TestIteratorMaxPages(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.addPage("c1", []string{"B"}, cursor("c2"))
	fetcher.addPage("c2", []string{"C"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, &gocardless.PaginationOptions{MaxPages: 2})

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, items)
	assert.Len(t, fetcher.calls, 2)
}

func TestIteratorForEach(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.addPage("c1", []string{"C"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	var seen []string

	err := it.ForEach(func(item string) error {
		seen = append(seen, item)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, seen)
}

func TestIteratorForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	stopErr := errors.New("stop")

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.addPage("c1", []string{"C"}, nil)

	it := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	var seen []string

	err := it.ForEach(func(item string) error {
		seen = append(seen, item)

		return stopErr
	})
	require.ErrorIs(t, err, stopErr)
	assert.Equal(t, []string{"A"}, seen)
	// The second page was never needed, so only one fetch happened.
	assert.Len(t, fetcher.calls, 1)
}

func TestIndependentIteratorsShareNoState(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.addPage("c1", []string{"B"}, nil)

	first := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)
	second := gocardless.NewIterator(context.Background(), fetcher.fetch, nil)

	firstItems, err := first.All()
	require.NoError(t, err)

	secondItems, err := second.All()
	require.NoError(t, err)

	assert.Equal(t, firstItems, secondItems)
	// Both runs started from the beginning.
	assert.Equal(t, []string{"<nil>", "c1", "<nil>", "c1"}, fetcher.calls)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.addPage("c1", []string{"C"}, nil)

	items, err := gocardless.FetchAllPages(context.Background(), fetcher.fetch, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, items)
}

func TestStreamPagesDeliversPagesInOrder(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A", "B"}, cursor("c1"))
	fetcher.addPage("c1", []string{"C"}, nil)

	var pages [][]string

	for result := range gocardless.StreamPages(context.Background(), fetcher.fetch, nil) {
		require.NoError(t, result.Err)
		pages = append(pages, result.Items)
	}

	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, pages)
	assert.Equal(t, []string{"<nil>", "c1"}, fetcher.calls)
}

func TestStreamPagesErrorEndsStream(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.failAt("c1", fetchErr)

	results := gocardless.StreamPages(context.Background(), fetcher.fetch, nil)

	first := <-results
	require.NoError(t, first.Err)
	assert.Equal(t, []string{"A"}, first.Items)

	second := <-results
	require.ErrorIs(t, second.Err, fetchErr)

	_, open := <-results
	assert.False(t, open)
}

func TestStreamPagesDoesNotFetchAhead(t *testing.T) {
	t.Parallel()

	var fetches atomic.Int32

	fetch := func(ctx context.Context, after *string) (*gocardless.Page[string], error) {
		n := fetches.Add(1)
		if n >= 3 {
			return &gocardless.Page[string]{Items: []string{"last"}}, nil
		}

		next := "c"

		return &gocardless.Page[string]{Items: []string{"item"}, After: &next}, nil
	}

	results := gocardless.StreamPages(context.Background(), fetch, nil)

	<-results

	// The consumer has taken one page; the producer may have fetched the
	// next one but no more than that.
	assert.Eventually(t, func() bool {
		return fetches.Load() == 2
	}, time.Second, 10*time.Millisecond)
	assert.LessOrEqual(t, fetches.Load(), int32(2))

	for range results {
	}
}

func TestStreamPagesStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var fetches atomic.Int32

	fetch := func(ctx context.Context, after *string) (*gocardless.Page[string], error) {
		fetches.Add(1)

		next := "c"

		return &gocardless.Page[string]{Items: []string{"item"}, After: &next}, nil
	}

	results := gocardless.StreamPages(ctx, fetch, nil)

	<-results
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-results:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	// The abandoned run stopped fetching shortly after cancellation.
	assert.LessOrEqual(t, fetches.Load(), int32(2))
}

func TestStreamPagesMaxPages(t *testing.T) {
	t.Parallel()

	fetcher := newPagedFetcher()
	fetcher.addPage("<nil>", []string{"A"}, cursor("c1"))
	fetcher.addPage("c1", []string{"B"}, cursor("c2"))
	fetcher.addPage("c2", []string{"C"}, nil)

	var pages int

	for result := range gocardless.StreamPages(context.Background(), fetcher.fetch, &gocardless.PaginationOptions{MaxPages: 2}) {
		require.NoError(t, result.Err)
		pages++
	}

	assert.Equal(t, 2, pages)
	assert.Len(t, fetcher.calls, 2)
}
