package gocardless

import (
	"context"
)

// Page is one batch of items returned by a single fetch call, plus the
// cursor identifying the next page. A nil After means the server reported
// no further pages; an empty string is a valid cursor and is round-tripped
// verbatim.
type Page[T any] struct {
	Items []T
	After *string
}

// PageFetcher fetches a single page of results. The first call of a
// pagination run receives a nil cursor; every subsequent call receives the
// After cursor returned by the previous call. Implementations must not be
// applied to non-idempotent endpoints.
type PageFetcher[T any] func(ctx context.Context, after *string) (*Page[T], error)

// PaginationOptions controls pagination behavior.
type PaginationOptions struct {
	// Limit is the page size requested from the API (applied by the
	// service binding the fetcher, not by the driver).
	Limit int
	// MaxPages caps the number of pages fetched in one run. Zero means
	// unbounded: the run ends only when the server omits the next cursor.
	MaxPages int
}

// DefaultPaginationOptions returns the default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		Limit: 50,
	}
}

// Iterator lazily walks every item across every page of a cursor-paginated
// list endpoint. Each page is fetched on demand, on the calling goroutine,
// when the previous page's items are exhausted. An Iterator is owned by a
// single pagination run and is not safe for concurrent use; independent
// runs share no state.
type Iterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	options *PaginationOptions

	buffer  []T
	cursor  *string
	started bool
	done    bool
	pages   int
	err     error
}

// NewIterator creates an iterator over all pages produced by fetch,
// starting a fresh run with a nil cursor.
func NewIterator[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) *Iterator[T] {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	return &Iterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		options: options,
	}
}

// HasNext reports whether another item may be available. It never performs
// a fetch: it returns true while buffered items remain or while the server
// has not yet reported the terminal page.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	return len(it.buffer) > 0 || !it.done
}

// Next returns the next item, fetching the next page when the current one
// is exhausted. It returns ErrNoMoreItems once the run is complete. A fetch
// failure is returned at the boundary where it occurred and makes the
// iterator terminal; it is never retried.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for len(it.buffer) == 0 {
		if it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetchNextPage()
		if err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All drains the remaining items into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error
// returned by fn or by a page fetch.
func (it *Iterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *Iterator[T]) fetchNextPage() error {
	if it.started && it.cursor == nil {
		it.done = true

		return ErrNoMoreItems
	}

	page, err := it.fetch(it.ctx, it.cursor)
	if err != nil {
		return err
	}

	it.started = true
	it.pages++
	it.buffer = page.Items
	it.cursor = page.After

	if page.After == nil {
		it.done = true
	}

	if it.options.MaxPages > 0 && it.pages >= it.options.MaxPages {
		it.done = true
		it.cursor = nil
	}

	return nil
}

// PageResult is one element of an asynchronous page sequence: the items of
// a successfully fetched page, or the error that ended the run.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages returns a lazy asynchronous sequence of pages. A single
// producer goroutine fetches pages in cursor order; the channel is
// unbuffered, so page N+1 is not requested until the consumer has received
// page N. The channel is closed after the terminal page, after an error
// result, when ctx is cancelled, or when the configured MaxPages is
// reached. Abandoning the channel with ctx cancellation stops further
// fetches.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		var cursor *string

		pages := 0

		for {
			page, err := fetch(ctx, cursor)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			pages++

			if page.After == nil {
				return
			}

			if options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}

			cursor = page.After
		}
	}()

	return results
}

// FetchAllPages drains every page into a single slice.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	return NewIterator(ctx, fetch, options).All()
}
