package revenuecat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// PageFetcher fetches a single page of a list endpoint. An empty
// startingAfter means "first page"; the implementation must omit the
// starting_after parameter in that case rather than sending an empty value.
// Implementations are bound to one endpoint with fixed filter parameters.
type PageFetcher[T any] func(ctx context.Context, startingAfter string) (*Page[T], error)

// DefaultMaxPages caps how many pages a traversal will fetch. Termination is
// signalled only by an absent next_page; the cap guards against a misbehaving
// server handing out a non-terminating cursor chain.
const DefaultMaxPages = 1000

// PageOptions configures a traversal.
type PageOptions struct {
	// MaxPages caps total page fetches. Zero means DefaultMaxPages.
	MaxPages int
}

func (o *PageOptions) maxPages() int {
	if o == nil || o.MaxPages <= 0 {
		return DefaultMaxPages
	}

	return o.MaxPages
}

// PageIterator presents a paginated list endpoint as a single lazy sequence
// of items, hiding manual cursor management. Traversal is sequential: the
// request for page N+1 is not knowable until page N's cursor has been read.
// An iterator holds no state shared with any other iterator, so concurrent
// traversals of the same or different resources are independent; a single
// iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	fetch    PageFetcher[T]
	opts     *PageOptions
	page     *Page[T]
	index    int
	fetched  int
	started  bool
	done     bool
	firstErr error
}

// NewPageIterator creates an iterator over all pages produced by fetch,
// starting from the beginning of the list.
func NewPageIterator[T any](fetch PageFetcher[T], opts *PageOptions) *PageIterator[T] {
	return &PageIterator[T]{
		fetch: fetch,
		opts:  opts,
	}
}

// advance fetches pages until one with items is current or the sequence ends.
// Pages may legitimately be empty yet carry a cursor (e.g. server-side
// filtering), so item count never decides termination.
func (it *PageIterator[T]) advance(ctx context.Context) error {
	for {
		cursor := ""

		if it.started {
			if !it.page.HasMore() {
				it.done = true

				return nil
			}

			next, err := it.page.NextCursor()
			if err != nil {
				return err
			}

			cursor = next
		}

		if it.fetched >= it.opts.maxPages() {
			return fmt.Errorf("%w: fetched %d pages", ErrTooManyPages, it.fetched)
		}

		page, err := it.fetch(ctx, cursor)
		if err != nil {
			return err
		}

		if page == nil {
			return ErrNilPage
		}

		it.page = page
		it.index = 0
		it.fetched++
		it.started = true

		if len(page.Items) > 0 {
			return nil
		}

		if !page.HasMore() {
			it.done = true

			return nil
		}
	}
}

// Next produces the next item in the sequence, fetching further pages as
// needed. It returns ErrNoMoreItems once the final page is exhausted. A fetch
// error aborts the traversal; items yielded before the error remain valid.
func (it *PageIterator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if it.firstErr != nil {
		return zero, it.firstErr
	}

	if it.done && (it.page == nil || it.index >= len(it.page.Items)) {
		return zero, ErrNoMoreItems
	}

	if !it.started || it.index >= len(it.page.Items) {
		err := it.advance(ctx)
		if err != nil {
			it.firstErr = err

			return zero, err
		}

		if it.done && (it.page == nil || it.index >= len(it.page.Items)) {
			return zero, ErrNoMoreItems
		}
	}

	item := it.page.Items[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item into a slice, preserving server order.
func (it *PageIterator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	for {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return nil, err
		}

		items = append(items, item)
	}
}

// ForEach invokes fn for every remaining item. Returning an error from fn
// stops the traversal and propagates that error.
func (it *PageIterator[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// CurrentPage returns the most recently fetched page, or nil before the first
// fetch. Useful for callers that want the raw cursor alongside iteration.
func (it *PageIterator[T]) CurrentPage() *Page[T] {
	return it.page
}

// PagesFetched reports how many HTTP round trips the iterator has made.
func (it *PageIterator[T]) PagesFetched() int {
	return it.fetched
}

// FetchAll traverses every page and returns the concatenation of all items in
// server order. Equivalent to NewPageIterator(fetch, opts).All(ctx).
func FetchAll[T any](ctx context.Context, fetch PageFetcher[T], opts *PageOptions) ([]T, error) {
	return NewPageIterator(fetch, opts).All(ctx)
}

// ListFetcher adapts a resource client's list method into a PageFetcher. The
// caller's query is never mutated: each continuation uses a copy with only the
// cursor replaced, so limit, expand, and filters stay stable across pages.
func ListFetcher[T any](params *ListQuery, list func(ctx context.Context, params *ListQuery) (*Page[T], error)) PageFetcher[T] {
	return func(ctx context.Context, cursor string) (*Page[T], error) {
		if cursor == "" {
			return list(ctx, params)
		}

		return list(ctx, params.withCursor(cursor))
	}
}

// PageResult carries one page of a streamed traversal.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and delivers them on the returned
// channel. The channel is closed after the final page, after the first error
// (delivered as the last result), or once ctx is cancelled. The in-flight
// fetch observes ctx, so cancellation aborts it.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], opts *PageOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		cursor := ""
		fetched := 0
		maxPages := opts.maxPages()

		for {
			if fetched >= maxPages {
				emit(ctx, results, PageResult[T]{Err: fmt.Errorf("%w: fetched %d pages", ErrTooManyPages, fetched)})

				return
			}

			page, err := fetch(ctx, cursor)
			if err != nil {
				emit(ctx, results, PageResult[T]{Err: err})

				return
			}

			if page == nil {
				emit(ctx, results, PageResult[T]{Err: ErrNilPage})

				return
			}

			fetched++

			if !emit(ctx, results, PageResult[T]{Items: page.Items}) {
				return
			}

			if !page.HasMore() {
				return
			}

			cursor, err = page.NextCursor()
			if err != nil {
				emit(ctx, results, PageResult[T]{Err: err})

				return
			}
		}
	}()

	return results
}

func emit[T any](ctx context.Context, results chan<- PageResult[T], result PageResult[T]) bool {
	select {
	case results <- result:
		return true
	case <-ctx.Done():
		return false
	}
}

// DecodePage decodes a list response body into a Page. A body without an
// items array is reported as ErrMalformedPage, which is distinct from
// transport errors so callers can tell data-integrity failures apart from
// network failures.
func DecodePage[T any](body []byte) (*Page[T], error) {
	var raw struct {
		Object   string          `json:"object"`
		Items    json.RawMessage `json:"items"`
		NextPage *string         `json:"next_page"`
		URL      string          `json:"url"`
	}

	err := json.Unmarshal(body, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPage, err)
	}

	if raw.Items == nil {
		return nil, fmt.Errorf("%w: response carries no items array", ErrMalformedPage)
	}

	page := Page[T]{
		Object:   raw.Object,
		NextPage: raw.NextPage,
		URL:      raw.URL,
	}

	err = json.Unmarshal(raw.Items, &page.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPage, err)
	}

	return &page, nil
}
