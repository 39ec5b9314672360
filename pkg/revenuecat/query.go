package revenuecat

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListQuery holds the query parameters accepted by list endpoints: the
// universal limit/starting_after pair plus resource-specific expansions and
// filters.
type ListQuery struct {
	// Limit is the requested page size. Zero means "use the server default";
	// the server caps the effective value. Explicitly negative values are
	// rejected before any request is made.
	Limit int
	// StartingAfter is the opaque continuation token from a previous page.
	// Empty means "first page", in which case the parameter is omitted from
	// the query string entirely rather than sent as an empty value.
	StartingAfter string
	// Expand lists related objects to inline in the response.
	Expand []string
	// Filters holds resource-specific filter parameters.
	Filters map[string]string

	limitSet bool
}

// NewListQuery creates an empty ListQuery.
func NewListQuery() *ListQuery {
	return &ListQuery{
		Filters: make(map[string]string),
	}
}

// WithLimit sets the page size.
func (q *ListQuery) WithLimit(limit int) *ListQuery {
	q.Limit = limit
	q.limitSet = true

	return q
}

// WithStartingAfter sets the continuation token.
func (q *ListQuery) WithStartingAfter(cursor string) *ListQuery {
	q.StartingAfter = cursor

	return q
}

// WithExpand appends expandable field names.
func (q *ListQuery) WithExpand(fields ...string) *ListQuery {
	q.Expand = append(q.Expand, fields...)

	return q
}

// WithFilter sets a resource-specific filter parameter.
func (q *ListQuery) WithFilter(key, value string) *ListQuery {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// Validate checks the query for caller errors. It is invoked by Encode, so
// every list call validates before touching the network.
func (q *ListQuery) Validate() error {
	if q == nil {
		return nil
	}

	if q.Limit < 0 || (q.limitSet && q.Limit == 0) {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, q.Limit)
	}

	return nil
}

// Encode renders the query as a raw query string. The starting_after token is
// appended verbatim, without URL re-encoding, because the server issues it as
// an opaque value that must round-trip byte-for-byte; everything else goes
// through standard encoding.
func (q *ListQuery) Encode() (string, error) {
	if q == nil {
		return "", nil
	}

	err := q.Validate()
	if err != nil {
		return "", err
	}

	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if len(q.Expand) > 0 {
		for _, field := range q.Expand {
			values.Add("expand", field)
		}
	}

	for key, value := range q.Filters {
		values.Set(key, value)
	}

	encoded := values.Encode()

	if q.StartingAfter != "" {
		if encoded != "" {
			encoded += "&"
		}

		encoded += "starting_after=" + q.StartingAfter
	}

	return encoded, nil
}

// withCursor returns a copy of the query with the continuation token
// replaced. The iterator uses this to advance without mutating the caller's
// query.
func (q *ListQuery) withCursor(cursor string) *ListQuery {
	clone := ListQuery{StartingAfter: cursor}

	if q != nil {
		clone.Limit = q.Limit
		clone.limitSet = q.limitSet
		clone.Expand = q.Expand
		clone.Filters = q.Filters
	}

	return &clone
}

// GetQuery holds the query parameters accepted by single-resource reads.
type GetQuery struct {
	// Expand lists related objects to inline in the response.
	Expand []string
}

// Encode renders the query as a raw query string.
func (q *GetQuery) Encode() string {
	if q == nil || len(q.Expand) == 0 {
		return ""
	}

	values := url.Values{}
	for _, field := range q.Expand {
		values.Add("expand", field)
	}

	return values.Encode()
}

// NextCursor extracts the raw starting_after token from this page's next_page
// URL. The token is taken from the raw query string without URL-decoding so
// reserved characters inside server-generated tokens survive the round trip.
// Returns ErrNoMorePages on the final page and ErrMalformedPage when next_page
// is present but unusable.
func (p *Page[T]) NextCursor() (string, error) {
	if p.NextPage == nil {
		return "", ErrNoMorePages
	}

	next, err := url.Parse(*p.NextPage)
	if err != nil {
		return "", fmt.Errorf("%w: unparseable next_page URL %q", ErrMalformedPage, *p.NextPage)
	}

	for _, pair := range strings.Split(next.RawQuery, "&") {
		cursor, found := strings.CutPrefix(pair, "starting_after=")
		if found && cursor != "" {
			return cursor, nil
		}
	}

	return "", fmt.Errorf("%w: next_page URL %q carries no starting_after token", ErrMalformedPage, *p.NextPage)
}
