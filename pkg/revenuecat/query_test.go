package revenuecat_test

import (
	"strings"
	"testing"

	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   *revenuecat.ListQuery
		wantErr bool
	}{
		{
			name:  "nil query",
			query: nil,
		},
		{
			name:  "zero value means server default",
			query: revenuecat.NewListQuery(),
		},
		{
			name:  "positive limit",
			query: revenuecat.NewListQuery().WithLimit(50),
		},
		{
			name:    "negative limit",
			query:   revenuecat.NewListQuery().WithLimit(-1),
			wantErr: true,
		},
		{
			name:    "explicit zero limit",
			query:   revenuecat.NewListQuery().WithLimit(0),
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.query.Validate()
			if testCase.wantErr {
				require.ErrorIs(t, err, revenuecat.ErrInvalidLimit)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestListQueryEncode(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		encoded, err := revenuecat.NewListQuery().Encode()
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var query *revenuecat.ListQuery

		encoded, err := query.Encode()
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("limit expand filter", func(t *testing.T) {
		t.Parallel()

		encoded, err := revenuecat.NewListQuery().
			WithLimit(25).
			WithExpand("items.product").
			WithFilter("environment", "production").
			Encode()
		require.NoError(t, err)
		assert.Equal(t, "environment=production&expand=items.product&limit=25", encoded)
	})

	t.Run("first page omits starting_after entirely", func(t *testing.T) {
		t.Parallel()

		encoded, err := revenuecat.NewListQuery().WithLimit(10).Encode()
		require.NoError(t, err)
		assert.NotContains(t, encoded, "starting_after",
			"an empty cursor must be omitted, not sent as starting_after=")
	})

	t.Run("cursor forwarded verbatim", func(t *testing.T) {
		t.Parallel()

		// Server-issued tokens are opaque and may contain characters that
		// url.Values.Encode would rewrite. The token must survive untouched.
		cursor := "ab%2Fcd+ef=="

		encoded, err := revenuecat.NewListQuery().WithStartingAfter(cursor).Encode()
		require.NoError(t, err)
		assert.Equal(t, "starting_after="+cursor, encoded)
	})

	t.Run("cursor appended after encoded parameters", func(t *testing.T) {
		t.Parallel()

		encoded, err := revenuecat.NewListQuery().
			WithLimit(10).
			WithStartingAfter("tok+1").
			Encode()
		require.NoError(t, err)
		assert.Equal(t, "limit=10&starting_after=tok+1", encoded)
	})

	t.Run("invalid limit fails before encoding", func(t *testing.T) {
		t.Parallel()

		_, err := revenuecat.NewListQuery().WithLimit(-5).Encode()
		require.ErrorIs(t, err, revenuecat.ErrInvalidLimit)
	})
}

func TestGetQueryEncode(t *testing.T) {
	t.Parallel()

	var nilQuery *revenuecat.GetQuery

	assert.Empty(t, nilQuery.Encode())
	assert.Empty(t, (&revenuecat.GetQuery{}).Encode())
	assert.Equal(t, "expand=attributes&expand=active_entitlements",
		(&revenuecat.GetQuery{Expand: []string{"attributes", "active_entitlements"}}).Encode())
}

func TestPageNextCursor(t *testing.T) {
	t.Parallel()

	t.Run("extracts raw token", func(t *testing.T) {
		t.Parallel()

		// The token below would decode to "ab/cd ef==": extraction must not
		// URL-decode it.
		next := "https://api.revenuecat.com/v2/projects/p/customers?limit=10&starting_after=ab%2Fcd+ef%3D%3D"
		page := revenuecat.Page[string]{NextPage: &next}

		cursor, err := page.NextCursor()
		require.NoError(t, err)
		assert.Equal(t, "ab%2Fcd+ef%3D%3D", cursor)
	})

	t.Run("relative next_page URL", func(t *testing.T) {
		t.Parallel()

		next := "/v2/projects/p/customers?starting_after=cust_42"
		page := revenuecat.Page[string]{NextPage: &next}

		cursor, err := page.NextCursor()
		require.NoError(t, err)
		assert.Equal(t, "cust_42", cursor)
	})

	t.Run("final page", func(t *testing.T) {
		t.Parallel()

		page := revenuecat.Page[string]{}

		_, err := page.NextCursor()
		require.ErrorIs(t, err, revenuecat.ErrNoMorePages)
	})

	t.Run("unparseable URL", func(t *testing.T) {
		t.Parallel()

		next := "http://bad url\x7f"
		page := revenuecat.Page[string]{NextPage: &next}

		_, err := page.NextCursor()
		require.ErrorIs(t, err, revenuecat.ErrMalformedPage)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		next := "https://api.revenuecat.com/v2/projects/p/customers?limit=10"
		page := revenuecat.Page[string]{NextPage: &next}

		_, err := page.NextCursor()
		require.ErrorIs(t, err, revenuecat.ErrMalformedPage)
		assert.True(t, strings.Contains(err.Error(), "starting_after"))
	})
}
