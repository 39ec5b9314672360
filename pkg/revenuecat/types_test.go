package revenuecat_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	original := revenuecat.TimestampOf(time.Date(2024, 3, 15, 12, 30, 45, 123_000_000, time.UTC))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, "1710505845123", string(data))

	var decoded revenuecat.Timestamp

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(original.Time))
}

func TestTimestampUnmarshal(t *testing.T) {
	t.Parallel()

	var ts revenuecat.Timestamp

	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, ts.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"2024-03-15"`), &ts))

	require.NoError(t, json.Unmarshal([]byte("0"), &ts))
	assert.Equal(t, int64(0), ts.UnixMilli())
}

func TestTimestampUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var project revenuecat.Project

	err := json.Unmarshal([]byte(`{"object":"project","id":"proj_1","created_at":"x"}`), &project)
	require.Error(t, err)
	require.ErrorIs(t, err, revenuecat.ErrInvalidTimestamp)

	// Error must render through fmt without panicking and name the bad value.
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, fmt.Sprintf("%v", err), "milliseconds")
}

func TestTimestampInsideResource(t *testing.T) {
	t.Parallel()

	body := []byte(`{"object":"project","id":"proj_1","name":"Demo","created_at":1658399423658}`)

	var project revenuecat.Project

	require.NoError(t, json.Unmarshal(body, &project))
	assert.Equal(t, "proj_1", project.ID)
	assert.Equal(t, int64(1658399423658), project.CreatedAt.UnixMilli())
}

func TestPageHasMore(t *testing.T) {
	t.Parallel()

	next := "/v2/projects/p/customers?starting_after=c"

	assert.True(t, (&revenuecat.Page[string]{NextPage: &next}).HasMore())
	assert.False(t, (&revenuecat.Page[string]{}).HasMore())
	// An empty items slice says nothing about termination.
	assert.True(t, (&revenuecat.Page[string]{Items: []string{}, NextPage: &next}).HasMore())
}
