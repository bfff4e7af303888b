package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_UnmarshalNaiveServerTimestamps(t *testing.T) {
	payload := `{
		"id": "7f1d",
		"user_id": "u1",
		"title": "Shopping",
		"content": "milk",
		"created_at": "2024-03-05T09:15:00.123456",
		"updated_at": "2024-03-06T18:30:00"
	}`

	var n Note
	require.NoError(t, json.Unmarshal([]byte(payload), &n))

	assert.Equal(t, "7f1d", n.ID)
	assert.Equal(t, time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC), n.UpdatedAt.Time)
	assert.Equal(t, 123456000, n.CreatedAt.Nanosecond())
}

func TestTimestamp_UnmarshalRFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-06T18:30:00+02:00"`), &ts))
	assert.Equal(t, time.Date(2024, 3, 6, 16, 30, 0, 0, time.UTC), ts.UTC())
}

func TestTimestamp_UnmarshalEmptyAndNull(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.True(t, ts.IsZero(), raw)
	}
}

func TestTimestamp_UnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestAppBuildInfo_FallsBackToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "")
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.2.0")

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
