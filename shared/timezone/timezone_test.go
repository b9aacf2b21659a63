package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "empty falls back to utc", zone: "", want: "UTC"},
		{name: "unknown zone falls back to utc", zone: "Mars/Olympus_Mons", want: "UTC"},
		{name: "iana zone", zone: "Asia/Jakarta", want: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, load(tt.zone).String())
		})
	}
}

func TestNowUsesApplicationLocation(t *testing.T) {
	require.NotNil(t, Location())
	assert.Equal(t, Location(), Now().Location())
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, instant.In(Location()).Format(time.RFC3339), Format(instant, time.RFC3339))
}
