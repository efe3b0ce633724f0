package timezone_test

import (
	"testing"
	"time"

	"staysync/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_FallsBackToUTC(t *testing.T) {
	timezone.Init("Not/AZone")

	assert.Equal(t, time.UTC, timezone.GetLocation())
	assert.False(t, timezone.Now().IsZero())
}

func TestInit_LoadsLocation(t *testing.T) {
	timezone.Init("UTC")

	assert.Equal(t, "UTC", timezone.GetLocation().String())
}

func TestDate_DropsClock(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	in := time.Date(2024, 3, 10, 23, 30, 0, 0, jakarta)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), timezone.Date(in))
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), parsed)

	_, err = timezone.ParseDate("31/01/2024")
	assert.Error(t, err)
}
