package timezone_test

import (
	"barber/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.Equal(t, timezone.DefaultName, timezone.GetLocation().String())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2025, 7, 14, 20, 0, 0, 0, time.UTC)

	got := timezone.ToAppTime(utc)

	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 3, got.Hour())
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := timezone.ParseDate("2025-07-14")
		require.NoError(t, err)

		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, timezone.GetLocation(), got.Location())
		assert.Equal(t, "2025-07-14", timezone.FormatDate(got))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := timezone.ParseDate("14/07/2025")
		assert.Error(t, err)
	})
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 7, 14, 23, 59, 0, 0, time.UTC)

	got := timezone.StartOfDay(in)

	assert.Equal(t, "2025-07-14", got.Format(timezone.DateLayout))
	assert.Equal(t, 0, got.Hour())
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2025, 7, 14, 3, 0, 0, 0, time.UTC)
	clock := timezone.FixedClock(instant)

	assert.True(t, clock.Now().Equal(instant))
	assert.Equal(t, timezone.GetLocation(), clock.Now().Location())
}
