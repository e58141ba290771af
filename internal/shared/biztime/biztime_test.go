package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_NormalizesToMidnightUTC(t *testing.T) {
	d := DateOf(time.Date(2024, time.June, 10, 15, 42, 11, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestDateOf_SameBusinessDayCollapses(t *testing.T) {
	morning := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.June, 10, 20, 0, 0, 0, time.UTC)

	assert.True(t, DateOf(morning).Equal(DateOf(evening)))
	assert.True(t, SameDay(morning, evening))
}

func TestDayBoundaries(t *testing.T) {
	instant := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	start := StartOfDayUTC(instant)
	end := EndOfDayUTC(instant)

	require.True(t, start.Before(end))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.False(t, instant.Before(start))
	assert.True(t, instant.Before(end))
}

func TestDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), Date(2024, time.March, 31))
}

func TestLocation_AutoInitializesDefault(t *testing.T) {
	loc := Location()

	require.NotNil(t, loc)
}
