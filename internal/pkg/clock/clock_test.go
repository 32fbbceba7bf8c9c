package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkDate_SameLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	morning := time.Date(2026, 3, 10, 0, 0, 1, 0, loc)
	night := time.Date(2026, 3, 10, 23, 59, 59, 0, loc)

	assert.Equal(t, "2026-03-10", WorkDate(morning, loc))
	assert.Equal(t, WorkDate(morning, loc), WorkDate(night, loc))
}

func TestWorkDate_MidnightBoundary(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	beforeMidnight := time.Date(2026, 3, 10, 23, 59, 59, 999999999, loc)
	afterMidnight := time.Date(2026, 3, 11, 0, 0, 0, 0, loc)

	assert.Equal(t, "2026-03-10", WorkDate(beforeMidnight, loc))
	assert.Equal(t, "2026-03-11", WorkDate(afterMidnight, loc))
}

func TestWorkDate_ConvertsToLocalZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta") // UTC+7
	require.NoError(t, err)

	// 20:00 UTC is already the next day in Jakarta.
	utcEvening := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-11", WorkDate(utcEvening, loc))
}

func TestStartAndEndOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	at := time.Date(2026, 3, 10, 14, 30, 12, 0, loc)

	start := StartOfDay(at, loc)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)

	end := EndOfDay(at, loc)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(at))
	assert.Equal(t, "2026-03-10", WorkDate(end, loc))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := Fixed{T: at}

	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.UTC, c.Location())
}
