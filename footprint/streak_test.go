package footprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestAdvanceStreakFirstEntry(t *testing.T) {
	s := AdvanceStreak(StreakCounters{}, day(0))
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 1, s.Best)
	assert.Equal(t, 1, s.TotalEntries)
	require.NotNil(t, s.LastLogged)
	assert.True(t, s.LastLogged.Equal(day(0)))
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	var s StreakCounters
	const n = 7
	for i := 0; i < n; i++ {
		s = AdvanceStreak(s, day(i))
	}
	assert.Equal(t, n, s.Current)
	assert.Equal(t, n, s.Best)
	assert.Equal(t, n, s.TotalEntries)
}

func TestAdvanceStreakGapResetsToOne(t *testing.T) {
	var s StreakCounters
	s = AdvanceStreak(s, day(0))
	s = AdvanceStreak(s, day(1))
	s = AdvanceStreak(s, day(3)) // day 2 missed

	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 2, s.Best, "best retains the earlier run")
	assert.Equal(t, 3, s.TotalEntries)
}

func TestAdvanceStreakSameDayResubmission(t *testing.T) {
	var s StreakCounters
	s = AdvanceStreak(s, day(0))
	s = AdvanceStreak(s, day(1))
	s = AdvanceStreak(s, day(1))

	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 2, s.Best)
	assert.Equal(t, 2, s.TotalEntries, "resubmission does not count as a new entry")
}

func TestAdvanceStreakBackdatedEntryResets(t *testing.T) {
	var s StreakCounters
	s = AdvanceStreak(s, day(0))
	s = AdvanceStreak(s, day(1))
	s = AdvanceStreak(s, day(2))
	prevLast := *s.LastLogged

	// Backfilling a missed date from last week.
	s = AdvanceStreak(s, day(-5))

	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 3, s.Best)
	assert.True(t, s.LastLogged.Equal(prevLast), "last logged date never moves backwards")
}

func TestAdvanceStreakBestNeverBelowCurrent(t *testing.T) {
	var s StreakCounters
	for _, off := range []int{0, 1, 2, 5, 6, 7, 8, 20} {
		s = AdvanceStreak(s, day(off))
		assert.GreaterOrEqual(t, s.Best, s.Current)
	}
	assert.Equal(t, 4, s.Best)
}

func TestAdvanceStreakIgnoresTimeOfDay(t *testing.T) {
	var s StreakCounters
	s = AdvanceStreak(s, day(0).Add(23*time.Hour))
	s = AdvanceStreak(s, day(1).Add(5*time.Minute))
	assert.Equal(t, 2, s.Current)
}

func TestRebuildStreak(t *testing.T) {
	dates := []time.Time{day(0), day(1), day(2), day(4), day(5)}
	s := RebuildStreak(dates)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 3, s.Best)
	assert.Equal(t, 5, s.TotalEntries)
	require.NotNil(t, s.LastLogged)
	assert.True(t, s.LastLogged.Equal(day(5)))
}

func TestRebuildStreakEmpty(t *testing.T) {
	s := RebuildStreak(nil)
	assert.Zero(t, s.Current)
	assert.Zero(t, s.Best)
	assert.Nil(t, s.LastLogged)
}
