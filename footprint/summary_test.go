package footprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/verdantlog/models"
)

func entryOn(d time.Time, home, transport, food float64) models.ActivityEntry {
	return models.ActivityEntry{
		Date: d,
		EmissionBreakdown: models.EmissionBreakdown{
			HomeEnergyKg:     home,
			TransportationKg: transport,
			FoodKg:           food,
			TotalKg:          home + transport + food,
		},
	}
}

func TestSummarizeEmptyRange(t *testing.T) {
	s := Summarize(nil, day(0), day(30), 0)
	assert.Zero(t, s.EntryCount)
	assert.Zero(t, s.TotalKg)
	assert.Empty(t, s.Series)
	assert.Nil(t, s.Baseline)
	assert.Equal(t, TrendStable, s.Trend)
}

func TestSummarizeFractionsSumToOne(t *testing.T) {
	entries := []models.ActivityEntry{
		entryOn(day(0), 12.5, 30.0, 7.3),
		entryOn(day(1), 8.0, 0, 2.1),
		entryOn(day(2), 0, 44.4, 0),
	}
	s := Summarize(entries, day(0), day(2), 0)

	require.Positive(t, s.TotalKg)
	sum := s.Breakdown.HomeEnergyShare + s.Breakdown.TransportationShare + s.Breakdown.FoodShare
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSummarizeAllZeroEntriesHaveZeroShares(t *testing.T) {
	entries := []models.ActivityEntry{entryOn(day(0), 0, 0, 0)}
	s := Summarize(entries, day(0), day(0), 0)
	assert.Equal(t, 1, s.EntryCount)
	assert.Zero(t, s.Breakdown.HomeEnergyShare)
	assert.Zero(t, s.Breakdown.TransportationShare)
	assert.Zero(t, s.Breakdown.FoodShare)
}

func TestSummarizeSeriesChronologicalAndBounded(t *testing.T) {
	entries := []models.ActivityEntry{
		entryOn(day(-1), 1, 0, 0), // before range
		entryOn(day(0), 2, 0, 0),
		entryOn(day(1), 3, 0, 0),
		entryOn(day(2), 4, 0, 0),
		entryOn(day(3), 5, 0, 0), // after range
	}
	s := Summarize(entries, day(0), day(2), 0)

	require.Len(t, s.Series, 3)
	assert.True(t, s.Series[0].Date.Equal(day(0)), "range start is inclusive")
	assert.True(t, s.Series[2].Date.Equal(day(2)), "range end is inclusive")
	for i := 1; i < len(s.Series); i++ {
		assert.True(t, s.Series[i].Date.After(s.Series[i-1].Date))
	}
	assert.InDelta(t, 9.0, s.TotalKg, 1e-9)
	assert.InDelta(t, 2.0, s.MinKg, 1e-9)
	assert.InDelta(t, 4.0, s.MaxKg, 1e-9)
}

func TestSummarizeBaselineComparison(t *testing.T) {
	entries := []models.ActivityEntry{
		entryOn(day(0), 20, 20, 9.3), // 49.3 exactly
	}
	s := Summarize(entries, day(0), day(0), 0)

	require.NotNil(t, s.Baseline)
	assert.InDelta(t, GlobalDailyAverageKg, s.Baseline.BaselineKg, 1e-9)
	assert.InDelta(t, 0, s.Baseline.DeltaPercent, 1e-9)

	s = Summarize([]models.ActivityEntry{entryOn(day(0), 0, 0, 98.6)}, day(0), day(0), 0)
	require.NotNil(t, s.Baseline)
	assert.InDelta(t, 100.0, s.Baseline.DeltaPercent, 1e-9)
}

func TestSummarizeCustomBaseline(t *testing.T) {
	entries := []models.ActivityEntry{entryOn(day(0), 0, 0, 10)}
	s := Summarize(entries, day(0), day(0), 20)
	require.NotNil(t, s.Baseline)
	assert.InDelta(t, 20.0, s.Baseline.BaselineKg, 1e-9)
	assert.InDelta(t, -50.0, s.Baseline.DeltaPercent, 1e-9)
}

func TestSummarizeTrendWindows(t *testing.T) {
	// 60-day range ending at day(59): the last 30 days average lower than
	// the 30 days before them.
	var entries []models.ActivityEntry
	for i := 0; i < 60; i++ {
		total := 50.0
		if i >= 30 {
			total = 20.0
		}
		entries = append(entries, entryOn(day(i), total, 0, 0))
	}
	s := Summarize(entries, day(0), day(59), 0)
	assert.Equal(t, TrendImproving, s.Trend)
	assert.InDelta(t, 20.0, s.RecentAvgKg, 1e-9)
	assert.InDelta(t, 50.0, s.PreviousAvgKg, 1e-9)

	// Reverse the shape: recent window worse than the previous one.
	for i := range entries {
		if i >= 30 {
			entries[i].TotalKg = 80.0
			entries[i].HomeEnergyKg = 80.0
		}
	}
	s = Summarize(entries, day(0), day(59), 0)
	assert.Equal(t, TrendWorsening, s.Trend)
}

func TestSummarizeTreesToOffset(t *testing.T) {
	entries := []models.ActivityEntry{entryOn(day(0), 0, 0, TreeKgPerYear*3)}
	s := Summarize(entries, day(0), day(0), 0)
	assert.InDelta(t, 3.0, s.TreesToOffset, 1e-9)
}
