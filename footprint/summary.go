package footprint

import (
	"time"

	"github.com/cppla/verdantlog/models"
)

// Reference constants for comparative reporting.
const (
	// GlobalDailyAverageKg is the global average daily CO2 footprint per person.
	GlobalDailyAverageKg = 49.3
	// TreeKgPerYear is the CO2 absorbed by one tree per year.
	TreeKgPerYear = 21.77
)

// Trend labels for the recent-versus-previous window comparison.
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
)

// trendWindowDays is the width of each comparison window, anchored at the
// end of the summarized range.
const trendWindowDays = 30

// CategoryBreakdown sums emissions per category across a range. Fractions
// are of the range total and sum to 1 when the total is positive; an
// all-zero range yields all-zero fractions.
type CategoryBreakdown struct {
	HomeEnergyKg        float64 `json:"home_energy_kg"`
	TransportationKg    float64 `json:"transportation_kg"`
	FoodKg              float64 `json:"food_kg"`
	HomeEnergyShare     float64 `json:"home_energy_share"`
	TransportationShare float64 `json:"transportation_share"`
	FoodShare           float64 `json:"food_share"`
}

// TrendPoint is one chronological sample of the stored series.
type TrendPoint struct {
	Date    time.Time `json:"date"`
	TotalKg float64   `json:"total_kg"`
}

// BaselineComparison relates the average daily total to a fixed reference
// footprint as a signed percentage.
type BaselineComparison struct {
	BaselineKg   float64 `json:"baseline_kg"`
	AverageKg    float64 `json:"average_kg"`
	DeltaPercent float64 `json:"delta_percent"`
}

// Summary is the aggregate view of a user's history over a date range.
type Summary struct {
	From          time.Time           `json:"from"`
	To            time.Time           `json:"to"`
	EntryCount    int                 `json:"entry_count"`
	TotalKg       float64             `json:"total_kg"`
	AverageKg     float64             `json:"average_kg"`
	MinKg         float64             `json:"min_kg"`
	MaxKg         float64             `json:"max_kg"`
	Breakdown     CategoryBreakdown   `json:"breakdown"`
	Trend         string              `json:"trend"`
	RecentAvgKg   float64             `json:"recent_avg_kg"`
	PreviousAvgKg float64             `json:"previous_avg_kg"`
	Series        []TrendPoint        `json:"series"`
	Baseline      *BaselineComparison `json:"baseline"`
	TreesToOffset float64             `json:"trees_to_offset"`
}

// Summarize aggregates an ascending slice of entries over [from, to], both
// endpoints inclusive. Entries outside the range are skipped, so callers may
// pass a wider slice than the range. An empty range yields zero totals, an
// empty series, and a nil baseline comparison. baselineKg <= 0 selects
// GlobalDailyAverageKg.
func Summarize(entries []models.ActivityEntry, from, to time.Time, baselineKg float64) Summary {
	if baselineKg <= 0 {
		baselineKg = GlobalDailyAverageKg
	}
	from, to = DateOf(from), DateOf(to)

	s := Summary{
		From:   from,
		To:     to,
		Series: []TrendPoint{},
		Trend:  TrendStable,
	}

	recentStart := to.AddDate(0, 0, -(trendWindowDays - 1))
	previousStart := recentStart.AddDate(0, 0, -trendWindowDays)
	var recentSum, previousSum float64
	var recentN, previousN int

	for _, e := range entries {
		day := DateOf(e.Date)
		if day.Before(from) || day.After(to) {
			continue
		}

		total := e.TotalKg
		if s.EntryCount == 0 || total < s.MinKg {
			s.MinKg = total
		}
		if total > s.MaxKg {
			s.MaxKg = total
		}
		s.EntryCount++
		s.TotalKg += total
		s.Breakdown.HomeEnergyKg += e.HomeEnergyKg
		s.Breakdown.TransportationKg += e.TransportationKg
		s.Breakdown.FoodKg += e.FoodKg
		s.Series = append(s.Series, TrendPoint{Date: day, TotalKg: total})

		if !day.Before(recentStart) {
			recentSum += total
			recentN++
		} else if !day.Before(previousStart) {
			previousSum += total
			previousN++
		}
	}

	if s.EntryCount == 0 {
		return s
	}

	s.AverageKg = s.TotalKg / float64(s.EntryCount)
	s.TreesToOffset = s.TotalKg / TreeKgPerYear

	if s.TotalKg > 0 {
		s.Breakdown.HomeEnergyShare = s.Breakdown.HomeEnergyKg / s.TotalKg
		s.Breakdown.TransportationShare = s.Breakdown.TransportationKg / s.TotalKg
		s.Breakdown.FoodShare = s.Breakdown.FoodKg / s.TotalKg
	}

	if recentN > 0 {
		s.RecentAvgKg = recentSum / float64(recentN)
	}
	if previousN > 0 {
		s.PreviousAvgKg = previousSum / float64(previousN)
	}
	switch {
	case s.RecentAvgKg < s.PreviousAvgKg:
		s.Trend = TrendImproving
	case s.RecentAvgKg > s.PreviousAvgKg:
		s.Trend = TrendWorsening
	}

	s.Baseline = &BaselineComparison{
		BaselineKg:   baselineKg,
		AverageKg:    s.AverageKg,
		DeltaPercent: (s.AverageKg - baselineKg) / baselineKg * 100,
	}
	return s
}
