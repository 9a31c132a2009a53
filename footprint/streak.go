package footprint

import "time"

// DateOf truncates a timestamp to its calendar day in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StreakCounters is the plain-value view of a user's streak state that the
// transition rule operates on; the store maps it onto the persisted row.
type StreakCounters struct {
	Current      int
	Best         int
	TotalEntries int
	LastLogged   *time.Time
}

// AdvanceStreak applies one entry date to the prior streak counters:
//   - first-ever entry: current = 1
//   - day after the last logged date: current + 1
//   - same date again (resubmission): unchanged, entry count unchanged
//   - anything else, including backdated dates: reset to 1
//
// Best never decreases and the last logged date never moves backwards.
func AdvanceStreak(prior StreakCounters, newDate time.Time) StreakCounters {
	day := DateOf(newDate)
	next := prior

	switch {
	case prior.LastLogged == nil:
		next.Current = 1
		next.TotalEntries = prior.TotalEntries + 1
	case sameDay(*prior.LastLogged, day):
		// Resubmission replaces the entry but does not advance the streak.
	case sameDay(prior.LastLogged.AddDate(0, 0, 1), day):
		next.Current = prior.Current + 1
		next.TotalEntries = prior.TotalEntries + 1
	default:
		// Gap of one or more missed days, or a backdated date.
		next.Current = 1
		next.TotalEntries = prior.TotalEntries + 1
	}

	if next.Current > next.Best {
		next.Best = next.Current
	}
	if prior.LastLogged == nil || day.After(*prior.LastLogged) {
		next.LastLogged = &day
	}
	return next
}

// RebuildStreak folds AdvanceStreak over a date-ascending log history,
// producing the counters from scratch. Used by the background auditor to
// repair rows that drifted from the entry table.
func RebuildStreak(dates []time.Time) StreakCounters {
	var s StreakCounters
	for _, d := range dates {
		s = AdvanceStreak(s, d)
	}
	return s
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
