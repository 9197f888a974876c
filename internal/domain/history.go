package domain

import (
	"sort"
	"strconv"
)

// SortedByDate returns a copy of rows ordered by ascending date.
func SortedByDate(rows []DailyScore) []DailyScore {
	out := append([]DailyScore(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PreviousScore returns the latest score recorded strictly before day.
func PreviousScore(rows []DailyScore, day string) (int, bool) {
	sorted := SortedByDate(rows)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Date < day {
			return sorted[i].Score, true
		}
	}
	return 0, false
}

// RecentDays returns the last n records by date; n <= 0 returns all of them.
func RecentDays(rows []DailyScore, n int) []DailyScore {
	sorted := SortedByDate(rows)
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// DeltaFor compares score with the latest earlier day.
func DeltaFor(rows []DailyScore, day string, score int) Delta {
	prev, ok := PreviousScore(rows, day)
	if !ok {
		return Delta{}
	}
	return Delta{Value: score - prev, Known: true}
}

// String renders the delta as "+2", "0", "-1" or "—" when unknown.
func (d Delta) String() string {
	switch {
	case !d.Known:
		return "—"
	case d.Value > 0:
		return "+" + strconv.Itoa(d.Value)
	default:
		return strconv.Itoa(d.Value)
	}
}
