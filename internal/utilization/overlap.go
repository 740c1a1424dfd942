package utilization

import (
	"time"

	"resource-manager/internal/entities"
)

// DetectOverlaps returns every pair of same-engineer assignments whose date
// ranges intersect, boundaries included. Dates compare at day granularity.
// Pairs are emitted in comparison order (i, then j > i) and point into the input.
func DetectOverlaps(assignments []entities.Assignment) []entities.OverlapPair {
	res := make([]entities.OverlapPair, 0)
	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			a, b := &assignments[i], &assignments[j]
			if a.Engineer.ID != b.Engineer.ID {
				continue
			}
			if Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate) {
				res = append(res, entities.OverlapPair{First: a, Second: b})
			}
		}
	}
	return res
}

// Overlaps reports whether [s1, e1] and [s2, e2] share at least one calendar day.
// Like the pairwise check, it only tests whether either start falls in the other range.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return withinDays(s1, s2, e2) || withinDays(s2, s1, e1)
}

func withinDays(t, start, end time.Time) bool {
	d := day(t)
	return !d.Before(day(start)) && !d.After(day(end))
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
