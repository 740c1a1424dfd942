// Package utilization computes engineer capacity utilization from assignment snapshots.
//
// Every function here is a pure transform over the slice it receives: nothing is
// cached, mutated or fetched. Callers reload the snapshot after writes.
package utilization

import "resource-manager/internal/entities"

// Aggregate groups assignments by engineer and sums their allocations.
// Engineers appear in the order they are first seen in the input. Summaries
// reference the input elements, so the input slice must outlive the result.
func Aggregate(assignments []entities.Assignment) []entities.UtilizationSummary {
	res := make([]entities.UtilizationSummary, 0)
	index := make(map[string]int)

	for i := range assignments {
		a := &assignments[i]
		pos, ok := index[a.Engineer.ID]
		if !ok {
			pos = len(res)
			index[a.Engineer.ID] = pos
			res = append(res, entities.UtilizationSummary{
				EngineerID:   a.Engineer.ID,
				EngineerName: a.Engineer.Name,
				MaxCapacity:  a.Engineer.Capacity(),
				Assignments:  make([]*entities.Assignment, 0, 1),
			})
		}
		s := &res[pos]
		s.CurrentAllocation += a.AllocationPercentage
		s.Assignments = append(s.Assignments, a)
	}

	for i := range res {
		s := &res[i]
		s.UtilizationPercentage = Percentage(s.CurrentAllocation, s.MaxCapacity)
		s.Overallocated = s.CurrentAllocation > s.MaxCapacity
	}

	return res
}

// Percentage returns allocation as a percentage of capacity.
// A non-positive capacity is treated as entities.DefaultMaxCapacity.
func Percentage(allocation, capacity int) float64 {
	if capacity <= 0 {
		capacity = entities.DefaultMaxCapacity
	}
	return float64(allocation) / float64(capacity) * 100
}

// Level buckets a utilization percentage.
func Level(utilization float64) entities.CapacityLevel {
	switch {
	case utilization > 100:
		return entities.CapacityOver
	case utilization >= 80:
		return entities.CapacityHigh
	case utilization >= 50:
		return entities.CapacityMedium
	default:
		return entities.CapacityLow
	}
}
