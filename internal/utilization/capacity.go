package utilization

import "resource-manager/internal/entities"

// AllocationCeiling is the fixed gate applied by ValidateCapacity.
//
// It does not follow Engineer.MaxCapacity, unlike Aggregate's overallocation flag.
// Both rules are kept as they are; the assignment usecase logs when they disagree.
const AllocationCeiling = 100

// ValidateCapacity reports whether adding proposed percent to engineerID keeps the
// engineer at or under AllocationCeiling. The assignment with excludeID is left out
// of the sum so that an edit does not count against itself; an empty excludeID
// excludes nothing.
func ValidateCapacity(engineerID string, proposed int, assignments []entities.Assignment, excludeID string) bool {
	return Allocated(engineerID, assignments, excludeID)+proposed <= AllocationCeiling
}

// Allocated sums allocation of engineerID's assignments, skipping excludeID.
func Allocated(engineerID string, assignments []entities.Assignment, excludeID string) int {
	sum := 0
	for i := range assignments {
		a := &assignments[i]
		if a.Engineer.ID != engineerID {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		sum += a.AllocationPercentage
	}
	return sum
}

// Capacity returns the capacity snapshot of engineer against the given assignments.
func Capacity(engineer entities.Engineer, assignments []entities.Assignment) entities.EngineerCapacity {
	current := Allocated(engineer.ID, assignments, "")
	available := engineer.Capacity() - current
	if available < 0 {
		available = 0
	}
	return entities.EngineerCapacity{
		EngineerID:        engineer.ID,
		MaxCapacity:       engineer.Capacity(),
		CurrentAllocation: current,
		Available:         available,
	}
}
