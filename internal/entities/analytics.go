// Package entities contains core business entities.
package entities

import "time"

// CapacityLevel buckets a utilization percentage for display.
type CapacityLevel string

const (
	// CapacityLow is below 50%.
	CapacityLow CapacityLevel = "low"
	// CapacityMedium is 50% up to 80%.
	CapacityMedium CapacityLevel = "medium"
	// CapacityHigh is 80% up to 100%.
	CapacityHigh CapacityLevel = "high"
	// CapacityOver is above 100%.
	CapacityOver CapacityLevel = "over"
)

// UtilizationSummary is the derived allocation state of one engineer.
type UtilizationSummary struct {
	EngineerID            string
	EngineerName          string
	CurrentAllocation     int
	MaxCapacity           int
	UtilizationPercentage float64
	Overallocated         bool
	Assignments           []*Assignment
}

// OverlapPair holds two assignments of the same engineer with intersecting dates.
type OverlapPair struct {
	First  *Assignment
	Second *Assignment
}

// ProjectAnalytics describes staffing progress of a project.
type ProjectAnalytics struct {
	ProjectID         string  `json:"project_id"`
	ProjectName       string  `json:"project_name"`
	Status            string  `json:"status"`
	TeamSize          int     `json:"team_size"`
	AssignedEngineers int     `json:"assigned_engineers"`
	StaffingProgress  float64 `json:"staffing_progress"`
	SkillCoverage     float64 `json:"skill_coverage"`
	TimelineProgress  float64 `json:"timeline_progress"`
}

// TimelineEvent is one assignment laid out on a calendar.
type TimelineEvent struct {
	ID                   string
	Title                string
	Start                time.Time
	End                  time.Time
	EngineerName         string
	ProjectName          string
	AllocationPercentage int
	Level                CapacityLevel
}

// TeamSummary aggregates utilization over a set of engineers.
type TeamSummary struct {
	Engineers          int `json:"engineers"`
	Overallocated      int `json:"overallocated"`
	AverageUtilization int `json:"average_utilization"`
}

// StatusStat describes project counts grouped by status.
type StatusStat struct {
	Status   ProjectStatus `json:"status"`
	Projects int           `json:"projects"`
}

// AnalyticsSummary is the dashboard overview.
type AnalyticsSummary struct {
	Team          TeamSummary  `json:"team"`
	Projects      int          `json:"projects"`
	ProjectStatus []StatusStat `json:"project_status"`
	Assignments   int          `json:"assignments"`
	Overlaps      int          `json:"overlaps"`
}
