// Package entities contains core business entities.
package entities

import "time"

// Assignment binds an engineer to a project with a share of their time.
// Engineer and Project are embedded snapshots as loaded from the store.
type Assignment struct {
	ID                   string
	Engineer             Engineer
	Project              Project
	AllocationPercentage int
	StartDate            time.Time
	EndDate              time.Time
	Role                 string
}

// AssignmentFilter narrows assignment listings. Empty fields match everything.
type AssignmentFilter struct {
	EngineerID string
	ProjectID  string
}

// AssignmentPatch carries optional assignment updates.
type AssignmentPatch struct {
	ProjectID            *string
	AllocationPercentage *int
	StartDate            *time.Time
	EndDate              *time.Time
	Role                 *string
}

// AssignmentGate decides whether a write may proceed given the engineer and
// their current assignments. Stores call it while holding the engineer's lock.
type AssignmentGate func(engineer Engineer, snapshot []Assignment) error

// CapacityCheck is the outcome of a dry-run of the allocation gate.
type CapacityCheck struct {
	EngineerID        string `json:"engineer_id"`
	Proposed          int    `json:"proposed"`
	CurrentAllocation int    `json:"current_allocation"`
	Ceiling           int    `json:"ceiling"`
	Allowed           bool   `json:"allowed"`
}
