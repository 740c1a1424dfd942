// Package entities contains core business entities.
package entities

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	// ProjectPlanning marks a project that has not started.
	ProjectPlanning ProjectStatus = "Planning"
	// ProjectActive marks a running project.
	ProjectActive ProjectStatus = "Active"
	// ProjectCompleted marks a finished project.
	ProjectCompleted ProjectStatus = "Completed"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted:
		return true
	}
	return false
}

// Project is a domain model of a staffed project.
type Project struct {
	ID             string
	Name           string
	Description    string
	Status         ProjectStatus
	RequiredSkills []string
	TeamSize       int
	StartDate      time.Time
	EndDate        time.Time
	ManagerID      string
}

// ProjectPatch carries optional project updates.
type ProjectPatch struct {
	Name           *string
	Description    *string
	Status         *ProjectStatus
	RequiredSkills []string
	TeamSize       *int
	StartDate      *time.Time
	EndDate        *time.Time
}

// Apply returns a copy of p with the patch fields set.
func (pp ProjectPatch) Apply(p Project) Project {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.RequiredSkills != nil {
		p.RequiredSkills = append([]string(nil), pp.RequiredSkills...)
	}
	if pp.TeamSize != nil {
		p.TeamSize = *pp.TeamSize
	}
	if pp.StartDate != nil {
		p.StartDate = *pp.StartDate
	}
	if pp.EndDate != nil {
		p.EndDate = *pp.EndDate
	}
	return p
}
