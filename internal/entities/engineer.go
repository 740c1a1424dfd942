// Package entities contains core business entities.
package entities

// DefaultMaxCapacity is the capacity assumed for engineers without a configured value.
const DefaultMaxCapacity = 100

// Seniority enumerates engineer seniority tiers.
type Seniority string

const (
	// SeniorityJunior marks a junior engineer.
	SeniorityJunior Seniority = "junior"
	// SeniorityMid marks a mid-level engineer.
	SeniorityMid Seniority = "mid"
	// SenioritySenior marks a senior engineer.
	SenioritySenior Seniority = "senior"
)

// Valid reports whether s is a known tier. Empty is accepted as "unspecified".
func (s Seniority) Valid() bool {
	switch s {
	case "", SeniorityJunior, SeniorityMid, SenioritySenior:
		return true
	}
	return false
}

// Engineer is a domain model of an assignable engineer.
type Engineer struct {
	ID          string
	Email       string
	Name        string
	Skills      []string
	Seniority   Seniority
	MaxCapacity int
	Department  string
}

// Capacity returns the configured max capacity, or DefaultMaxCapacity when unset or non-positive.
func (e Engineer) Capacity() int {
	if e.MaxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return e.MaxCapacity
}

// EngineerPatch carries optional engineer profile updates.
type EngineerPatch struct {
	Name        *string
	Skills      []string
	Seniority   *Seniority
	MaxCapacity *int
	Department  *string
}

// Apply returns a copy of e with the patch fields set.
func (p EngineerPatch) Apply(e Engineer) Engineer {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Skills != nil {
		e.Skills = append([]string(nil), p.Skills...)
	}
	if p.Seniority != nil {
		e.Seniority = *p.Seniority
	}
	if p.MaxCapacity != nil {
		e.MaxCapacity = *p.MaxCapacity
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	return e
}

// EngineerCapacity is a capacity snapshot of a single engineer.
type EngineerCapacity struct {
	EngineerID        string `json:"engineer_id"`
	MaxCapacity       int    `json:"max_capacity"`
	CurrentAllocation int    `json:"current_allocation"`
	Available         int    `json:"available"`
}
