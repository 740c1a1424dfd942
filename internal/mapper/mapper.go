// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"time"

	"resource-manager/internal/entities"
	oapi "resource-manager/internal/oapi"
	"resource-manager/internal/utilization"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// ParseDate parses a wire date. Malformed input is an invalid argument.
func ParseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", entities.ErrInvalidArgument, field)
	}
	return d, nil
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func skills(src []string) []string {
	if src == nil {
		return []string{}
	}
	return src
}

// FromOAPIEngineerCreate builds an entities.Engineer from transport DTO.
func FromOAPIEngineerCreate(src oapi.EngineerCreate) entities.Engineer {
	return entities.Engineer{
		ID:          src.Id,
		Email:       src.Email,
		Name:        src.Name,
		Skills:      src.Skills,
		Seniority:   entities.Seniority(src.Seniority),
		MaxCapacity: src.MaxCapacity,
		Department:  src.Department,
	}
}

// FromOAPIEngineerUpdate builds an engineer patch.
func FromOAPIEngineerUpdate(src oapi.EngineerUpdate) entities.EngineerPatch {
	patch := entities.EngineerPatch{
		Name:        src.Name,
		Skills:      src.Skills,
		MaxCapacity: src.MaxCapacity,
		Department:  src.Department,
	}
	if src.Seniority != nil {
		s := entities.Seniority(*src.Seniority)
		patch.Seniority = &s
	}
	return patch
}

// ToOAPIEngineer maps entities.Engineer to transport model.
func ToOAPIEngineer(e entities.Engineer) oapi.Engineer {
	return oapi.Engineer{
		Id:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Skills:      skills(e.Skills),
		Seniority:   string(e.Seniority),
		MaxCapacity: e.Capacity(),
		Department:  e.Department,
	}
}

// ToOAPIEngineers maps a slice of engineers.
func ToOAPIEngineers(list []entities.Engineer) []oapi.Engineer {
	res := make([]oapi.Engineer, 0, len(list))
	for _, e := range list {
		res = append(res, ToOAPIEngineer(e))
	}
	return res
}

// FromOAPIProjectCreate builds an entities.Project from transport DTO.
func FromOAPIProjectCreate(src oapi.ProjectCreate) (entities.Project, error) {
	start, err := ParseDate("start_date", src.StartDate)
	if err != nil {
		return entities.Project{}, err
	}
	end, err := ParseDate("end_date", src.EndDate)
	if err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:             src.Id,
		Name:           src.Name,
		Description:    src.Description,
		Status:         entities.ProjectStatus(src.Status),
		RequiredSkills: src.RequiredSkills,
		TeamSize:       src.TeamSize,
		StartDate:      start,
		EndDate:        end,
		ManagerID:      src.ManagerId,
	}, nil
}

// FromOAPIProjectUpdate builds a project patch.
func FromOAPIProjectUpdate(src oapi.ProjectUpdate) (entities.ProjectPatch, error) {
	start, err := parseOptionalDate("start_date", src.StartDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	end, err := parseOptionalDate("end_date", src.EndDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	patch := entities.ProjectPatch{
		Name:           src.Name,
		Description:    src.Description,
		RequiredSkills: src.RequiredSkills,
		TeamSize:       src.TeamSize,
		StartDate:      start,
		EndDate:        end,
	}
	if src.Status != nil {
		s := entities.ProjectStatus(*src.Status)
		patch.Status = &s
	}
	return patch, nil
}

// ToOAPIProject maps entities.Project to transport model.
func ToOAPIProject(p entities.Project) oapi.Project {
	return oapi.Project{
		Id:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		RequiredSkills: skills(p.RequiredSkills),
		TeamSize:       p.TeamSize,
		StartDate:      formatDate(p.StartDate),
		EndDate:        formatDate(p.EndDate),
		ManagerId:      p.ManagerID,
	}
}

// ToOAPIProjects maps a slice of projects.
func ToOAPIProjects(list []entities.Project) []oapi.Project {
	res := make([]oapi.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToOAPIProject(p))
	}
	return res
}

// FromOAPIAssignmentCreate builds an entities.Assignment carrying only engineer and project ids.
func FromOAPIAssignmentCreate(src oapi.AssignmentCreate) (entities.Assignment, error) {
	start, err := ParseDate("start_date", src.StartDate)
	if err != nil {
		return entities.Assignment{}, err
	}
	end, err := ParseDate("end_date", src.EndDate)
	if err != nil {
		return entities.Assignment{}, err
	}
	return entities.Assignment{
		ID:                   src.Id,
		Engineer:             entities.Engineer{ID: src.EngineerId},
		Project:              entities.Project{ID: src.ProjectId},
		AllocationPercentage: src.AllocationPercentage,
		StartDate:            start,
		EndDate:              end,
		Role:                 src.Role,
	}, nil
}

// FromOAPIAssignmentUpdate builds an assignment patch.
func FromOAPIAssignmentUpdate(src oapi.AssignmentUpdate) (entities.AssignmentPatch, error) {
	start, err := parseOptionalDate("start_date", src.StartDate)
	if err != nil {
		return entities.AssignmentPatch{}, err
	}
	end, err := parseOptionalDate("end_date", src.EndDate)
	if err != nil {
		return entities.AssignmentPatch{}, err
	}
	return entities.AssignmentPatch{
		ProjectID:            src.ProjectId,
		AllocationPercentage: src.AllocationPercentage,
		StartDate:            start,
		EndDate:              end,
		Role:                 src.Role,
	}, nil
}

// ToOAPIAssignment maps entities.Assignment to transport model.
func ToOAPIAssignment(a entities.Assignment) oapi.Assignment {
	return oapi.Assignment{
		Id:                   a.ID,
		EngineerId:           a.Engineer.ID,
		EngineerName:         a.Engineer.Name,
		ProjectId:            a.Project.ID,
		ProjectName:          a.Project.Name,
		AllocationPercentage: a.AllocationPercentage,
		StartDate:            formatDate(a.StartDate),
		EndDate:              formatDate(a.EndDate),
		Role:                 a.Role,
	}
}

// ToOAPIAssignments maps a slice of assignments.
func ToOAPIAssignments(list []entities.Assignment) []oapi.Assignment {
	res := make([]oapi.Assignment, 0, len(list))
	for _, a := range list {
		res = append(res, ToOAPIAssignment(a))
	}
	return res
}

// ToOAPIUtilization maps utilization summaries.
func ToOAPIUtilization(list []entities.UtilizationSummary) []oapi.UtilizationSummary {
	res := make([]oapi.UtilizationSummary, 0, len(list))
	for _, s := range list {
		assignments := make([]oapi.Assignment, 0, len(s.Assignments))
		for _, a := range s.Assignments {
			assignments = append(assignments, ToOAPIAssignment(*a))
		}
		res = append(res, oapi.UtilizationSummary{
			EngineerId:            s.EngineerID,
			EngineerName:          s.EngineerName,
			CurrentAllocation:     s.CurrentAllocation,
			MaxCapacity:           s.MaxCapacity,
			UtilizationPercentage: s.UtilizationPercentage,
			Overallocated:         s.Overallocated,
			Level:                 string(utilization.Level(s.UtilizationPercentage)),
			Assignments:           assignments,
		})
	}
	return res
}

// ToOAPIOverlaps maps overlap pairs.
func ToOAPIOverlaps(list []entities.OverlapPair) []oapi.OverlapPair {
	res := make([]oapi.OverlapPair, 0, len(list))
	for _, p := range list {
		res = append(res, oapi.OverlapPair{
			EngineerId: p.First.Engineer.ID,
			First:      ToOAPIAssignment(*p.First),
			Second:     ToOAPIAssignment(*p.Second),
		})
	}
	return res
}

// ToOAPITimeline maps timeline events.
func ToOAPITimeline(list []entities.TimelineEvent) []oapi.TimelineEvent {
	res := make([]oapi.TimelineEvent, 0, len(list))
	for _, e := range list {
		res = append(res, oapi.TimelineEvent{
			Id:                   e.ID,
			Title:                e.Title,
			Start:                formatDate(e.Start),
			End:                  formatDate(e.End),
			EngineerName:         e.EngineerName,
			ProjectName:          e.ProjectName,
			AllocationPercentage: e.AllocationPercentage,
			Level:                string(e.Level),
		})
	}
	return res
}
