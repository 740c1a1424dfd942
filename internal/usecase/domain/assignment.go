// Package domain contains application Usecases orchestrating domain logic by assignment.
package domain

import (
	"context"
	"fmt"
	"strings"

	"resource-manager/internal/entities"
	"resource-manager/internal/metrics"
	"resource-manager/internal/utilization"
)

func validateAssignment(a entities.Assignment) error {
	switch {
	case a.Engineer.ID == "" || a.Project.ID == "":
		return fmt.Errorf("%w: engineer_id and project_id are required", entities.ErrInvalidArgument)
	case strings.TrimSpace(a.Role) == "":
		return fmt.Errorf("%w: role is required", entities.ErrInvalidArgument)
	case a.AllocationPercentage < 1 || a.AllocationPercentage > 100:
		return fmt.Errorf("%w: allocation_percentage must be between 1 and 100", entities.ErrInvalidArgument)
	case a.StartDate.IsZero() || a.EndDate.IsZero():
		return fmt.Errorf("%w: start_date and end_date are required", entities.ErrInvalidArgument)
	case !a.StartDate.Before(a.EndDate):
		return fmt.Errorf("%w: end_date must be after start_date", entities.ErrInvalidArgument)
	}
	return nil
}

// CreateAssignment assigns an engineer to a project if the allocation ceiling allows it.
// The ceiling is checked by the store under the engineer's lock.
func (u *Usecase) CreateAssignment(ctx context.Context, a entities.Assignment) (*entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateAssignment(a); err != nil {
		return nil, err
	}

	eng, err := u.repo.GetEngineer(ctx, a.Engineer.ID)
	if err != nil {
		return nil, err
	}
	prj, err := u.repo.GetProject(ctx, a.Project.ID)
	if err != nil {
		return nil, err
	}
	a.Engineer, a.Project = *eng, *prj

	if a.ID == "" {
		a.ID = u.newID()
	}
	res, err := u.repo.CreateAssignment(ctx, a, func(locked entities.Engineer, snapshot []entities.Assignment) error {
		return u.gate(locked, a.AllocationPercentage, snapshot, "")
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("assignment create", "assignment_id", res.ID, "engineer_id", eng.ID, "project_id", prj.ID)
	return res, nil
}

// Assignment returns assignment by id.
func (u *Usecase) Assignment(ctx context.Context, id string) (*entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: assignment_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetAssignment(ctx, id)
}

// Assignments lists assignments matching filter.
func (u *Usecase) Assignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListAssignments(ctx, filter)
}

// UpdateAssignment edits an assignment. The edited assignment does not count
// against itself when the allocation ceiling is checked.
func (u *Usecase) UpdateAssignment(ctx context.Context, id string, patch entities.AssignmentPatch) (*entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: assignment_id is required", entities.ErrInvalidArgument)
	}
	current, err := u.repo.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if patch.ProjectID != nil && *patch.ProjectID != current.Project.ID {
		prj, err := u.repo.GetProject(ctx, *patch.ProjectID)
		if err != nil {
			return nil, err
		}
		next.Project = *prj
	}
	if patch.AllocationPercentage != nil {
		next.AllocationPercentage = *patch.AllocationPercentage
	}
	if patch.StartDate != nil {
		next.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		next.EndDate = *patch.EndDate
	}
	if patch.Role != nil {
		next.Role = *patch.Role
	}
	if err := validateAssignment(next); err != nil {
		return nil, err
	}

	res, err := u.repo.UpdateAssignment(ctx, next, func(locked entities.Engineer, snapshot []entities.Assignment) error {
		return u.gate(locked, next.AllocationPercentage, snapshot, id)
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("assignment update", "assignment_id", id)
	return res, nil
}

// DeleteAssignment removes an assignment.
func (u *Usecase) DeleteAssignment(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: assignment_id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteAssignment(ctx, id); err != nil {
		return err
	}
	u.log.Infow("assignment delete", "assignment_id", id)
	return nil
}

// CheckCapacity runs the allocation gate without writing anything.
func (u *Usecase) CheckCapacity(ctx context.Context, engineerID string, proposed int, excludeID string) (entities.CapacityCheck, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if engineerID == "" {
		return entities.CapacityCheck{}, fmt.Errorf("%w: engineer_id is required", entities.ErrInvalidArgument)
	}
	if proposed < 0 {
		return entities.CapacityCheck{}, fmt.Errorf("%w: proposed allocation must not be negative", entities.ErrInvalidArgument)
	}
	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{EngineerID: engineerID})
	if err != nil {
		return entities.CapacityCheck{}, err
	}
	return entities.CapacityCheck{
		EngineerID:        engineerID,
		Proposed:          proposed,
		CurrentAllocation: utilization.Allocated(engineerID, snapshot, excludeID),
		Ceiling:           utilization.AllocationCeiling,
		Allowed:           utilization.ValidateCapacity(engineerID, proposed, snapshot, excludeID),
	}, nil
}

// gate applies the fixed allocation ceiling. A write that passes it but still
// exceeds the engineer's configured capacity is accepted and reported.
func (u *Usecase) gate(eng entities.Engineer, proposed int, snapshot []entities.Assignment, excludeID string) error {
	current := utilization.Allocated(eng.ID, snapshot, excludeID)
	if !utilization.ValidateCapacity(eng.ID, proposed, snapshot, excludeID) {
		metrics.CapacityRejected()
		u.log.Infow("assignment rejected by allocation ceiling",
			"engineer_id", eng.ID, "current", current, "proposed", proposed, "ceiling", utilization.AllocationCeiling)
		return fmt.Errorf("%w: engineer %s has %d%% allocated, %d%% more exceeds %d%%",
			entities.ErrCapacityExceeded, eng.ID, current, proposed, utilization.AllocationCeiling)
	}

	if total := current + proposed; total > eng.Capacity() {
		metrics.CapacityDiverged()
		u.log.Warnw("capacity gate diverges from engineer capacity",
			"engineer_id", eng.ID, "allocation", total, "max_capacity", eng.Capacity(), "ceiling", utilization.AllocationCeiling)
	}
	return nil
}
