// Package domain contains application Usecases orchestrating domain logic by engineer.
package domain

import (
	"context"
	"fmt"
	"strings"

	"resource-manager/internal/entities"
	"resource-manager/internal/utilization"
)

func validateEngineer(e entities.Engineer) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if !e.Seniority.Valid() {
		return fmt.Errorf("%w: unknown seniority %q", entities.ErrInvalidArgument, e.Seniority)
	}
	if e.MaxCapacity < 0 {
		return fmt.Errorf("%w: max_capacity must be positive", entities.ErrInvalidArgument)
	}
	return nil
}

// CreateEngineer registers an engineer profile. Missing capacity defaults to 100.
func (u *Usecase) CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(e.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if err := validateEngineer(e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = u.newID()
	}
	e.MaxCapacity = e.Capacity()

	res, err := u.repo.CreateEngineer(ctx, e)
	if err != nil {
		return nil, err
	}
	u.log.Infow("engineer create", "engineer_id", res.ID)
	return res, nil
}

// Engineer returns engineer by id.
func (u *Usecase) Engineer(ctx context.Context, id string) (*entities.Engineer, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: engineer_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetEngineer(ctx, id)
}

// Engineers lists all engineers.
func (u *Usecase) Engineers(ctx context.Context) ([]entities.Engineer, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListEngineers(ctx)
}

// UpdateEngineer applies a profile patch.
func (u *Usecase) UpdateEngineer(ctx context.Context, id string, patch entities.EngineerPatch) (*entities.Engineer, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: engineer_id is required", entities.ErrInvalidArgument)
	}
	if patch.MaxCapacity != nil && *patch.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetEngineer(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	if err := validateEngineer(next); err != nil {
		return nil, err
	}
	return u.repo.UpdateEngineer(ctx, next)
}

// EngineerCapacity returns max, allocated and available capacity of an engineer.
func (u *Usecase) EngineerCapacity(ctx context.Context, id string) (entities.EngineerCapacity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return entities.EngineerCapacity{}, fmt.Errorf("%w: engineer_id is required", entities.ErrInvalidArgument)
	}
	eng, err := u.repo.GetEngineer(ctx, id)
	if err != nil {
		return entities.EngineerCapacity{}, err
	}
	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{EngineerID: id})
	if err != nil {
		return entities.EngineerCapacity{}, err
	}
	return utilization.Capacity(*eng, snapshot), nil
}

// EngineerAssignments returns the assignments of one engineer.
func (u *Usecase) EngineerAssignments(ctx context.Context, id string) ([]entities.Assignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: engineer_id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetEngineer(ctx, id); err != nil {
		return nil, err
	}
	return u.repo.ListAssignments(ctx, entities.AssignmentFilter{EngineerID: id})
}

// SuitableEngineers returns engineers matching any of the skills, best match first.
func (u *Usecase) SuitableEngineers(ctx context.Context, skills []string) ([]entities.Engineer, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(skills) == 0 {
		return nil, fmt.Errorf("%w: skills are required", entities.ErrInvalidArgument)
	}
	engineers, err := u.repo.ListEngineers(ctx)
	if err != nil {
		return nil, err
	}
	return utilization.Suitable(engineers, skills), nil
}
