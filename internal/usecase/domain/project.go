// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"

	"resource-manager/internal/entities"
)

func validateProject(p entities.Project) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, p.Status)
	case p.TeamSize < 0:
		return fmt.Errorf("%w: team_size must not be negative", entities.ErrInvalidArgument)
	case p.StartDate.IsZero() || p.EndDate.IsZero():
		return fmt.Errorf("%w: start_date and end_date are required", entities.ErrInvalidArgument)
	case !p.StartDate.Before(p.EndDate):
		return fmt.Errorf("%w: end_date must be after start_date", entities.ErrInvalidArgument)
	}
	return nil
}

// CreateProject creates a project. Status defaults to Planning.
func (u *Usecase) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.Status == "" {
		p.Status = entities.ProjectPlanning
	}
	if err := validateProject(p); err != nil {
		u.log.Errorw("failed to create project", "error", err)
		return nil, err
	}
	if p.ID == "" {
		p.ID = u.newID()
	}

	res, err := u.repo.CreateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project create", "project_id", res.ID)
	return res, nil
}

// Project returns project by id.
func (u *Usecase) Project(ctx context.Context, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, id)
}

// Projects lists projects, optionally by status.
func (u *Usecase) Projects(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}
	return u.repo.ListProjects(ctx, status)
}

// UpdateProject applies a patch and re-validates the project.
func (u *Usecase) UpdateProject(ctx context.Context, id string, patch entities.ProjectPatch) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	current, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	if err := validateProject(next); err != nil {
		return nil, err
	}
	return u.repo.UpdateProject(ctx, next)
}

// DeleteProject removes a project and its assignments.
func (u *Usecase) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteProject(ctx, id); err != nil {
		return err
	}
	u.log.Infow("project delete", "project_id", id)
	return nil
}
