// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"resource-manager/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EngineerInterface exposes engineer-related operations.
type EngineerInterface interface {
	CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error)
	GetEngineer(ctx context.Context, id string) (*entities.Engineer, error)
	ListEngineers(ctx context.Context) ([]entities.Engineer, error)
	UpdateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error)
}

// ProjectInterface exposes project-related operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, id string) (*entities.Project, error)
	ListProjects(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// AssignmentInterface exposes assignment-related operations. Returned assignments
// carry their engineer and project. Writes run gate inside the same transaction
// that locks the engineer, so concurrent writes for one engineer are serialized.
type AssignmentInterface interface {
	CreateAssignment(ctx context.Context, a entities.Assignment, gate entities.AssignmentGate) (*entities.Assignment, error)
	GetAssignment(ctx context.Context, id string) (*entities.Assignment, error)
	ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error)
	UpdateAssignment(ctx context.Context, a entities.Assignment, gate entities.AssignmentGate) (*entities.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}
