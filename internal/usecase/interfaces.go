package usecase

import (
	"context"

	"resource-manager/internal/entities"
)

// EngineerUsecaseInterface abstracts engineer-related operations for delivery layer.
type EngineerUsecaseInterface interface {
	CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error)
	Engineer(ctx context.Context, id string) (*entities.Engineer, error)
	Engineers(ctx context.Context) ([]entities.Engineer, error)
	UpdateEngineer(ctx context.Context, id string, patch entities.EngineerPatch) (*entities.Engineer, error)
	EngineerCapacity(ctx context.Context, id string) (entities.EngineerCapacity, error)
	EngineerAssignments(ctx context.Context, id string) ([]entities.Assignment, error)
	SuitableEngineers(ctx context.Context, skills []string) ([]entities.Engineer, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	Project(ctx context.Context, id string) (*entities.Project, error)
	Projects(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	UpdateProject(ctx context.Context, id string, patch entities.ProjectPatch) (*entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// AssignmentUsecaseInterface abstracts assignment-related operations.
type AssignmentUsecaseInterface interface {
	CreateAssignment(ctx context.Context, a entities.Assignment) (*entities.Assignment, error)
	Assignment(ctx context.Context, id string) (*entities.Assignment, error)
	Assignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch entities.AssignmentPatch) (*entities.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	CheckCapacity(ctx context.Context, engineerID string, proposed int, excludeID string) (entities.CapacityCheck, error)
}

// AnalyticsUsecaseInterface abstracts utilization analytics.
type AnalyticsUsecaseInterface interface {
	Utilization(ctx context.Context) ([]entities.UtilizationSummary, error)
	Overlaps(ctx context.Context) ([]entities.OverlapPair, error)
	ProjectAnalytics(ctx context.Context) ([]entities.ProjectAnalytics, error)
	Timeline(ctx context.Context) ([]entities.TimelineEvent, error)
	Summary(ctx context.Context) (entities.AnalyticsSummary, error)
}
