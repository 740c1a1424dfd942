// Package domain contains application Usecases orchestrating utilization analytics.
package domain

import (
	"context"

	"resource-manager/internal/entities"
	"resource-manager/internal/metrics"
	"resource-manager/internal/utilization"
)

// Utilization aggregates the current assignment snapshot per engineer.
func (u *Usecase) Utilization(ctx context.Context) ([]entities.UtilizationSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{})
	if err != nil {
		return nil, err
	}
	res := utilization.Aggregate(snapshot)
	metrics.ObserveUtilization(res)
	return res, nil
}

// Overlaps returns same-engineer assignments with intersecting dates.
func (u *Usecase) Overlaps(ctx context.Context) ([]entities.OverlapPair, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{})
	if err != nil {
		return nil, err
	}
	return utilization.DetectOverlaps(snapshot), nil
}

// ProjectAnalytics returns staffing, skill coverage and timeline progress per project.
func (u *Usecase) ProjectAnalytics(ctx context.Context) ([]entities.ProjectAnalytics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	projects, err := u.repo.ListProjects(ctx, "")
	if err != nil {
		return nil, err
	}
	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{})
	if err != nil {
		return nil, err
	}
	return utilization.Projects(projects, snapshot, u.now()), nil
}

// Timeline returns assignments as calendar events.
func (u *Usecase) Timeline(ctx context.Context) ([]entities.TimelineEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{})
	if err != nil {
		return nil, err
	}
	return utilization.Timeline(snapshot), nil
}

// Summary builds the dashboard overview.
func (u *Usecase) Summary(ctx context.Context) (entities.AnalyticsSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	engineers, err := u.repo.ListEngineers(ctx)
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}
	projects, err := u.repo.ListProjects(ctx, "")
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}
	snapshot, err := u.repo.ListAssignments(ctx, entities.AssignmentFilter{})
	if err != nil {
		return entities.AnalyticsSummary{}, err
	}

	counts := make(map[entities.ProjectStatus]int, 3)
	for _, p := range projects {
		counts[p.Status]++
	}
	statuses := []entities.ProjectStatus{entities.ProjectPlanning, entities.ProjectActive, entities.ProjectCompleted}
	byStatus := make([]entities.StatusStat, 0, len(statuses))
	for _, s := range statuses {
		byStatus = append(byStatus, entities.StatusStat{Status: s, Projects: counts[s]})
	}

	return entities.AnalyticsSummary{
		Team:          utilization.Team(engineers, snapshot),
		Projects:      len(projects),
		ProjectStatus: byStatus,
		Assignments:   len(snapshot),
		Overlaps:      len(utilization.DetectOverlaps(snapshot)),
	}, nil
}
