package postgres

import (
	"context"
	"errors"
	"fmt"

	"resource-manager/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectColumns     = `id, name, description, status, required_skills, team_size, start_date, end_date, manager_id`
	insertProjectQuery = `
INSERT INTO projects(id, name, description, status, required_skills, team_size, start_date, end_date, manager_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + projectColumns
	selectProjectQuery  = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	selectProjectsQuery = `
SELECT ` + projectColumns + `
FROM projects
WHERE ($1::text = '' OR status = $1::text)
ORDER BY start_date, id`
	updateProjectQuery = `
UPDATE projects
SET name=$2, description=$3, status=$4, required_skills=$5, team_size=$6, start_date=$7, end_date=$8
WHERE id=$1
RETURNING ` + projectColumns
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`
)

func scanProject(row pgx.Row, pr *entities.Project) error {
	return row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.Status, &pr.RequiredSkills,
		&pr.TeamSize, &pr.StartDate, &pr.EndDate, &pr.ManagerID)
}

// CreateProject inserts a project.
func (p *Postgres) CreateProject(ctx context.Context, pr entities.Project) (*entities.Project, error) {
	var res entities.Project
	err := scanProject(p.db.QueryRow(ctx, insertProjectQuery,
		pr.ID, pr.Name, pr.Description, string(pr.Status), skillsArg(pr.RequiredSkills),
		pr.TeamSize, pr.StartDate, pr.EndDate, pr.ManagerID,
	), &res)
	if err != nil {
		p.log.Errorw("failed to insert project", "error", err, "project_id", pr.ID)
		if code, _ := pgCode(err); code == uniqueViolation {
			return nil, entities.ErrProjectExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", res.ID, "status", res.Status)
	return &res, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	var res entities.Project
	if err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &res, nil
}

// ListProjects returns projects, optionally restricted to one status.
func (p *Postgres) ListProjects(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, selectProjectsQuery, string(status))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := scanProject(rows, &pr); err != nil {
			p.log.Errorw("failed to scan project", "error", err)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		res = append(res, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return res, nil
}

// UpdateProject overwrites the mutable fields of a project.
func (p *Postgres) UpdateProject(ctx context.Context, pr entities.Project) (*entities.Project, error) {
	var res entities.Project
	err := scanProject(p.db.QueryRow(ctx, updateProjectQuery,
		pr.ID, pr.Name, pr.Description, string(pr.Status), skillsArg(pr.RequiredSkills),
		pr.TeamSize, pr.StartDate, pr.EndDate,
	), &res)
	if err != nil {
		p.log.Errorw("failed to update project", "error", err, "project_id", pr.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	p.log.Infow("project updated", "project_id", res.ID, "status", res.Status)
	return &res, nil
}

// DeleteProject removes a project together with its assignments.
func (p *Postgres) DeleteProject(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete project", "error", err, "project_id", id)
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	p.log.Infow("project deleted", "project_id", id)
	return nil
}
