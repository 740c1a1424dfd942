package postgres

import (
	"context"
	"errors"
	"fmt"

	"resource-manager/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	engineerColumns     = `id, email, name, skills, seniority, max_capacity, department`
	insertEngineerQuery = `
INSERT INTO engineers(id, email, name, skills, seniority, max_capacity, department)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + engineerColumns
	selectEngineerQuery  = `SELECT ` + engineerColumns + ` FROM engineers WHERE id=$1`
	selectEngineersQuery = `SELECT ` + engineerColumns + ` FROM engineers ORDER BY name, id`
	updateEngineerQuery  = `
UPDATE engineers
SET name=$2, skills=$3, seniority=$4, max_capacity=$5, department=$6
WHERE id=$1
RETURNING ` + engineerColumns
)

func scanEngineer(row pgx.Row, e *entities.Engineer) error {
	return row.Scan(&e.ID, &e.Email, &e.Name, &e.Skills, &e.Seniority, &e.MaxCapacity, &e.Department)
}

func skillsArg(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

// CreateEngineer inserts an engineer profile.
func (p *Postgres) CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error) {
	var res entities.Engineer
	err := scanEngineer(p.db.QueryRow(ctx, insertEngineerQuery,
		e.ID, e.Email, e.Name, skillsArg(e.Skills), string(e.Seniority), e.Capacity(), e.Department,
	), &res)
	if err != nil {
		p.log.Errorw("failed to insert engineer", "error", err, "engineer_id", e.ID)
		if code, _ := pgCode(err); code == uniqueViolation {
			return nil, entities.ErrEngineerExists
		}
		return nil, fmt.Errorf("insert engineer: %w", err)
	}

	p.log.Infow("engineer created", "engineer_id", res.ID)
	return &res, nil
}

// GetEngineer fetches an engineer by id.
func (p *Postgres) GetEngineer(ctx context.Context, id string) (*entities.Engineer, error) {
	var res entities.Engineer
	if err := scanEngineer(p.db.QueryRow(ctx, selectEngineerQuery, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEngineerNotFound
		}
		return nil, fmt.Errorf("get engineer: %w", err)
	}
	return &res, nil
}

// ListEngineers returns all engineers ordered by name.
func (p *Postgres) ListEngineers(ctx context.Context) ([]entities.Engineer, error) {
	rows, err := p.db.Query(ctx, selectEngineersQuery)
	if err != nil {
		return nil, fmt.Errorf("list engineers: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Engineer, 0)
	for rows.Next() {
		var e entities.Engineer
		if err := scanEngineer(rows, &e); err != nil {
			p.log.Errorw("failed to scan engineer", "error", err)
			return nil, fmt.Errorf("scan engineer: %w", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate engineers: %w", err)
	}

	return res, nil
}

// UpdateEngineer overwrites the mutable profile fields of an engineer.
func (p *Postgres) UpdateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error) {
	var res entities.Engineer
	err := scanEngineer(p.db.QueryRow(ctx, updateEngineerQuery,
		e.ID, e.Name, skillsArg(e.Skills), string(e.Seniority), e.Capacity(), e.Department,
	), &res)
	if err != nil {
		p.log.Errorw("failed to update engineer", "error", err, "engineer_id", e.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEngineerNotFound
		}
		return nil, fmt.Errorf("update engineer: %w", err)
	}

	p.log.Infow("engineer updated", "engineer_id", res.ID)
	return &res, nil
}
