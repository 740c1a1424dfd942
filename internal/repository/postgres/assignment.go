package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resource-manager/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectAssignmentsBase = `
SELECT a.id, a.allocation_percentage, a.start_date, a.end_date, a.role,
       e.id, e.email, e.name, e.skills, e.seniority, e.max_capacity, e.department,
       p.id, p.name, p.description, p.status, p.required_skills, p.team_size, p.start_date, p.end_date, p.manager_id
FROM assignments a
JOIN engineers e ON e.id = a.engineer_id
JOIN projects p ON p.id = a.project_id`
	selectAssignmentQuery  = selectAssignmentsBase + ` WHERE a.id=$1`
	selectAssignmentsQuery = selectAssignmentsBase + `
WHERE ($1::text = '' OR a.engineer_id = $1::text)
  AND ($2::text = '' OR a.project_id = $2::text)
ORDER BY a.created_at, a.id`
	selectEngineerForUpdateQuery = `SELECT ` + engineerColumns + ` FROM engineers WHERE id=$1 FOR UPDATE`
	insertAssignmentQuery        = `
INSERT INTO assignments(id, engineer_id, project_id, allocation_percentage, start_date, end_date, role)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updateAssignmentQuery = `
UPDATE assignments
SET project_id=$2, allocation_percentage=$3, start_date=$4, end_date=$5, role=$6
WHERE id=$1 AND engineer_id=$7`
	deleteAssignmentQuery = `DELETE FROM assignments WHERE id=$1`
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanAssignment(row pgx.Row, a *entities.Assignment) error {
	e, pr := &a.Engineer, &a.Project
	return row.Scan(
		&a.ID, &a.AllocationPercentage, &a.StartDate, &a.EndDate, &a.Role,
		&e.ID, &e.Email, &e.Name, &e.Skills, &e.Seniority, &e.MaxCapacity, &e.Department,
		&pr.ID, &pr.Name, &pr.Description, &pr.Status, &pr.RequiredSkills, &pr.TeamSize,
		&pr.StartDate, &pr.EndDate, &pr.ManagerID,
	)
}

// referenceError maps foreign key violations to the missing entity.
func referenceError(err error) error {
	code, constraint := pgCode(err)
	switch {
	case code == uniqueViolation:
		return entities.ErrAssignmentExists
	case code == foreignKeyViolation && strings.Contains(constraint, "engineer"):
		return entities.ErrEngineerNotFound
	case code == foreignKeyViolation:
		return entities.ErrProjectNotFound
	}
	return nil
}

// lockEngineer takes the engineer row lock for the rest of tx and runs gate
// against the engineer's assignments as seen under that lock.
func (p *Postgres) lockEngineer(ctx context.Context, tx pgx.Tx, engineerID string, gate entities.AssignmentGate) error {
	var eng entities.Engineer
	if err := scanEngineer(tx.QueryRow(ctx, selectEngineerForUpdateQuery, engineerID), &eng); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrEngineerNotFound
		}
		p.log.Errorw("failed to lock engineer", "error", err, "engineer_id", engineerID)
		return fmt.Errorf("lock engineer: %w", err)
	}
	if gate == nil {
		return nil
	}

	snapshot, err := p.listAssignments(ctx, tx, entities.AssignmentFilter{EngineerID: engineerID})
	if err != nil {
		return err
	}
	return gate(eng, snapshot)
}

// CreateAssignment inserts an assignment and returns it with engineer and project loaded.
func (p *Postgres) CreateAssignment(ctx context.Context, a entities.Assignment, gate entities.AssignmentGate) (*entities.Assignment, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.lockEngineer(ctx, tx, a.Engineer.ID, gate); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, insertAssignmentQuery,
		a.ID, a.Engineer.ID, a.Project.ID, a.AllocationPercentage, a.StartDate, a.EndDate, a.Role,
	); err != nil {
		p.log.Errorw("failed to insert assignment", "error", err, "assignment_id", a.ID)
		if mapped := referenceError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	res, err := p.getAssignment(ctx, tx, a.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}

	p.log.Infow("assignment created",
		"assignment_id", a.ID,
		"engineer_id", a.Engineer.ID,
		"project_id", a.Project.ID,
		"allocation", a.AllocationPercentage,
	)
	return res, nil
}

// GetAssignment fetches an assignment by id.
func (p *Postgres) GetAssignment(ctx context.Context, id string) (*entities.Assignment, error) {
	return p.getAssignment(ctx, p.db, id)
}

func (p *Postgres) getAssignment(ctx context.Context, q querier, id string) (*entities.Assignment, error) {
	var res entities.Assignment
	if err := scanAssignment(q.QueryRow(ctx, selectAssignmentQuery, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &res, nil
}

// ListAssignments returns assignments in creation order, filtered by engineer and/or project.
func (p *Postgres) ListAssignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	return p.listAssignments(ctx, p.db, filter)
}

func (p *Postgres) listAssignments(ctx context.Context, q querier, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	rows, err := q.Query(ctx, selectAssignmentsQuery, filter.EngineerID, filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Assignment, 0)
	for rows.Next() {
		var a entities.Assignment
		if err := scanAssignment(rows, &a); err != nil {
			p.log.Errorw("failed to scan assignment", "error", err)
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	return res, nil
}

// UpdateAssignment overwrites the mutable fields of an assignment. The engineer cannot change.
func (p *Postgres) UpdateAssignment(ctx context.Context, a entities.Assignment, gate entities.AssignmentGate) (*entities.Assignment, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.lockEngineer(ctx, tx, a.Engineer.ID, gate); err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, updateAssignmentQuery,
		a.ID, a.Project.ID, a.AllocationPercentage, a.StartDate, a.EndDate, a.Role, a.Engineer.ID,
	)
	if err != nil {
		p.log.Errorw("failed to update assignment", "error", err, "assignment_id", a.ID)
		if mapped := referenceError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrAssignmentNotFound
	}

	res, err := p.getAssignment(ctx, tx, a.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}

	p.log.Infow("assignment updated", "assignment_id", a.ID, "allocation", a.AllocationPercentage)
	return res, nil
}

// DeleteAssignment removes an assignment.
func (p *Postgres) DeleteAssignment(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteAssignmentQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete assignment", "error", err, "assignment_id", id)
		return fmt.Errorf("delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAssignmentNotFound
	}

	p.log.Infow("assignment deleted", "assignment_id", id)
	return nil
}
