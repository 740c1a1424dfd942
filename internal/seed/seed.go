// Package seed loads YAML fixtures of engineers, projects and assignments
// and writes them through the usecase layer.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"resource-manager/internal/entities"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk seed document.
type Fixture struct {
	Engineers   []Engineer   `yaml:"engineers"`
	Projects    []Project    `yaml:"projects"`
	Assignments []Assignment `yaml:"assignments"`
}

// Engineer is a fixture row for entities.Engineer.
type Engineer struct {
	ID          string   `yaml:"id"`
	Email       string   `yaml:"email"`
	Name        string   `yaml:"name"`
	Skills      []string `yaml:"skills"`
	Seniority   string   `yaml:"seniority"`
	MaxCapacity int      `yaml:"max_capacity"`
	Department  string   `yaml:"department"`
}

// Project is a fixture row for entities.Project.
type Project struct {
	ID             string    `yaml:"id"`
	Name           string    `yaml:"name"`
	Description    string    `yaml:"description"`
	Status         string    `yaml:"status"`
	RequiredSkills []string  `yaml:"required_skills"`
	TeamSize       int       `yaml:"team_size"`
	StartDate      time.Time `yaml:"start_date"`
	EndDate        time.Time `yaml:"end_date"`
	ManagerID      string    `yaml:"manager_id"`
}

// Assignment is a fixture row for entities.Assignment.
type Assignment struct {
	ID                   string    `yaml:"id"`
	EngineerID           string    `yaml:"engineer_id"`
	ProjectID            string    `yaml:"project_id"`
	AllocationPercentage int       `yaml:"allocation_percentage"`
	StartDate            time.Time `yaml:"start_date"`
	EndDate              time.Time `yaml:"end_date"`
	Role                 string    `yaml:"role"`
}

// Load reads a fixture file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode parses a fixture document. Unknown keys are rejected.
func Decode(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Store is the subset of the usecase layer the seeder writes through.
type Store interface {
	CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error)
	CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error)
	CreateAssignment(ctx context.Context, a entities.Assignment) (*entities.Assignment, error)
}

// Result counts what a seeding run did.
type Result struct {
	Created int
	Skipped int
}

// Seeder applies fixtures.
type Seeder struct {
	log   *zap.SugaredLogger
	store Store
}

// New constructs a Seeder.
func New(log *zap.SugaredLogger, store Store) *Seeder {
	return &Seeder{log: log.Named("seed"), store: store}
}

// Apply creates engineers, then projects, then assignments. Rows that already
// exist are skipped so the command can be re-run. Assignments go through the
// capacity gate like any other write.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	for _, e := range f.Engineers {
		_, err := s.store.CreateEngineer(ctx, entities.Engineer{
			ID:          e.ID,
			Email:       e.Email,
			Name:        e.Name,
			Skills:      e.Skills,
			Seniority:   entities.Seniority(e.Seniority),
			MaxCapacity: e.MaxCapacity,
			Department:  e.Department,
		})
		if err := s.tally(&res, "engineer", e.ID, err, entities.ErrEngineerExists); err != nil {
			return res, err
		}
	}

	for _, p := range f.Projects {
		_, err := s.store.CreateProject(ctx, entities.Project{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Status:         entities.ProjectStatus(p.Status),
			RequiredSkills: p.RequiredSkills,
			TeamSize:       p.TeamSize,
			StartDate:      p.StartDate,
			EndDate:        p.EndDate,
			ManagerID:      p.ManagerID,
		})
		if err := s.tally(&res, "project", p.ID, err, entities.ErrProjectExists); err != nil {
			return res, err
		}
	}

	for _, a := range f.Assignments {
		_, err := s.store.CreateAssignment(ctx, entities.Assignment{
			ID:                   a.ID,
			Engineer:             entities.Engineer{ID: a.EngineerID},
			Project:              entities.Project{ID: a.ProjectID},
			AllocationPercentage: a.AllocationPercentage,
			StartDate:            a.StartDate,
			EndDate:              a.EndDate,
			Role:                 a.Role,
		})
		if err := s.tally(&res, "assignment", a.ID, err, entities.ErrAssignmentExists); err != nil {
			return res, err
		}
	}

	s.log.Infow("seed applied", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

func (s *Seeder) tally(res *Result, kind, id string, err, exists error) error {
	switch {
	case err == nil:
		res.Created++
		return nil
	case errors.Is(err, exists):
		res.Skipped++
		s.log.Infow("seed row exists", "kind", kind, "id", id)
		return nil
	default:
		return fmt.Errorf("seed %s %s: %w", kind, id, err)
	}
}
