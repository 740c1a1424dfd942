package seed

import (
	"context"
	"strings"
	"testing"

	"resource-manager/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type storeMock struct{ mock.Mock }

func (m *storeMock) CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Engineer), args.Error(1)
}

func (m *storeMock) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *storeMock) CreateAssignment(ctx context.Context, a entities.Assignment) (*entities.Assignment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

const fixture = `
engineers:
  - id: e1
    email: john@company.com
    name: John Doe
    skills: [Go]
    max_capacity: 100
projects:
  - id: p1
    name: Platform
    status: Active
    start_date: 2024-01-01
    end_date: 2024-06-30
assignments:
  - id: a1
    engineer_id: e1
    project_id: p1
    allocation_percentage: 60
    start_date: 2024-01-01
    end_date: 2024-03-31
    role: Developer
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, f.Engineers, 1)
	require.Len(t, f.Projects, 1)
	require.Len(t, f.Assignments, 1)
	require.Equal(t, "2024-03-31", f.Assignments[0].EndDate.Format("2006-01-02"))
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("engineers:\n  - id: e1\n    salary: 10\n"))
	require.Error(t, err)
}

func TestLoadDemoFixture(t *testing.T) {
	f, err := Load("../../db/seed/demo.yaml")
	require.NoError(t, err)
	require.Len(t, f.Engineers, 3)
	require.Len(t, f.Projects, 3)
	require.Len(t, f.Assignments, 4)
	for _, a := range f.Assignments {
		require.True(t, a.StartDate.Before(a.EndDate), a.ID)
	}
}

func TestApplyOrderAndSkips(t *testing.T) {
	f, err := Decode(strings.NewReader(fixture))
	require.NoError(t, err)

	store := &storeMock{}
	var order []string
	store.On("CreateEngineer", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { order = append(order, "engineer") }).
		Return(nil, entities.ErrEngineerExists)
	store.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
		return p.Status == entities.ProjectActive && !p.StartDate.IsZero()
	})).
		Run(func(mock.Arguments) { order = append(order, "project") }).
		Return(&entities.Project{ID: "p1"}, nil)
	store.On("CreateAssignment", mock.Anything, mock.MatchedBy(func(a entities.Assignment) bool {
		return a.Engineer.ID == "e1" && a.Project.ID == "p1" && a.AllocationPercentage == 60
	})).
		Run(func(mock.Arguments) { order = append(order, "assignment") }).
		Return(&entities.Assignment{ID: "a1"}, nil)

	res, err := New(zap.NewNop().Sugar(), store).Apply(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, Result{Created: 2, Skipped: 1}, res)
	require.Equal(t, []string{"engineer", "project", "assignment"}, order)
}

func TestApplyStopsOnCapacityError(t *testing.T) {
	f, err := Decode(strings.NewReader(fixture))
	require.NoError(t, err)

	store := &storeMock{}
	store.On("CreateEngineer", mock.Anything, mock.Anything).Return(&entities.Engineer{ID: "e1"}, nil)
	store.On("CreateProject", mock.Anything, mock.Anything).Return(&entities.Project{ID: "p1"}, nil)
	store.On("CreateAssignment", mock.Anything, mock.Anything).Return(nil, entities.ErrCapacityExceeded)

	_, err = New(zap.NewNop().Sugar(), store).Apply(context.Background(), f)
	require.ErrorIs(t, err, entities.ErrCapacityExceeded)
	require.Contains(t, err.Error(), "seed assignment a1")
}
