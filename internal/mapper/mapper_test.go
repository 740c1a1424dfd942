package mapper

import (
	"testing"
	"time"

	"resource-manager/internal/entities"
	oapi "resource-manager/internal/oapi"
	"resource-manager/internal/utilization"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("start_date", "2024-02-29")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("start_date", "29.02.2024")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Contains(t, err.Error(), "start_date")
}

func TestFromOAPIAssignmentCreate(t *testing.T) {
	a, err := FromOAPIAssignmentCreate(oapi.AssignmentCreate{
		EngineerId:           "e1",
		ProjectId:            "p1",
		AllocationPercentage: 60,
		StartDate:            "2024-01-01",
		EndDate:              "2024-06-30",
		Role:                 "Tech Lead",
	})
	require.NoError(t, err)
	require.Equal(t, "e1", a.Engineer.ID)
	require.Equal(t, "p1", a.Project.ID)
	require.Equal(t, 60, a.AllocationPercentage)
	require.Equal(t, "2024-06-30", a.EndDate.Format(DateLayout))

	_, err = FromOAPIAssignmentCreate(oapi.AssignmentCreate{StartDate: "2024-01-01", EndDate: "bad"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestFromOAPIAssignmentUpdateKeepsAbsentFields(t *testing.T) {
	alloc := 40
	patch, err := FromOAPIAssignmentUpdate(oapi.AssignmentUpdate{AllocationPercentage: &alloc})
	require.NoError(t, err)
	require.Equal(t, &alloc, patch.AllocationPercentage)
	require.Nil(t, patch.StartDate)
	require.Nil(t, patch.EndDate)
	require.Nil(t, patch.ProjectID)
}

func TestToOAPIEngineerDefaultsCapacity(t *testing.T) {
	e := ToOAPIEngineer(entities.Engineer{ID: "e1", Name: "John"})
	require.Equal(t, entities.DefaultMaxCapacity, e.MaxCapacity)
	require.NotNil(t, e.Skills)
}

func TestToOAPIUtilizationAndOverlaps(t *testing.T) {
	eng := entities.Engineer{ID: "e1", Name: "John"}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	list := []entities.Assignment{
		{ID: "a1", Engineer: eng, Project: entities.Project{ID: "p1", Name: "Platform"}, AllocationPercentage: 60, StartDate: start, EndDate: start.AddDate(0, 2, 0)},
		{ID: "a2", Engineer: eng, Project: entities.Project{ID: "p2", Name: "Mobile"}, AllocationPercentage: 50, StartDate: start.AddDate(0, 1, 0), EndDate: start.AddDate(0, 3, 0)},
	}

	res := ToOAPIUtilization(utilization.Aggregate(list))
	require.Len(t, res, 1)
	require.Equal(t, 110, res[0].CurrentAllocation)
	require.Equal(t, "over", res[0].Level)
	require.Len(t, res[0].Assignments, 2)
	require.Equal(t, "Platform", res[0].Assignments[0].ProjectName)

	pairs := ToOAPIOverlaps(utilization.DetectOverlaps(list))
	require.Len(t, pairs, 1)
	require.Equal(t, "e1", pairs[0].EngineerId)
	require.Equal(t, "a1", pairs[0].First.Id)
	require.Equal(t, "a2", pairs[0].Second.Id)
	require.Equal(t, "2024-02-01", pairs[0].Second.StartDate)
}
