package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resource-manager/internal/entities"
	api "resource-manager/internal/oapi"
	"resource-manager/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) CreateEngineer(ctx context.Context, e entities.Engineer) (*entities.Engineer, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Engineer), args.Error(1)
}

func (m *usecaseMock) Engineer(ctx context.Context, id string) (*entities.Engineer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Engineer), args.Error(1)
}

func (m *usecaseMock) Engineers(ctx context.Context) ([]entities.Engineer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Engineer), args.Error(1)
}

func (m *usecaseMock) UpdateEngineer(ctx context.Context, id string, patch entities.EngineerPatch) (*entities.Engineer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Engineer), args.Error(1)
}

func (m *usecaseMock) EngineerCapacity(ctx context.Context, id string) (entities.EngineerCapacity, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.EngineerCapacity), args.Error(1)
}

func (m *usecaseMock) EngineerAssignments(ctx context.Context, id string) ([]entities.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Assignment), args.Error(1)
}

func (m *usecaseMock) SuitableEngineers(ctx context.Context, skills []string) ([]entities.Engineer, error) {
	args := m.Called(ctx, skills)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Engineer), args.Error(1)
}

func (m *usecaseMock) CreateProject(ctx context.Context, p entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) Project(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) Projects(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *usecaseMock) UpdateProject(ctx context.Context, id string, patch entities.ProjectPatch) (*entities.Project, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *usecaseMock) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *usecaseMock) CreateAssignment(ctx context.Context, a entities.Assignment) (*entities.Assignment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

func (m *usecaseMock) Assignment(ctx context.Context, id string) (*entities.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

func (m *usecaseMock) Assignments(ctx context.Context, filter entities.AssignmentFilter) ([]entities.Assignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Assignment), args.Error(1)
}

func (m *usecaseMock) UpdateAssignment(ctx context.Context, id string, patch entities.AssignmentPatch) (*entities.Assignment, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Assignment), args.Error(1)
}

func (m *usecaseMock) DeleteAssignment(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *usecaseMock) CheckCapacity(ctx context.Context, engineerID string, proposed int, excludeID string) (entities.CapacityCheck, error) {
	args := m.Called(ctx, engineerID, proposed, excludeID)
	return args.Get(0).(entities.CapacityCheck), args.Error(1)
}

func (m *usecaseMock) Utilization(ctx context.Context) ([]entities.UtilizationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.UtilizationSummary), args.Error(1)
}

func (m *usecaseMock) Overlaps(ctx context.Context) ([]entities.OverlapPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.OverlapPair), args.Error(1)
}

func (m *usecaseMock) ProjectAnalytics(ctx context.Context) ([]entities.ProjectAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProjectAnalytics), args.Error(1)
}

func (m *usecaseMock) Timeline(ctx context.Context) ([]entities.TimelineEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TimelineEvent), args.Error(1)
}

func (m *usecaseMock) Summary(ctx context.Context) (entities.AnalyticsSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.AnalyticsSummary), args.Error(1)
}

func newTestApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) api.ErrorResponse {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestPostAssignmentsCreated(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	uc.On("CreateAssignment", mock.Anything, mock.MatchedBy(func(a entities.Assignment) bool {
		return a.Engineer.ID == "e1" && a.Project.ID == "p1" && a.StartDate.Equal(start) && a.EndDate.Equal(end)
	})).Return(&entities.Assignment{
		ID:                   "a1",
		Engineer:             entities.Engineer{ID: "e1", Name: "John"},
		Project:              entities.Project{ID: "p1", Name: "Platform"},
		AllocationPercentage: 60,
		StartDate:            start,
		EndDate:              end,
		Role:                 "Tech Lead",
	}, nil)

	resp, raw := do(t, app, http.MethodPost, "/assignments",
		`{"engineer_id":"e1","project_id":"p1","allocation_percentage":60,"start_date":"2024-01-01","end_date":"2024-06-30","role":"Tech Lead"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Assignment api.Assignment `json:"assignment"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "a1", body.Assignment.Id)
	require.Equal(t, "John", body.Assignment.EngineerName)
	require.Equal(t, "2024-06-30", body.Assignment.EndDate)
	uc.AssertExpectations(t)
}

func TestPostAssignmentsValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "allocation_above_100", body: `{"engineer_id":"e1","project_id":"p1","allocation_percentage":120,"start_date":"2024-01-01","end_date":"2024-06-30","role":"Dev"}`},
		{name: "missing_role", body: `{"engineer_id":"e1","project_id":"p1","allocation_percentage":20,"start_date":"2024-01-01","end_date":"2024-06-30"}`},
		{name: "bad_date", body: `{"engineer_id":"e1","project_id":"p1","allocation_percentage":20,"start_date":"01/01/2024","end_date":"2024-06-30","role":"Dev"}`},
		{name: "malformed", body: `{"engineer_id":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := &usecaseMock{}
			app := newTestApp(uc)

			resp, raw := do(t, app, http.MethodPost, "/assignments", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.Equal(t, api.INVALIDARGUMENT, decodeError(t, raw).Error.Code)
			uc.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
		})
	}
}

func TestPostAssignmentsCapacityExceeded(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("CreateAssignment", mock.Anything, mock.Anything).Return(nil, entities.ErrCapacityExceeded)

	resp, raw := do(t, app, http.MethodPost, "/assignments",
		`{"engineer_id":"e1","project_id":"p1","allocation_percentage":30,"start_date":"2024-01-01","end_date":"2024-06-30","role":"Dev"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.CAPACITYEXCEEDED, decodeError(t, raw).Error.Code)
}

func TestPatchAssignmentsId(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("UpdateAssignment", mock.Anything, "a1", mock.MatchedBy(func(p entities.AssignmentPatch) bool {
		return p.AllocationPercentage != nil && *p.AllocationPercentage == 70 && p.Role == nil
	})).Return(&entities.Assignment{ID: "a1", AllocationPercentage: 70}, nil)

	resp, _ := do(t, app, http.MethodPatch, "/assignments/a1", `{"allocation_percentage":70}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestPostAssignmentsValidate(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("CheckCapacity", mock.Anything, "e1", 30, "a2").Return(entities.CapacityCheck{
		EngineerID: "e1", Proposed: 30, CurrentAllocation: 60, Ceiling: 100, Allowed: true,
	}, nil)

	resp, raw := do(t, app, http.MethodPost, "/assignments/validate",
		`{"engineer_id":"e1","allocation_percentage":30,"exclude_assignment_id":"a2"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body entities.CapacityCheck
	require.NoError(t, json.Unmarshal(raw, &body))
	require.True(t, body.Allowed)
	require.Equal(t, 60, body.CurrentAllocation)
}

func TestGetAssignmentsFilter(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("Assignments", mock.Anything, entities.AssignmentFilter{EngineerID: "e1", ProjectID: "p2"}).
		Return([]entities.Assignment{}, nil)

	resp, raw := do(t, app, http.MethodGet, "/assignments?engineer_id=e1&project_id=p2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"assignments":[]}`, string(raw))
}

func TestDeleteProjectsId(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("DeleteProject", mock.Anything, "p1").Return(nil)
	uc.On("DeleteProject", mock.Anything, "missing").Return(entities.ErrProjectNotFound)

	resp, _ := do(t, app, http.MethodDelete, "/projects/p1", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := do(t, app, http.MethodDelete, "/projects/missing", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "project not found", decodeError(t, raw).Error.Message)
}

func TestGetProjectsStatusFilter(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("Projects", mock.Anything, entities.ProjectActive).Return([]entities.Project{
		{ID: "p1", Name: "Platform", Status: entities.ProjectActive, StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	resp, raw := do(t, app, http.MethodGet, "/projects?status=Active", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Projects []api.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Projects, 1)
	require.Equal(t, "2024-01-01", body.Projects[0].StartDate)
	require.Equal(t, []string{}, body.Projects[0].RequiredSkills)
}

func TestPostProjectsRejectsUnknownStatus(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp, _ := do(t, app, http.MethodPost, "/projects",
		`{"name":"Platform","status":"Cancelled","start_date":"2024-01-01","end_date":"2024-12-31"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestPostEngineersRequiresEmail(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp, raw := do(t, app, http.MethodPost, "/engineers", `{"name":"John","email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeError(t, raw).Error.Message, "Email")
}

func TestGetEngineersIdCapacity(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("EngineerCapacity", mock.Anything, "e4").Return(entities.EngineerCapacity{
		EngineerID: "e4", MaxCapacity: 80, CurrentAllocation: 100, Available: 0,
	}, nil)

	resp, raw := do(t, app, http.MethodGet, "/engineers/e4/capacity", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"engineer_id":"e4","max_capacity":80,"current_allocation":100,"available":0}`, string(raw))
}

func TestPostEngineersSuitable(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("SuitableEngineers", mock.Anything, []string{"Go"}).Return([]entities.Engineer{{ID: "e1", Name: "John", Skills: []string{"Go"}}}, nil)

	resp, raw := do(t, app, http.MethodPost, "/engineers/suitable", `{"skills":["Go"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Engineers []api.Engineer `json:"engineers"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Engineers, 1)
	require.Equal(t, 100, body.Engineers[0].MaxCapacity)

	resp, _ = do(t, app, http.MethodPost, "/engineers/suitable", `{"skills":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAnalyticsUtilization(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	a := &entities.Assignment{ID: "a1", Engineer: entities.Engineer{ID: "e1", Name: "John"}, AllocationPercentage: 110}
	uc.On("Utilization", mock.Anything).Return([]entities.UtilizationSummary{{
		EngineerID:            "e1",
		EngineerName:          "John",
		CurrentAllocation:     110,
		MaxCapacity:           100,
		UtilizationPercentage: 110,
		Overallocated:         true,
		Assignments:           []*entities.Assignment{a},
	}}, nil)

	resp, raw := do(t, app, http.MethodGet, "/analytics/utilization", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Engineers []api.UtilizationSummary `json:"engineers"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Engineers, 1)
	require.True(t, body.Engineers[0].Overallocated)
	require.Equal(t, "over", body.Engineers[0].Level)
	require.Equal(t, "a1", body.Engineers[0].Assignments[0].Id)
}

func TestGetAnalyticsSummaryInternalError(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("Summary", mock.Anything).Return(entities.AnalyticsSummary{}, io.ErrUnexpectedEOF)

	resp, raw := do(t, app, http.MethodGet, "/analytics/summary", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, api.INTERNAL, decodeError(t, raw).Error.Code)
}

func TestGetByIdUsesResourceEnvelope(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	uc.On("Engineer", mock.Anything, "e1").Return(&entities.Engineer{ID: "e1", Name: "John", MaxCapacity: 100}, nil)
	uc.On("Project", mock.Anything, "p1").Return(&entities.Project{ID: "p1", Name: "Platform", StartDate: start, EndDate: end}, nil)
	uc.On("Assignment", mock.Anything, "a1").Return(&entities.Assignment{
		ID:                   "a1",
		Engineer:             entities.Engineer{ID: "e1", Name: "John"},
		Project:              entities.Project{ID: "p1", Name: "Platform"},
		AllocationPercentage: 60,
		StartDate:            start,
		EndDate:              end,
		Role:                 "Developer",
	}, nil)

	resp, raw := do(t, app, http.MethodGet, "/engineers/e1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var eng struct {
		Engineer api.Engineer `json:"engineer"`
	}
	require.NoError(t, json.Unmarshal(raw, &eng))
	require.Equal(t, "John", eng.Engineer.Name)

	resp, raw = do(t, app, http.MethodGet, "/projects/p1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var proj struct {
		Project api.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(raw, &proj))
	require.Equal(t, "Platform", proj.Project.Name)
	require.Equal(t, "2024-06-30", proj.Project.EndDate)

	resp, raw = do(t, app, http.MethodGet, "/assignments/a1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var asg struct {
		Assignment api.Assignment `json:"assignment"`
	}
	require.NoError(t, json.Unmarshal(raw, &asg))
	require.Equal(t, "a1", asg.Assignment.Id)
	require.Equal(t, 60, asg.Assignment.AllocationPercentage)

	uc.AssertExpectations(t)
}
