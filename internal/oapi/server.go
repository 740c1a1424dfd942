package oapi

import (
	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List engineers
	// (GET /engineers)
	GetEngineers(c *fiber.Ctx) error
	// Create engineer
	// (POST /engineers)
	PostEngineers(c *fiber.Ctx) error
	// Engineers matching required skills
	// (POST /engineers/suitable)
	PostEngineersSuitable(c *fiber.Ctx) error
	// Get engineer
	// (GET /engineers/{id})
	GetEngineersId(c *fiber.Ctx, id string) error
	// Update engineer profile
	// (PATCH /engineers/{id})
	PatchEngineersId(c *fiber.Ctx, id string) error
	// Engineer capacity
	// (GET /engineers/{id}/capacity)
	GetEngineersIdCapacity(c *fiber.Ctx, id string) error
	// Assignments of an engineer
	// (GET /engineers/{id}/assignments)
	GetEngineersIdAssignments(c *fiber.Ctx, id string) error

	// List projects
	// (GET /projects)
	GetProjects(c *fiber.Ctx, params GetProjectsParams) error
	// Create project
	// (POST /projects)
	PostProjects(c *fiber.Ctx) error
	// Get project
	// (GET /projects/{id})
	GetProjectsId(c *fiber.Ctx, id string) error
	// Update project
	// (PATCH /projects/{id})
	PatchProjectsId(c *fiber.Ctx, id string) error
	// Delete project
	// (DELETE /projects/{id})
	DeleteProjectsId(c *fiber.Ctx, id string) error

	// List assignments
	// (GET /assignments)
	GetAssignments(c *fiber.Ctx, params GetAssignmentsParams) error
	// Create assignment
	// (POST /assignments)
	PostAssignments(c *fiber.Ctx) error
	// Dry-run the capacity gate
	// (POST /assignments/validate)
	PostAssignmentsValidate(c *fiber.Ctx) error
	// Get assignment
	// (GET /assignments/{id})
	GetAssignmentsId(c *fiber.Ctx, id string) error
	// Update assignment
	// (PATCH /assignments/{id})
	PatchAssignmentsId(c *fiber.Ctx, id string) error
	// Delete assignment
	// (DELETE /assignments/{id})
	DeleteAssignmentsId(c *fiber.Ctx, id string) error

	// Per-engineer utilization
	// (GET /analytics/utilization)
	GetAnalyticsUtilization(c *fiber.Ctx) error
	// Overlapping assignments
	// (GET /analytics/overlaps)
	GetAnalyticsOverlaps(c *fiber.Ctx) error
	// Per-project staffing analytics
	// (GET /analytics/projects)
	GetAnalyticsProjects(c *fiber.Ctx) error
	// Assignment timeline
	// (GET /analytics/timeline)
	GetAnalyticsTimeline(c *fiber.Ctx) error
	// Dashboard summary
	// (GET /analytics/summary)
	GetAnalyticsSummary(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// MiddlewareFunc is a middleware applied to every registered route.
type MiddlewareFunc fiber.Handler

func (siw *ServerInterfaceWrapper) GetEngineers(c *fiber.Ctx) error {
	return siw.Handler.GetEngineers(c)
}

func (siw *ServerInterfaceWrapper) PostEngineers(c *fiber.Ctx) error {
	return siw.Handler.PostEngineers(c)
}

func (siw *ServerInterfaceWrapper) PostEngineersSuitable(c *fiber.Ctx) error {
	return siw.Handler.PostEngineersSuitable(c)
}

func (siw *ServerInterfaceWrapper) GetEngineersId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.GetEngineersId(c, id)
}

func (siw *ServerInterfaceWrapper) PatchEngineersId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.PatchEngineersId(c, id)
}

func (siw *ServerInterfaceWrapper) GetEngineersIdCapacity(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.GetEngineersIdCapacity(c, id)
}

func (siw *ServerInterfaceWrapper) GetEngineersIdAssignments(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.GetEngineersIdAssignments(c, id)
}

func (siw *ServerInterfaceWrapper) GetProjects(c *fiber.Ctx) error {
	var params GetProjectsParams
	if v := c.Query("status"); v != "" {
		params.Status = &v
	}
	return siw.Handler.GetProjects(c, params)
}

func (siw *ServerInterfaceWrapper) PostProjects(c *fiber.Ctx) error {
	return siw.Handler.PostProjects(c)
}

func (siw *ServerInterfaceWrapper) GetProjectsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.GetProjectsId(c, id)
}

func (siw *ServerInterfaceWrapper) PatchProjectsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.PatchProjectsId(c, id)
}

func (siw *ServerInterfaceWrapper) DeleteProjectsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.DeleteProjectsId(c, id)
}

func (siw *ServerInterfaceWrapper) GetAssignments(c *fiber.Ctx) error {
	var params GetAssignmentsParams
	if v := c.Query("engineer_id"); v != "" {
		params.EngineerId = &v
	}
	if v := c.Query("project_id"); v != "" {
		params.ProjectId = &v
	}
	return siw.Handler.GetAssignments(c, params)
}

func (siw *ServerInterfaceWrapper) PostAssignments(c *fiber.Ctx) error {
	return siw.Handler.PostAssignments(c)
}

func (siw *ServerInterfaceWrapper) PostAssignmentsValidate(c *fiber.Ctx) error {
	return siw.Handler.PostAssignmentsValidate(c)
}

func (siw *ServerInterfaceWrapper) GetAssignmentsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.GetAssignmentsId(c, id)
}

func (siw *ServerInterfaceWrapper) PatchAssignmentsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.PatchAssignmentsId(c, id)
}

func (siw *ServerInterfaceWrapper) DeleteAssignmentsId(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return siw.Handler.DeleteAssignmentsId(c, id)
}

func (siw *ServerInterfaceWrapper) GetAnalyticsUtilization(c *fiber.Ctx) error {
	return siw.Handler.GetAnalyticsUtilization(c)
}

func (siw *ServerInterfaceWrapper) GetAnalyticsOverlaps(c *fiber.Ctx) error {
	return siw.Handler.GetAnalyticsOverlaps(c)
}

func (siw *ServerInterfaceWrapper) GetAnalyticsProjects(c *fiber.Ctx) error {
	return siw.Handler.GetAnalyticsProjects(c)
}

func (siw *ServerInterfaceWrapper) GetAnalyticsTimeline(c *fiber.Ctx) error {
	return siw.Handler.GetAnalyticsTimeline(c)
}

func (siw *ServerInterfaceWrapper) GetAnalyticsSummary(c *fiber.Ctx) error {
	return siw.Handler.GetAnalyticsSummary(c)
}

func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid format for parameter id: value is required")
	}
	return id, nil
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
}

// RegisterHandlers binds every API route to si.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	router.Get(options.BaseURL+"/engineers", wrapper.GetEngineers)
	router.Post(options.BaseURL+"/engineers", wrapper.PostEngineers)
	router.Post(options.BaseURL+"/engineers/suitable", wrapper.PostEngineersSuitable)
	router.Get(options.BaseURL+"/engineers/:id", wrapper.GetEngineersId)
	router.Patch(options.BaseURL+"/engineers/:id", wrapper.PatchEngineersId)
	router.Get(options.BaseURL+"/engineers/:id/capacity", wrapper.GetEngineersIdCapacity)
	router.Get(options.BaseURL+"/engineers/:id/assignments", wrapper.GetEngineersIdAssignments)

	router.Get(options.BaseURL+"/projects", wrapper.GetProjects)
	router.Post(options.BaseURL+"/projects", wrapper.PostProjects)
	router.Get(options.BaseURL+"/projects/:id", wrapper.GetProjectsId)
	router.Patch(options.BaseURL+"/projects/:id", wrapper.PatchProjectsId)
	router.Delete(options.BaseURL+"/projects/:id", wrapper.DeleteProjectsId)

	router.Get(options.BaseURL+"/assignments", wrapper.GetAssignments)
	router.Post(options.BaseURL+"/assignments", wrapper.PostAssignments)
	router.Post(options.BaseURL+"/assignments/validate", wrapper.PostAssignmentsValidate)
	router.Get(options.BaseURL+"/assignments/:id", wrapper.GetAssignmentsId)
	router.Patch(options.BaseURL+"/assignments/:id", wrapper.PatchAssignmentsId)
	router.Delete(options.BaseURL+"/assignments/:id", wrapper.DeleteAssignmentsId)

	router.Get(options.BaseURL+"/analytics/utilization", wrapper.GetAnalyticsUtilization)
	router.Get(options.BaseURL+"/analytics/overlaps", wrapper.GetAnalyticsOverlaps)
	router.Get(options.BaseURL+"/analytics/projects", wrapper.GetAnalyticsProjects)
	router.Get(options.BaseURL+"/analytics/timeline", wrapper.GetAnalyticsTimeline)
	router.Get(options.BaseURL+"/analytics/summary", wrapper.GetAnalyticsSummary)
}
