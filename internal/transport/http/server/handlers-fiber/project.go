package handlers_fiber

import (
	"net/http"

	"resource-manager/internal/entities"
	"resource-manager/internal/mapper"
	api "resource-manager/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists projects, optionally filtered by status.
func (h *Handler) GetProjects(c *fiber.Ctx, params api.GetProjectsParams) error {
	var status entities.ProjectStatus
	if params.Status != nil {
		status = entities.ProjectStatus(*params.Status)
	}
	list, err := h.uc.Projects(c.Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []api.Project `json:"projects"`
	}{Projects: mapper.ToOAPIProjects(list)})
}

// PostProjects creates a project.
func (h *Handler) PostProjects(c *fiber.Ctx) error {
	var body api.PostProjectsJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	p, err := mapper.FromOAPIProjectCreate(body)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.CreateProject(c.Context(), p)
	if err != nil {
		h.log.Infow("project create failed", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*res)})
}

// GetProjectsId returns one project.
func (h *Handler) GetProjectsId(c *fiber.Ctx, id string) error {
	p, err := h.uc.Project(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*p)})
}

// PatchProjectsId updates a project.
func (h *Handler) PatchProjectsId(c *fiber.Ctx, id string) error {
	var body api.PatchProjectsIdJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	patch, err := mapper.FromOAPIProjectUpdate(body)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.UpdateProject(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Project api.Project `json:"project"`
	}{Project: mapper.ToOAPIProject(*res)})
}

// DeleteProjectsId deletes a project together with its assignments.
func (h *Handler) DeleteProjectsId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
