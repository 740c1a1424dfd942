package handlers_fiber

import (
	"net/http"

	"resource-manager/internal/entities"
	"resource-manager/internal/mapper"
	api "resource-manager/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetAssignments lists assignments filtered by engineer and/or project.
func (h *Handler) GetAssignments(c *fiber.Ctx, params api.GetAssignmentsParams) error {
	var filter entities.AssignmentFilter
	if params.EngineerId != nil {
		filter.EngineerID = *params.EngineerId
	}
	if params.ProjectId != nil {
		filter.ProjectID = *params.ProjectId
	}
	list, err := h.uc.Assignments(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Assignments []api.Assignment `json:"assignments"`
	}{Assignments: mapper.ToOAPIAssignments(list)})
}

// PostAssignments assigns an engineer to a project.
func (h *Handler) PostAssignments(c *fiber.Ctx) error {
	var body api.PostAssignmentsJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	a, err := mapper.FromOAPIAssignmentCreate(body)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.CreateAssignment(c.Context(), a)
	if err != nil {
		h.log.Infow("assignment create failed", "engineer_id", body.EngineerId, "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Assignment api.Assignment `json:"assignment"`
	}{Assignment: mapper.ToOAPIAssignment(*res)})
}

// GetAssignmentsId returns one assignment.
func (h *Handler) GetAssignmentsId(c *fiber.Ctx, id string) error {
	a, err := h.uc.Assignment(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Assignment api.Assignment `json:"assignment"`
	}{Assignment: mapper.ToOAPIAssignment(*a)})
}

// PatchAssignmentsId edits an assignment.
func (h *Handler) PatchAssignmentsId(c *fiber.Ctx, id string) error {
	var body api.PatchAssignmentsIdJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	patch, err := mapper.FromOAPIAssignmentUpdate(body)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.UpdateAssignment(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Assignment api.Assignment `json:"assignment"`
	}{Assignment: mapper.ToOAPIAssignment(*res)})
}

// DeleteAssignmentsId removes an assignment.
func (h *Handler) DeleteAssignmentsId(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteAssignment(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostAssignmentsValidate reports whether a proposed allocation passes the capacity gate.
func (h *Handler) PostAssignmentsValidate(c *fiber.Ctx) error {
	var body api.PostAssignmentsValidateJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.CheckCapacity(c.Context(), body.EngineerId, body.AllocationPercentage, body.ExcludeAssignmentId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}
