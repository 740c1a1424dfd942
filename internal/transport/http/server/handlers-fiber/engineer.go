package handlers_fiber

import (
	"net/http"

	"resource-manager/internal/mapper"
	api "resource-manager/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetEngineers lists engineers.
func (h *Handler) GetEngineers(c *fiber.Ctx) error {
	list, err := h.uc.Engineers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Engineers []api.Engineer `json:"engineers"`
	}{Engineers: mapper.ToOAPIEngineers(list)})
}

// PostEngineers registers an engineer.
func (h *Handler) PostEngineers(c *fiber.Ctx) error {
	var body api.PostEngineersJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	eng, err := h.uc.CreateEngineer(c.Context(), mapper.FromOAPIEngineerCreate(body))
	if err != nil {
		h.log.Infow("engineer create failed", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Engineer api.Engineer `json:"engineer"`
	}{Engineer: mapper.ToOAPIEngineer(*eng)})
}

// GetEngineersId returns one engineer.
func (h *Handler) GetEngineersId(c *fiber.Ctx, id string) error {
	eng, err := h.uc.Engineer(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Engineer api.Engineer `json:"engineer"`
	}{Engineer: mapper.ToOAPIEngineer(*eng)})
}

// PatchEngineersId updates an engineer profile.
func (h *Handler) PatchEngineersId(c *fiber.Ctx, id string) error {
	var body api.PatchEngineersIdJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	eng, err := h.uc.UpdateEngineer(c.Context(), id, mapper.FromOAPIEngineerUpdate(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Engineer api.Engineer `json:"engineer"`
	}{Engineer: mapper.ToOAPIEngineer(*eng)})
}

// GetEngineersIdCapacity returns capacity of an engineer.
func (h *Handler) GetEngineersIdCapacity(c *fiber.Ctx, id string) error {
	res, err := h.uc.EngineerCapacity(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetEngineersIdAssignments lists assignments of an engineer.
func (h *Handler) GetEngineersIdAssignments(c *fiber.Ctx, id string) error {
	list, err := h.uc.EngineerAssignments(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		EngineerID  string           `json:"engineer_id"`
		Assignments []api.Assignment `json:"assignments"`
	}{EngineerID: id, Assignments: mapper.ToOAPIAssignments(list)})
}

// PostEngineersSuitable finds engineers for a set of skills.
func (h *Handler) PostEngineersSuitable(c *fiber.Ctx) error {
	var body api.PostEngineersSuitableJSONRequestBody
	if err := h.bind(c, &body); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.SuitableEngineers(c.Context(), body.Skills)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Engineers []api.Engineer `json:"engineers"`
	}{Engineers: mapper.ToOAPIEngineers(list)})
}
