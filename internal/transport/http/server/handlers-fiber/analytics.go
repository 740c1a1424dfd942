package handlers_fiber

import (
	"net/http"

	"resource-manager/internal/entities"
	"resource-manager/internal/mapper"
	api "resource-manager/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetAnalyticsUtilization returns utilization per engineer.
func (h *Handler) GetAnalyticsUtilization(c *fiber.Ctx) error {
	res, err := h.uc.Utilization(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Engineers []api.UtilizationSummary `json:"engineers"`
	}{Engineers: mapper.ToOAPIUtilization(res)})
}

// GetAnalyticsOverlaps returns overlapping assignment pairs.
func (h *Handler) GetAnalyticsOverlaps(c *fiber.Ctx) error {
	res, err := h.uc.Overlaps(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Overlaps []api.OverlapPair `json:"overlaps"`
	}{Overlaps: mapper.ToOAPIOverlaps(res)})
}

// GetAnalyticsProjects returns staffing analytics per project.
func (h *Handler) GetAnalyticsProjects(c *fiber.Ctx) error {
	res, err := h.uc.ProjectAnalytics(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []entities.ProjectAnalytics `json:"projects"`
	}{Projects: res})
}

// GetAnalyticsTimeline returns assignments as calendar events.
func (h *Handler) GetAnalyticsTimeline(c *fiber.Ctx) error {
	res, err := h.uc.Timeline(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Events []api.TimelineEvent `json:"events"`
	}{Events: mapper.ToOAPITimeline(res)})
}

// GetAnalyticsSummary returns the dashboard overview.
func (h *Handler) GetAnalyticsSummary(c *fiber.Ctx) error {
	res, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}
