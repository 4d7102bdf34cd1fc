package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/services"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}
	page, size := pageParams(c)

	summary, err := h.service.GetSummary(userID, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, summary)
}
