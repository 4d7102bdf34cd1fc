package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/services"
)

type CurrencyHandler struct {
	service *services.CurrencyService
}

func NewCurrencyHandler(service *services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{service: service}
}

func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	currencies, err := h.service.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, currencies)
}
