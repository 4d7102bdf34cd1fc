package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/services"
)

type ProfileHandler struct {
	users *services.UserService
}

func NewProfileHandler(users *services.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	profile, err := h.users.GetProfile(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	var req dto.UpdateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.users.UpdateProfile(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, profile)
}
