package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/services"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}
	page, size := pageParams(c)

	result, err := h.service.List(userID, page, size, c.Query("searchTerm"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, result)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(userID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, created)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(categoryID, userID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	if err := h.service.Delete(categoryID, userID); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, nil)
}
