package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/services"
)

type TransactionHandler struct {
	service *services.TransactionService
}

func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}
	page, size := pageParams(c)

	result, err := h.service.ListPaginated(userID, page, size)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, result)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	tx, err := h.service.GetByID(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, tx)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" {
		return badRequest(c, "userId is required")
	}

	created, err := h.service.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, created)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(id, req, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, updated)
}

// Delete responds with the removed transaction's final state.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, ok := requiredUserID(c)
	if !ok {
		return badRequest(c, "userId is required")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	deleted, err := h.service.Delete(id, userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, deleted)
}
