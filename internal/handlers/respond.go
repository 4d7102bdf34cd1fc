package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/apperrors"
	"github.com/fintrackr/backend/internal/dto"
)

func respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.Success(data, status))
}

// respondError translates a domain error into the envelope. Anything that is
// not an AppError is logged in full and reported generically.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= fiber.StatusInternalServerError {
			slog.Error("request failed",
				"method", c.Method(), "path", c.Path(),
				"code", appErr.Code, "error", err.Error())
		}
		if len(appErr.Details) > 0 {
			return c.Status(appErr.Status).JSON(
				dto.ErrorWithDetails(appErr.Code, appErr.Message, c.Path(), appErr.Status, appErr.Details))
		}
		return c.Status(appErr.Status).JSON(
			dto.Error(appErr.Code, appErr.Message, c.Path(), appErr.Status))
	}

	slog.Error("unexpected error",
		"method", c.Method(), "path", c.Path(), "error", err.Error())
	fallback := apperrors.Internal(err)
	return c.Status(fallback.Status).JSON(
		dto.Error(fallback.Code, fallback.Message, c.Path(), fallback.Status))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(
		dto.Error("VALIDATION_ERROR", message, c.Path(), fiber.StatusBadRequest))
}

// requiredUserID reads the userId query parameter shared by every
// resource endpoint.
func requiredUserID(c *fiber.Ctx) (string, bool) {
	userID := c.Query("userId")
	return userID, userID != ""
}

func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	size := c.QueryInt("size", 10)
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
