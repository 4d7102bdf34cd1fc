package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/auth"
	"github.com/fintrackr/backend/internal/config"
	"github.com/fintrackr/backend/internal/dto"
	"github.com/fintrackr/backend/internal/services"
)

type AuthHandler struct {
	users    *services.UserService
	verifier auth.Verifier
	cfg      *config.Config
}

func NewAuthHandler(users *services.UserService, verifier auth.Verifier, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, verifier: verifier, cfg: cfg}
}

// Login handles the phone flow: look up or create the user, then attach a
// session token for the bearer-guarded routes.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.users.Login(req.PhoneNumber)
	if err != nil {
		return respondError(c, err)
	}

	token, err := auth.IssueSessionToken(h.cfg.JWTSecret, resp.UserID, h.cfg.JWTAccessExpiry)
	if err != nil {
		return respondError(c, err)
	}
	resp.AccessToken = token

	return respond(c, fiber.StatusOK, resp)
}

// GoogleLogin verifies the provider ID token, then creates the user on first
// sign-in. Clients keep using the provider token as their bearer credential.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.IDToken == "" {
		return badRequest(c, "idToken is required")
	}

	identity, err := h.verifier.Verify(c.Context(), req.IDToken)
	if err != nil {
		slog.Warn("google token verification failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(
			dto.Error("VALIDATION_ERROR", "Invalid Google ID token", c.Path(), fiber.StatusUnauthorized))
	}

	userID, err := h.users.CreateUserIfNotExists(identity.Subject, identity.Email, identity.Name)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, dto.SSOLoginResponse{
		UserID: userID,
		Email:  identity.Email,
	})
}
