package handlers

import (
	"errors"

	"github.com/SundayYogurt/auth_service/internal/dto"
	"github.com/SundayYogurt/auth_service/internal/helper/utils"
	"github.com/SundayYogurt/auth_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)
	app.Post("/verify", h.Verify)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseFail(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Signup(requestBody); err != nil {
		return failOrServerError(ctx, err, "Error: Email might already exist.")
	}
	return utils.ResponseOK(ctx, "User registered! Please login.")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseFail(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Login(requestBody); err != nil {
		return failOrServerError(ctx, err, "Invalid email or password.")
	}
	return utils.ResponseOK(ctx, "OTP sent to your email!")
}

func (h *AuthHandler) Verify(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseFail(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Verify(requestBody); err != nil {
		return failOrServerError(ctx, err, "Invalid or expired OTP.")
	}
	return utils.ResponseOK(ctx, "Login Success!")
}

// failOrServerError answers expected failures with the generic message at
// HTTP 200 (original API contract) and everything else as a 500.
func failOrServerError(ctx *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidOTP):
		return utils.ResponseFail(ctx, fiber.StatusOK, msg)
	default:
		return utils.ResponseFail(ctx, fiber.StatusInternalServerError, "Server error")
	}
}
