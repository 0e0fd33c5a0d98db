package utils

import (
	"github.com/SundayYogurt/auth_service/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func ResponseOK(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Success: true,
		Message: msg,
	})
}

// ResponseFail reports a logical failure. Kept at the given status (the
// original API answers 200 for bad credentials / bad codes).
func ResponseFail(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(dto.AuthResponse{
		Success: false,
		Message: msg,
	})
}
