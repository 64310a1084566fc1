package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/petrescue/backend/internal/http/dto"
	"github.com/petrescue/backend/internal/middleware"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/services"
)

// actorFrom rebuilds the acting user from the JWT claims stashed by the auth
// middleware. Enough for ownership checks and audit labels without a lookup.
func actorFrom(c *fiber.Ctx) *models.User {
	return &models.User{
		ID:       middleware.GetUserID(c),
		Username: middleware.GetUsername(c),
		IsAdmin:  middleware.IsAdmin(c),
	}
}

// svcError maps service error kinds to HTTP statuses: validation 400,
// permission 403, not found 404, everything else 500.
func svcError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPermission):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}

func queryInt(c *fiber.Ctx, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
