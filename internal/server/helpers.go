package server

import (
	"strconv"
	"strings"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseIDParam parses a numeric route parameter into a uint.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + humanizeParam(name))
	}
	return uint(id), nil
}

// humanizeParam turns a route param name like "comment_id" into "comment id".
func humanizeParam(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// respondError writes an AppError with its mapped HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
