package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/aniq93/Customer-Support-Agent/pkg/util"
)

func parseID(c *fiber.Ctx, param string) (int64, error) {
	raw := c.Params(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{param: raw})
	}
	return id, nil
}

// parsePagination reads skip/limit query params, falling back to the
// documented defaults skip=0 limit=100.
func parsePagination(c *fiber.Ctx) (skip, limit int) {
	skip = parseQueryInt(c.Query("skip"), 0)
	limit = parseQueryInt(c.Query("limit"), 100)
	return skip, limit
}

func parseQueryInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
