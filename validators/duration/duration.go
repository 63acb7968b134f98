package durationValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"
	"formadmin/services/duration"

	"github.com/gofiber/fiber/v2"
)

// EntityType validates the :entityType path parameter.
// An unrecognized type is a not-found condition, not a validation error.
func EntityType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("entityType"))

		level, ok := duration.ParseLevel(raw)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Entity type not found!", nil)
		}

		c.Locals("entityLevel", level)
		return c.Next()
	}
}

// EntityUpdate validates the :entityType and :entityId path parameters
func EntityUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("entityType"))

		level, ok := duration.ParseLevel(raw)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Entity type not found!", nil)
		}

		idStr := strings.TrimSpace(c.Params("entityId"))
		entityID, err := strconv.Atoi(idStr)
		if err != nil || entityID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid entity ID!", nil)
		}

		c.Locals("entityLevel", level)
		c.Locals("entityID", entityID)
		return c.Next()
	}
}

// SyncAll validates the bulk sync request body. The batch size is clamped by
// the engine, never rejected here.
func SyncAll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EntityType string `json:"entity_type"`
			BatchSize  int    `json:"batch_size"`
		})

		// An empty body means a full sync with default sizing
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		filter, ok := duration.ParseFilter(strings.TrimSpace(reqData.EntityType))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Entity type not found!", nil)
		}

		c.Locals("syncFilter", filter)
		c.Locals("syncBatchSize", reqData.BatchSize)
		return c.Next()
	}
}
