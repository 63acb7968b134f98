package accountValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

var userRoles = map[string]bool{
	"STUDENT": true,
	"TEACHER": true,
	"STAFF":   true,
	"ADMIN":   true,
}

func parseUserID(c *fiber.Ctx) (int, bool) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// UserID validates the user id path parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseUserID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// AssignRole validates a role assignment request
func AssignRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseUserID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if !userRoles[reqData.Role] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be STUDENT, TEACHER, STAFF or ADMIN!",
			})
		}

		c.Locals("targetUserID", id)
		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}

// ListUsers validates the user list query parameters
func ListUsers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := strings.ToUpper(strings.TrimSpace(c.Query("role")))
		if role != "" && !userRoles[role] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role filter!", nil)
		}

		c.Locals("roleFilter", role)
		return c.Next()
	}
}
