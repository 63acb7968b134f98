package trainingServiceValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// ServiceRequest is the validated payload for service create/update
type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	IsActive    *bool  `json:"is_active"`
}

func validateServiceBody(c *fiber.Ctx) (*ServiceRequest, map[string]string, bool) {
	reqData := new(ServiceRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, false
	}

	errors := make(map[string]string)

	reqData.Name = strings.TrimSpace(reqData.Name)
	reqData.Description = strings.TrimSpace(reqData.Description)

	if reqData.Name == "" {
		errors["name"] = "Name is required!"
	} else if len(reqData.Name) < 3 {
		errors["name"] = "Name must be at least 3 characters long!"
	}

	if reqData.PriceCents < 0 {
		errors["price_cents"] = "Price cannot be negative!"
	}

	return reqData, errors, true
}

// CreateService validates training service creation request
func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors, ok := validateServiceBody(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedService", reqData)
		return c.Next()
	}
}

// UpdateService validates training service update request
func UpdateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Service ID!", nil)
		}

		reqData, errors, ok := validateServiceBody(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("serviceID", id)
		c.Locals("validatedService", reqData)
		return c.Next()
	}
}

// ServiceID validates the service id path parameter
func ServiceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Service ID!", nil)
		}

		c.Locals("serviceID", id)
		return c.Next()
	}
}
