package crmValidator

import (
	"strconv"
	"strings"
	"time"

	"formadmin/middleware"
	"formadmin/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContactRequest is the payload for contact create/update
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,min=6,max=20"`
	Company   string `json:"company" validate:"max=150"`
	Position  string `json:"position" validate:"max=150"`
	Notes     string `json:"notes"`
}

// ProspectRequest is the payload for prospect create/update
type ProspectRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=2,max=100"`
	LastName   string `json:"last_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=6,max=20"`
	Company    string `json:"company" validate:"max=150"`
	Source     string `json:"source" validate:"omitempty,oneof=WEB PHONE SALON REFERRAL"`
	AssignedTo uint   `json:"assigned_to"`
	FollowUpAt string `json:"follow_up_at" validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Failed validation: " + fe.Tag()
		}
	} else {
		errors["body"] = "Invalid request data!"
	}
	return errors
}

// CreateContact validates contact creation request
func CreateContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// UpdateContact validates contact update request
func UpdateContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contactID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Contact ID!", nil)
		}

		reqData := new(ContactRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("contactID", contactID)
		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// ContactID validates the contact id path parameter
func ContactID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contactID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Contact ID!", nil)
		}

		c.Locals("contactID", contactID)
		return c.Next()
	}
}

// CreateProspect validates prospect creation request
func CreateProspect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProspectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedProspect", reqData)
		return c.Next()
	}
}

// UpdateProspect validates prospect update request
func UpdateProspect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		prospectID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Prospect ID!", nil)
		}

		reqData := new(ProspectRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("prospectID", prospectID)
		c.Locals("validatedProspect", reqData)
		return c.Next()
	}
}

// ProspectStatus validates a prospect status transition request
func ProspectStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		prospectID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Prospect ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
			Note   string `json:"note"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(strings.ToUpper(reqData.Status))
		validStatuses := map[string]bool{
			models.ProspectNew:       true,
			models.ProspectContacted: true,
			models.ProspectQualified: true,
			models.ProspectConverted: true,
			models.ProspectLost:      true,
		}
		if !validStatuses[reqData.Status] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be NEW, CONTACTED, QUALIFIED, CONVERTED or LOST!",
			})
		}

		c.Locals("prospectID", prospectID)
		c.Locals("validatedProspectStatus", reqData)
		return c.Next()
	}
}

// ProspectID validates the prospect id path parameter
func ProspectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		prospectID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Prospect ID!", nil)
		}

		c.Locals("prospectID", prospectID)
		return c.Next()
	}
}

// ParseFollowUpDate parses a validated follow-up date string
func ParseFollowUpDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
