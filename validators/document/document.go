package documentValidator

import (
	"strconv"
	"strings"
	"time"

	"formadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

var documentCategories = map[string]bool{
	"CONVENTION": true,
	"REGLEMENT":  true,
	"CGV":        true,
	"OTHER":      true,
}

// DocumentRequest is the validated payload for document create/update
type DocumentRequest struct {
	Title       string `json:"title"`
	Reference   string `json:"reference"`
	Category    string `json:"category"`
	DocumentURL string `json:"document_url"`
	ValidFrom   string `json:"valid_from"`
	ValidUntil  string `json:"valid_until"`
}

func validateDocumentBody(c *fiber.Ctx) (*DocumentRequest, map[string]string, bool) {
	reqData := new(DocumentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, false
	}

	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Reference = strings.TrimSpace(reqData.Reference)
	reqData.Category = strings.ToUpper(strings.TrimSpace(reqData.Category))
	reqData.DocumentURL = strings.TrimSpace(reqData.DocumentURL)

	if reqData.Title == "" {
		errors["title"] = "Title is required!"
	}

	if reqData.Reference == "" {
		errors["reference"] = "Reference is required!"
	}

	if reqData.Category == "" {
		reqData.Category = "OTHER"
	} else if !documentCategories[reqData.Category] {
		errors["category"] = "Category must be CONVENTION, REGLEMENT, CGV or OTHER!"
	}

	var from, until time.Time
	var err error
	if reqData.ValidFrom != "" {
		if from, err = time.Parse("2006-01-02", reqData.ValidFrom); err != nil {
			errors["valid_from"] = "Valid from must be a date (YYYY-MM-DD)!"
		}
	}
	if reqData.ValidUntil != "" {
		if until, err = time.Parse("2006-01-02", reqData.ValidUntil); err != nil {
			errors["valid_until"] = "Valid until must be a date (YYYY-MM-DD)!"
		}
	}
	if !from.IsZero() && !until.IsZero() && until.Before(from) {
		errors["valid_until"] = "Valid until must be after valid from!"
	}

	return reqData, errors, true
}

// CreateDocument validates legal document creation request
func CreateDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors, ok := validateDocumentBody(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocument", reqData)
		return c.Next()
	}
}

// UpdateDocument validates legal document update request
func UpdateDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Document ID!", nil)
		}

		reqData, errors, ok := validateDocumentBody(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("documentID", id)
		c.Locals("validatedDocument", reqData)
		return c.Next()
	}
}

// DocumentID validates the document id path parameter
func DocumentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Document ID!", nil)
		}

		c.Locals("documentID", id)
		return c.Next()
	}
}
