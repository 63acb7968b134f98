package questionnaireValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

var questionKinds = map[string]bool{
	"TEXT":   true,
	"MCQ":    true,
	"RATING": true,
}

func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QuestionnaireRequest is the validated payload for questionnaire create/update
type QuestionnaireRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FormationID *uint  `json:"formation_id"`
	IsActive    *bool  `json:"is_active"`
}

// QuestionRequest is the validated payload for question create/update
type QuestionRequest struct {
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	OrderIndex int    `json:"order_index"`
}

func validateQuestionnaireBody(c *fiber.Ctx) (*QuestionnaireRequest, map[string]string, bool) {
	reqData := new(QuestionnaireRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, false
	}

	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Description = strings.TrimSpace(reqData.Description)

	if reqData.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(reqData.Title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	return reqData, errors, true
}

func validateQuestionBody(c *fiber.Ctx) (*QuestionRequest, map[string]string, bool) {
	reqData := new(QuestionRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, false
	}

	errors := make(map[string]string)

	reqData.Text = strings.TrimSpace(reqData.Text)
	reqData.Kind = strings.ToUpper(strings.TrimSpace(reqData.Kind))

	if reqData.Text == "" {
		errors["text"] = "Question text is required!"
	}

	if reqData.Kind == "" {
		reqData.Kind = "TEXT"
	} else if !questionKinds[reqData.Kind] {
		errors["kind"] = "Kind must be TEXT, MCQ or RATING!"
	}

	if reqData.OrderIndex < 0 {
		errors["order_index"] = "Order index cannot be negative!"
	}

	return reqData, errors, true
}

// CreateQuestionnaire validates questionnaire creation request
func CreateQuestionnaire() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errors, ok := validateQuestionnaireBody(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestionnaire", reqData)
		return c.Next()
	}
}

// UpdateQuestionnaire validates questionnaire update request
func UpdateQuestionnaire() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Questionnaire ID!", nil)
		}

		reqData, errors, bodyOk := validateQuestionnaireBody(c)
		if !bodyOk {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionnaireID", id)
		c.Locals("validatedQuestionnaire", reqData)
		return c.Next()
	}
}

// QuestionnaireID validates the questionnaire id path parameter
func QuestionnaireID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Questionnaire ID!", nil)
		}

		c.Locals("questionnaireID", id)
		return c.Next()
	}
}

// CreateQuestion validates a question creation request for a questionnaire
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Questionnaire ID!", nil)
		}

		reqData, errors, bodyOk := validateQuestionBody(c)
		if !bodyOk {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionnaireID", id)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates a question update request
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "question_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData, errors, bodyOk := validateQuestionBody(c)
		if !bodyOk {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionID", id)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// QuestionID validates the question id path parameter
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "question_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("questionID", id)
		return c.Next()
	}
}

// ReorderQuestions validates a question reorder request
func ReorderQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Questionnaire ID!", nil)
		}

		reqData := new(struct {
			QuestionIDs []uint `json:"question_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.QuestionIDs) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"question_ids": "Question IDs are required!",
			})
		}

		seen := make(map[uint]bool, len(reqData.QuestionIDs))
		for _, qid := range reqData.QuestionIDs {
			if seen[qid] {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"question_ids": "Question IDs must be unique!",
				})
			}
			seen[qid] = true
		}

		c.Locals("questionnaireID", id)
		c.Locals("validatedReorder", reqData.QuestionIDs)
		return c.Next()
	}
}
