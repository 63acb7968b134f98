package evaluationValidator

import (
	"strconv"
	"strings"

	"formadmin/middleware"
	evaluationModels "formadmin/models/evaluation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EvaluationRequest is the payload for filing or editing an evaluation
type EvaluationRequest struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	TutorID     uint   `json:"tutor_id" validate:"required"`
	FormationID uint   `json:"formation_id" validate:"required"`
	Kind        string `json:"kind" validate:"omitempty,oneof=PROGRESS SKILLS"`
	PeriodStart string `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" validate:"required,datetime=2006-01-02"`
	Score       int    `json:"score" validate:"min=0"`
	MaxScore    int    `json:"max_score" validate:"min=1"`
	Comments    string `json:"comments"`
}

// CreateEvaluation validates a new evaluation submission
func CreateEvaluation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EvaluationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Kind == "" {
			reqData.Kind = evaluationModels.KindProgress
		}
		if reqData.MaxScore == 0 {
			reqData.MaxScore = 100
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[strings.ToLower(fe.Field())] = "Failed validation: " + fe.Tag()
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Score > reqData.MaxScore {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"score": "Score cannot exceed the maximum score!",
			})
		}

		c.Locals("validatedEvaluation", reqData)
		return c.Next()
	}
}

// EvaluationID validates the evaluation id path parameter
func EvaluationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Evaluation ID!", nil)
		}

		c.Locals("evaluationID", id)
		return c.Next()
	}
}

// ReviewEvaluation validates an approve/reject request
func ReviewEvaluation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Evaluation ID!", nil)
		}

		reqData := new(struct {
			Note string `json:"note"`
		})
		// Body is optional for reviews
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("evaluationID", id)
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
