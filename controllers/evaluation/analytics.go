package controllers

import (
	"formadmin/database"
	"formadmin/middleware"
	evaluationModels "formadmin/models/evaluation"
	evaluationService "formadmin/services/evaluation"

	"github.com/gofiber/fiber/v2"
)

// GetEvaluationAnalytics returns per-formation evaluation counts and average scores.
func GetEvaluationAnalytics(c *fiber.Ctx) error {
	query := database.Database.Db.Where("is_deleted = ?", false)

	if formationID := c.Query("formation_id"); formationID != "" {
		query = query.Where("formation_id = ?", formationID)
	}

	var evals []evaluationModels.Evaluation
	if err := query.Find(&evals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load evaluations!", nil)
	}

	analytics := evaluationService.Aggregate(evals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation analytics!", fiber.Map{
		"formations": analytics,
	})
}
