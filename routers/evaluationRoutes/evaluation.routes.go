package evaluationRoutes

import (
	controllers "formadmin/controllers/evaluation"
	"formadmin/middleware"
	validators "formadmin/validators/evaluation"

	"github.com/gofiber/fiber/v2"
)

// SetupEvaluationRoutes sets up work-study evaluation management routes
func SetupEvaluationRoutes(app *fiber.App) {
	evalGroup := app.Group("/admin/evaluation", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF", "TEACHER"))

	evalGroup.Post("/create", validators.CreateEvaluation(), controllers.CreateEvaluation)
	evalGroup.Put("/:id", validators.EvaluationID(), validators.CreateEvaluation(), controllers.UpdateEvaluation)
	evalGroup.Get("/list", controllers.GetAllEvaluations)
	evalGroup.Get("/analytics", controllers.GetEvaluationAnalytics)
	evalGroup.Get("/:id", validators.EvaluationID(), controllers.GetEvaluationDetails)

	// Approve and reject are reserved for staff accounts
	reviewGroup := app.Group("/admin/evaluation", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	reviewGroup.Post("/:id/approve", validators.ReviewEvaluation(), controllers.ApproveEvaluation)
	reviewGroup.Post("/:id/reject", validators.ReviewEvaluation(), controllers.RejectEvaluation)
	reviewGroup.Delete("/:id", validators.EvaluationID(), controllers.DeleteEvaluation)
}
