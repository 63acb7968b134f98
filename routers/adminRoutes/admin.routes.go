package adminRoutes

import (
	accountControllers "formadmin/controllers/account"
	documentControllers "formadmin/controllers/document"
	questionnaireControllers "formadmin/controllers/questionnaire"
	serviceControllers "formadmin/controllers/trainingservice"
	"formadmin/middleware"
	accountValidator "formadmin/validators/account"
	documentValidator "formadmin/validators/document"
	questionnaireValidator "formadmin/validators/questionnaire"
	trainingServiceValidator "formadmin/validators/trainingservice"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up document, service, questionnaire and account routes
func SetupAdminRoutes(app *fiber.App) {
	documentGroup := app.Group("/admin/document", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	documentGroup.Post("/create", documentValidator.CreateDocument(), documentControllers.AdminCreateDocument)
	documentGroup.Put("/:id", documentValidator.UpdateDocument(), documentControllers.AdminUpdateDocument)
	documentGroup.Delete("/:id", documentValidator.DocumentID(), documentControllers.AdminDeleteDocument)
	documentGroup.Get("/list", documentControllers.AdminGetAllDocuments)
	documentGroup.Get("/:id", documentValidator.DocumentID(), documentControllers.AdminGetDocumentDetails)

	serviceGroup := app.Group("/admin/service", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	serviceGroup.Post("/create", trainingServiceValidator.CreateService(), serviceControllers.AdminCreateService)
	serviceGroup.Put("/:id", trainingServiceValidator.UpdateService(), serviceControllers.AdminUpdateService)
	serviceGroup.Delete("/:id", trainingServiceValidator.ServiceID(), serviceControllers.AdminDeleteService)
	serviceGroup.Get("/list", serviceControllers.AdminGetAllServices)
	serviceGroup.Get("/:id", trainingServiceValidator.ServiceID(), serviceControllers.AdminGetServiceDetails)

	questionnaireGroup := app.Group("/admin/questionnaire", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	questionnaireGroup.Post("/create", questionnaireValidator.CreateQuestionnaire(), questionnaireControllers.AdminCreateQuestionnaire)
	questionnaireGroup.Put("/:id", questionnaireValidator.UpdateQuestionnaire(), questionnaireControllers.AdminUpdateQuestionnaire)
	questionnaireGroup.Delete("/:id", questionnaireValidator.QuestionnaireID(), questionnaireControllers.AdminDeleteQuestionnaire)
	questionnaireGroup.Get("/list", questionnaireControllers.AdminGetAllQuestionnaires)
	questionnaireGroup.Get("/:id", questionnaireValidator.QuestionnaireID(), questionnaireControllers.AdminGetQuestionnaireDetails)

	// Question management
	questionnaireGroup.Post("/:id/question", questionnaireValidator.CreateQuestion(), questionnaireControllers.AdminAddQuestion)
	questionnaireGroup.Post("/:id/reorder", questionnaireValidator.ReorderQuestions(), questionnaireControllers.AdminReorderQuestions)

	questionGroup := app.Group("/admin/question", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))
	questionGroup.Put("/:question_id", questionnaireValidator.UpdateQuestion(), questionnaireControllers.AdminUpdateQuestion)
	questionGroup.Delete("/:question_id", questionnaireValidator.QuestionID(), questionnaireControllers.AdminDeleteQuestion)

	// Account management is admin only
	accountGroup := app.Group("/admin/account", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN"))

	accountGroup.Get("/list", accountValidator.ListUsers(), accountControllers.AdminGetAllUsers)
	accountGroup.Get("/:id", accountValidator.UserID(), accountControllers.AdminGetUserDetails)
	accountGroup.Post("/:id/role", accountValidator.AssignRole(), accountControllers.AdminAssignRole)
	accountGroup.Post("/:id/activate", accountValidator.UserID(), accountControllers.AdminActivateUser)
	accountGroup.Post("/:id/deactivate", accountValidator.UserID(), accountControllers.AdminDeactivateUser)
}
