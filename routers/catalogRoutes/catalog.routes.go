package catalogRoutes

import (
	controllers "formadmin/controllers/catalog"
	"formadmin/middleware"
	validators "formadmin/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up all admin catalog management routes
func SetupCatalogRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/formation", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	// Formation CRUD
	adminGroup.Post("/create", validators.CreateFormation(), controllers.AdminCreateFormation)
	adminGroup.Put("/:id", validators.UpdateFormation(), controllers.AdminUpdateFormation)
	adminGroup.Delete("/:id", validators.FormationID(), controllers.AdminDeleteFormation)
	adminGroup.Get("/list", validators.AdminList(), controllers.AdminGetAllFormations)
	adminGroup.Get("/:id", validators.FormationID(), controllers.AdminGetFormationDetails)

	// Module Management
	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Get("/:id/modules", validators.FormationID(), controllers.AdminListModules)

	moduleGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))
	moduleGroup.Put("/:module_id", validators.UpdateModule(), controllers.AdminUpdateModule)
	moduleGroup.Delete("/:module_id", validators.ModuleID(), controllers.AdminDeleteModule)

	// Chapter Management
	moduleGroup.Post("/:module_id/chapter", validators.CreateChapter(), controllers.AdminCreateChapter)
	moduleGroup.Get("/:module_id/chapters", validators.ModuleID(), controllers.AdminListChapters)

	chapterGroup := app.Group("/admin/chapter", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))
	chapterGroup.Put("/:chapter_id", validators.UpdateChapter(), controllers.AdminUpdateChapter)
	chapterGroup.Delete("/:chapter_id", validators.ChapterID(), controllers.AdminDeleteChapter)

	// Course Management
	chapterGroup.Post("/:chapter_id/course", validators.CreateCourse(), controllers.AdminCreateCourse)
	chapterGroup.Get("/:chapter_id/courses", validators.ChapterID(), controllers.AdminListCourses)

	courseGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))
	courseGroup.Put("/:course_id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:course_id", validators.CourseID(), controllers.AdminDeleteCourse)
}
