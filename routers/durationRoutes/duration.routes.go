package durationRoutes

import (
	controllers "formadmin/controllers/duration"
	"formadmin/middleware"
	validators "formadmin/validators/duration"

	"github.com/gofiber/fiber/v2"
)

// SetupDurationRoutes sets up the duration engine admin routes
func SetupDurationRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/duration")

	adminGroup.Get("/", middleware.JWTMiddleware, controllers.AdminDurationHome)
	adminGroup.Get("/statistics", middleware.JWTMiddleware, controllers.AdminDurationStatistics)
	adminGroup.Get("/analyze/:entityType", middleware.JWTMiddleware, validators.EntityType(), controllers.AdminDurationAnalyze)
	adminGroup.Post("/update/:entityType/:entityId", middleware.JWTMiddleware, validators.EntityUpdate(), controllers.AdminDurationUpdate)
	adminGroup.Post("/sync-all", middleware.JWTMiddleware, validators.SyncAll(), controllers.AdminDurationSyncAll)
	adminGroup.Post("/clear-cache", middleware.JWTMiddleware, controllers.AdminDurationClearCache)
}
