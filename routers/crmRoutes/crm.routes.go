package crmRoutes

import (
	controllers "formadmin/controllers/crm"
	"formadmin/middleware"
	validators "formadmin/validators/crm"

	"github.com/gofiber/fiber/v2"
)

// SetupCrmRoutes sets up contact and prospect management routes
func SetupCrmRoutes(app *fiber.App) {
	contactGroup := app.Group("/admin/contact", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	contactGroup.Post("/create", validators.CreateContact(), controllers.CreateContact)
	contactGroup.Put("/:id", validators.UpdateContact(), controllers.UpdateContact)
	contactGroup.Delete("/:id", validators.ContactID(), controllers.DeleteContact)
	contactGroup.Get("/list", controllers.GetAllContacts)
	contactGroup.Get("/:id", validators.ContactID(), controllers.GetContactDetails)

	prospectGroup := app.Group("/admin/prospect", middleware.JWTMiddleware, middleware.RequireRoleMiddleware("ADMIN", "STAFF"))

	prospectGroup.Post("/create", validators.CreateProspect(), controllers.CreateProspect)
	prospectGroup.Put("/:id", validators.UpdateProspect(), controllers.UpdateProspect)
	prospectGroup.Post("/:id/status", validators.ProspectStatus(), controllers.ChangeProspectStatus)
	prospectGroup.Delete("/:id", validators.ProspectID(), controllers.DeleteProspect)
	prospectGroup.Get("/list", controllers.GetAllProspects)
}
