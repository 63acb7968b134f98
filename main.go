package main

import (
	"formadmin/config"
	"formadmin/database"
	adminRoutes "formadmin/routers/adminRoutes"
	catalogRoutes "formadmin/routers/catalogRoutes"
	crmRoutes "formadmin/routers/crmRoutes"
	durationRoutes "formadmin/routers/durationRoutes"
	evaluationRoutes "formadmin/routers/evaluationRoutes"
	"formadmin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	catalogRoutes.SetupCatalogRoutes(app)
	durationRoutes.SetupDurationRoutes(app)
	crmRoutes.SetupCrmRoutes(app)
	evaluationRoutes.SetupEvaluationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly duration consistency scan
	utils.InitializeDurationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
