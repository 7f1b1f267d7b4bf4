package main

import (
	"log"

	"github.com/huehueadi/assessment-backend/app/config"
	"github.com/huehueadi/assessment-backend/app/database"
	"github.com/huehueadi/assessment-backend/app/routes/assessments"
	"github.com/huehueadi/assessment-backend/app/routes/dashboard"
	"github.com/huehueadi/assessment-backend/app/routes/responses"
	"github.com/huehueadi/assessment-backend/app/routes/share"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors: JSON for API requests, a rendered
// page for the public share routes.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Not Found",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error",
		"ErrorTitle":   "An Error Occurred",
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations and seed built-in assessments
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedAssessments(config.GetDB()); err != nil {
		log.Fatal("Failed to seed assessments:", err)
	}

	// Template engine for the public share pages
	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	db := config.GetDB()
	assessments.SetupAssessmentsRoutes(app, db)
	responses.SetupResponsesRoutes(app, db)
	share.SetupShareRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
