package assessments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentsRoutes sets up all assessment-definition routes
func SetupAssessmentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/assessments")
	api.Get("/", func(c *fiber.Ctx) error { return ListAssessmentsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetAssessmentAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAssessmentAPI(c, db) })
}
