package responses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupResponsesRoutes sets up submission and retrieval routes
func SetupResponsesRoutes(app *fiber.App, db *sql.DB) {
	app.Post("/api/assessments/:id/responses", func(c *fiber.Ctx) error { return SubmitResponseAPI(c, db) })

	api := app.Group("/api/responses")
	api.Get("/:id", func(c *fiber.Ctx) error { return GetResponseAPI(c, db) })

	app.Get("/api/users/:id/responses", func(c *fiber.Ctx) error { return GetUserResponsesAPI(c, db) })
}
