package share

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupShareRoutes sets up share and compare routes
func SetupShareRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/compare", func(c *fiber.Ctx) error { return CompareResponsesAPI(c, db) })
	app.Get("/api/responses/:id/share", func(c *fiber.Ctx) error { return GetSharePayloadAPI(c, db) })

	// Public share page
	app.Get("/share/:id", func(c *fiber.Ctx) error { return GetSharePage(c, db) })
}
