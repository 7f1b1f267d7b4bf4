package dashboard

import (
	"database/sql"

	"github.com/huehueadi/assessment-backend/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI returns aggregate response statistics as JSON
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetResponseStats(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}
	return c.JSON(stats)
}
