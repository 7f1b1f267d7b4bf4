package share

import (
	"database/sql"

	"github.com/huehueadi/assessment-backend/app/database"
	"github.com/huehueadi/assessment-backend/app/models"
	"github.com/huehueadi/assessment-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetSharePayloadAPI returns the privacy-safe share view of one response.
// Unusable responses come back as 422 with the structured error body rather
// than a server error.
func GetSharePayloadAPI(c *fiber.Ctx, db *sql.DB) error {
	response, err := loadResponse(c, db, c.Params("id"))
	if response == nil {
		return err
	}

	includePercentiles := c.Query("percentiles") != "false"
	payload, uerr := services.GenerateSharePayload(response, includePercentiles)
	if uerr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(uerr)
	}
	return c.JSON(payload)
}

// CompareResponsesAPI contrasts two responses given as ?a=&b= query params
func CompareResponsesAPI(c *fiber.Ctx, db *sql.DB) error {
	idA, idB := c.Query("a"), c.Query("b")
	if idA == "" || idB == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a and b query parameters are required"})
	}

	responseA, err := loadResponse(c, db, idA)
	if responseA == nil {
		return err
	}
	responseB, err := loadResponse(c, db, idB)
	if responseB == nil {
		return err
	}

	payload, uerr := services.GenerateComparePayload(responseA, responseB)
	if uerr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(uerr)
	}
	return c.JSON(payload)
}

// GetSharePage renders the public HTML share card for one response
func GetSharePage(c *fiber.Ctx, db *sql.DB) error {
	response, err := database.GetResponseByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Profile not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	payload, uerr := services.GenerateSharePayload(response, true)
	if uerr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).Render("error", fiber.Map{
			"Title":        "Profile Unavailable",
			"ErrorTitle":   "Profile Unavailable",
			"ErrorMessage": "This profile did not meet the data-quality bar for sharing.",
		})
	}

	return c.Render("share", fiber.Map{
		"Title":   "Personality Profile",
		"Profile": payload,
	})
}

// loadResponse fetches a response or writes the error reply itself,
// returning nil to signal the handler should stop.
func loadResponse(c *fiber.Ctx, db *sql.DB, id string) (*models.AssessmentResponse, error) {
	response, err := database.GetResponseByID(db, id)
	if err == sql.ErrNoRows {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Response not found"})
	}
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch response"})
	}
	return response, nil
}
