package assessments

import (
	"database/sql"
	"fmt"

	"github.com/huehueadi/assessment-backend/app/database"
	"github.com/huehueadi/assessment-backend/app/models"

	"github.com/gofiber/fiber/v2"
)

// ListAssessmentsAPI returns all stored assessment definitions
func ListAssessmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	assessments, err := database.ListAssessments(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assessments"})
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}
	return c.JSON(assessments)
}

// GetAssessmentAPI returns one assessment definition by ID
func GetAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	assessment, err := database.GetAssessmentByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assessment not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}
	return c.JSON(assessment)
}

// CreateAssessmentAPI stores a new assessment definition. Definitions are
// validated here, at the boundary; the scoring core assumes they are sound.
func CreateAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var assessment models.Assessment
	if err := c.BodyParser(&assessment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	assessment.ApplyItemDefaults()
	if err := validateDefinition(&assessment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	existing, err := database.GetAssessmentByID(db, assessment.ID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check assessment"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Assessment already exists"})
	}

	if err := database.InsertAssessment(db, &assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save assessment"})
	}
	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// validateDefinition rejects malformed definitions before they can reach
// scoring: unknown dimension references and inverted scale bounds.
func validateDefinition(assessment *models.Assessment) error {
	if assessment.ID == "" || assessment.Name == "" {
		return fmt.Errorf("id and name are required")
	}
	if len(assessment.Dimensions) == 0 {
		return fmt.Errorf("at least one dimension is required")
	}

	dimensions := make(map[string]bool, len(assessment.Dimensions))
	for _, d := range assessment.Dimensions {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("every dimension needs an id and a name")
		}
		dimensions[d.ID] = true
	}

	for _, item := range assessment.Items {
		if item.ID == "" {
			return fmt.Errorf("every item needs an id")
		}
		if !dimensions[item.DimensionID] {
			return fmt.Errorf("item %s references unknown dimension %s", item.ID, item.DimensionID)
		}
		if item.MinValue >= item.MaxValue {
			return fmt.Errorf("item %s: min_value must be below max_value", item.ID)
		}
	}
	return nil
}
