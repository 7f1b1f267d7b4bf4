package responses

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/huehueadi/assessment-backend/app/database"
	"github.com/huehueadi/assessment-backend/app/models"
	"github.com/huehueadi/assessment-backend/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitResponseAPI ingests a submission: validates answers against the
// assessment definition, stamps metadata, runs scoring and reliability once,
// and persists the immutable result. Resubmitting creates a new response.
func SubmitResponseAPI(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		UserID     string          `json:"user_id"`
		Answers    []models.Answer `json:"answers"`
		StartedAt  *time.Time      `json:"started_at,omitempty"`
		TimeSpent  float64         `json:"time_spent,omitempty"` // seconds
		ClientInfo string          `json:"client_info,omitempty"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if request.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	assessment, err := database.GetAssessmentByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assessment not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}

	if err := validateAnswers(assessment, request.Answers); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	completedAt := time.Now()
	metadata := models.SubmissionMetadata{
		StartedAt:   request.StartedAt,
		CompletedAt: completedAt,
		TimeSpent:   request.TimeSpent,
		ClientInfo:  request.ClientInfo,
	}
	if metadata.TimeSpent == 0 && request.StartedAt != nil {
		metadata.TimeSpent = completedAt.Sub(*request.StartedAt).Seconds()
	}

	response := &models.AssessmentResponse{
		ID:           uuid.NewString(),
		UserID:       request.UserID,
		AssessmentID: assessment.ID,
		Answers:      request.Answers,
		Scores:       services.ScoreAssessment(assessment, request.Answers),
		Reliability:  services.CheckReliability(assessment, request.Answers, metadata),
		Metadata:     metadata,
	}

	if err := database.InsertResponse(db, response); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save response"})
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetResponseAPI returns one stored response with its computed results
func GetResponseAPI(c *fiber.Ctx, db *sql.DB) error {
	response, err := database.GetResponseByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Response not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch response"})
	}
	return c.JSON(response)
}

// GetUserResponsesAPI returns all of a user's responses, newest first
func GetUserResponsesAPI(c *fiber.Ctx, db *sql.DB) error {
	responses, err := database.GetResponsesByUser(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch responses"})
	}
	if responses == nil {
		responses = []models.AssessmentResponse{}
	}
	return c.JSON(responses)
}

// validateAnswers enforces the ingestion contract the scoring core relies
// on: every answer names a defined item and any present value lies within
// that item's scale bounds. Nil values (unanswered) pass through.
func validateAnswers(assessment *models.Assessment, answers []models.Answer) error {
	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		item := assessment.ItemByID(a.ItemID)
		if item == nil {
			return fmt.Errorf("answer references unknown item %s", a.ItemID)
		}
		if seen[a.ItemID] {
			return fmt.Errorf("duplicate answer for item %s", a.ItemID)
		}
		seen[a.ItemID] = true
		if a.Value != nil && (*a.Value < item.MinValue || *a.Value > item.MaxValue) {
			return fmt.Errorf("answer for item %s is outside its scale [%v,%v]", a.ItemID, item.MinValue, item.MaxValue)
		}
	}
	return nil
}
