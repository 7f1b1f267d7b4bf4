package database

import (
	"database/sql"
	"log"

	"github.com/huehueadi/assessment-backend/app/models"
)

// SeedAssessments inserts the built-in definitions unless already present.
func SeedAssessments(db *sql.DB) error {
	for _, assessment := range BuiltinAssessments() {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM assessments WHERE id = $1)`, assessment.ID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := InsertAssessment(db, &assessment); err != nil {
			return err
		}
		log.Printf("Seeded assessment %s", assessment.ID)
	}
	return nil
}

// BuiltinAssessments returns the definitions shipped with the service.
func BuiltinAssessments() []models.Assessment {
	personality := models.Assessment{
		ID:   "personality-v1",
		Name: "Personality Inventory v1",
		Dimensions: []models.Dimension{
			{ID: "extraversion", Name: "Extraversion", Description: "Energy drawn from social interaction and external activity."},
			{ID: "conscientiousness", Name: "Conscientiousness", Description: "Organization, dependability and follow-through."},
			{ID: "openness", Name: "Openness", Description: "Curiosity and appetite for new ideas and experiences."},
		},
		Items: []models.Item{
			{ID: "q1", DimensionID: "extraversion", Text: "I feel energized after spending time with a group."},
			{ID: "q2", DimensionID: "extraversion", Text: "I prefer quiet evenings alone over social gatherings.", IsReversed: true},
			{ID: "q3", DimensionID: "extraversion", Text: "I find it easy to start conversations with strangers."},
			{ID: "q4", DimensionID: "conscientiousness", Text: "I finish tasks well before their deadline."},
			{ID: "q5", DimensionID: "conscientiousness", Text: "I often leave my workspace in disarray.", IsReversed: true},
			{ID: "q6", DimensionID: "conscientiousness", Text: "I keep detailed plans and stick to them."},
			{ID: "q7", DimensionID: "openness", Text: "I enjoy exploring unfamiliar ideas and viewpoints."},
			{ID: "q8", DimensionID: "openness", Text: "I stick to routines rather than trying new things.", IsReversed: true},
			{ID: "q9", DimensionID: "openness", Text: "I seek out art, music or writing that challenges me."},
		},
	}
	personality.ApplyItemDefaults()

	return []models.Assessment{personality}
}
