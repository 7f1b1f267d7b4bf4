package main

import (
	"log"

	"github.com/huehueadi/assessment-backend/app/config"
	"github.com/huehueadi/assessment-backend/app/database"
)

// Applies the schema and seeds built-in assessments without starting the
// server.
func main() {
	log.Println("Starting migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	if err := database.SeedAssessments(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Println("Migration completed successfully!")
}
