package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createAssessmentsTable(db); err != nil {
		return err
	}
	if err := createResponsesTable(db); err != nil {
		return err
	}
	if err := addClientInfoColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAssessmentsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			definition JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create assessments table: %v", err)
		return err
	}
	return nil
}

func createResponsesTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS assessment_responses (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			assessment_id TEXT NOT NULL REFERENCES assessments(id),
			answers JSONB NOT NULL,
			scores JSONB NOT NULL,
			reliability JSONB NOT NULL,
			metadata JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_responses_user ON assessment_responses (user_id);
		CREATE INDEX IF NOT EXISTS idx_responses_assessment ON assessment_responses (assessment_id);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create assessment_responses table: %v", err)
		return err
	}
	return nil
}

func addClientInfoColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'assessment_responses'
				AND column_name = 'client_info'
			) THEN
				ALTER TABLE assessment_responses ADD COLUMN client_info TEXT NOT NULL DEFAULT '';
				RAISE NOTICE 'Added client_info column to assessment_responses';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for client_info column: %v", err)
		return err
	}
	return nil
}
