package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huehueadi/assessment-backend/app/models"
)

// InsertAssessment stores a new assessment definition
func InsertAssessment(db *sql.DB, assessment *models.Assessment) error {
	definition, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to encode assessment definition: %v", err)
	}

	query := `INSERT INTO assessments (id, name, definition) VALUES ($1, $2, $3)`
	if _, err := db.Exec(query, assessment.ID, assessment.Name, definition); err != nil {
		return fmt.Errorf("failed to insert assessment: %v", err)
	}
	return nil
}

// GetAssessmentByID loads one assessment definition
func GetAssessmentByID(db *sql.DB, id string) (*models.Assessment, error) {
	var definition []byte
	query := `SELECT definition FROM assessments WHERE id = $1`

	if err := db.QueryRow(query, id).Scan(&definition); err != nil {
		return nil, err
	}

	assessment := &models.Assessment{}
	if err := json.Unmarshal(definition, assessment); err != nil {
		return nil, fmt.Errorf("failed to decode assessment %s: %v", id, err)
	}
	return assessment, nil
}

// ListAssessments returns all stored assessment definitions
func ListAssessments(db *sql.DB) ([]models.Assessment, error) {
	query := `SELECT definition FROM assessments ORDER BY created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %v", err)
	}
	defer rows.Close()

	var assessments []models.Assessment
	for rows.Next() {
		var definition []byte
		if err := rows.Scan(&definition); err != nil {
			return nil, err
		}
		var assessment models.Assessment
		if err := json.Unmarshal(definition, &assessment); err != nil {
			return nil, fmt.Errorf("failed to decode assessment: %v", err)
		}
		assessments = append(assessments, assessment)
	}
	return assessments, rows.Err()
}

// InsertResponse stores a scored response. Responses are immutable once
// written; there is no corresponding update.
func InsertResponse(db *sql.DB, response *models.AssessmentResponse) error {
	answers, err := json.Marshal(response.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %v", err)
	}
	scores, err := json.Marshal(response.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %v", err)
	}
	reliability, err := json.Marshal(response.Reliability)
	if err != nil {
		return fmt.Errorf("failed to encode reliability: %v", err)
	}
	metadata, err := json.Marshal(response.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %v", err)
	}

	query := `INSERT INTO assessment_responses (id, user_id, assessment_id, answers, scores, reliability, metadata, client_info)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = db.Exec(query, response.ID, response.UserID, response.AssessmentID,
		answers, scores, reliability, metadata, response.Metadata.ClientInfo)
	if err != nil {
		return fmt.Errorf("failed to insert response: %v", err)
	}
	return nil
}

// GetResponseByID loads one stored response with its computed results
func GetResponseByID(db *sql.DB, id string) (*models.AssessmentResponse, error) {
	response := &models.AssessmentResponse{}
	var answers, scores, reliability, metadata []byte

	query := `SELECT id, user_id, assessment_id, answers, scores, reliability, metadata, created_at
			  FROM assessment_responses WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&response.ID, &response.UserID, &response.AssessmentID,
		&answers, &scores, &reliability, &metadata, &response.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeResponseColumns(response, answers, scores, reliability, metadata); err != nil {
		return nil, err
	}
	return response, nil
}

// GetResponsesByUser returns a user's responses, newest first
func GetResponsesByUser(db *sql.DB, userID string) ([]models.AssessmentResponse, error) {
	query := `SELECT id, user_id, assessment_id, answers, scores, reliability, metadata, created_at
			  FROM assessment_responses WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch responses: %v", err)
	}
	defer rows.Close()

	var responses []models.AssessmentResponse
	for rows.Next() {
		var response models.AssessmentResponse
		var answers, scores, reliability, metadata []byte
		if err := rows.Scan(&response.ID, &response.UserID, &response.AssessmentID,
			&answers, &scores, &reliability, &metadata, &response.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeResponseColumns(&response, answers, scores, reliability, metadata); err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, rows.Err()
}

// GetResponseStats aggregates counts for the dashboard
func GetResponseStats(db *sql.DB) (*models.ResponseStats, error) {
	stats := &models.ResponseStats{RatingCounts: make(map[string]int)}

	err := db.QueryRow(`SELECT COUNT(*) FROM assessments`).Scan(&stats.Assessments)
	if err != nil {
		return nil, fmt.Errorf("failed to count assessments: %v", err)
	}

	query := `SELECT COUNT(*),
			  COUNT(*) FILTER (WHERE (reliability->>'is_usable')::boolean)
			  FROM assessment_responses`
	if err := db.QueryRow(query).Scan(&stats.TotalResponses, &stats.UsableResponses); err != nil {
		return nil, fmt.Errorf("failed to count responses: %v", err)
	}

	rows, err := db.Query(`SELECT reliability->>'overall_rating', COUNT(*)
						   FROM assessment_responses GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rating breakdown: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating string
		var count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		stats.RatingCounts[rating] = count
	}
	return stats, rows.Err()
}

func decodeResponseColumns(response *models.AssessmentResponse, answers, scores, reliability, metadata []byte) error {
	if err := json.Unmarshal(answers, &response.Answers); err != nil {
		return fmt.Errorf("failed to decode answers for %s: %v", response.ID, err)
	}
	if err := json.Unmarshal(scores, &response.Scores); err != nil {
		return fmt.Errorf("failed to decode scores for %s: %v", response.ID, err)
	}
	if err := json.Unmarshal(reliability, &response.Reliability); err != nil {
		return fmt.Errorf("failed to decode reliability for %s: %v", response.ID, err)
	}
	if err := json.Unmarshal(metadata, &response.Metadata); err != nil {
		return fmt.Errorf("failed to decode metadata for %s: %v", response.ID, err)
	}
	return nil
}
