package models

import "time"

// Answer records a respondent's value for one item. A nil Value means the
// item was left unanswered; the scorer and every reliability check treat
// absent and nil uniformly.
type Answer struct {
	ItemID     string     `json:"item_id" validate:"required"`
	Value      *float64   `json:"value,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// SubmissionMetadata captures timing and client details stamped at ingestion
type SubmissionMetadata struct {
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt time.Time  `json:"completed_at"`
	TimeSpent   float64    `json:"time_spent,omitempty"` // seconds
	ClientInfo  string     `json:"client_info,omitempty"`
}

// AssessmentResponse is one submission: the full answer set plus the scores
// and reliability result computed once at submission time. Responses are
// never mutated; a resubmission creates a new one.
type AssessmentResponse struct {
	ID           string             `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	UserID       string             `json:"user_id" gorm:"not null;index" validate:"required"`
	AssessmentID string             `json:"assessment_id" gorm:"not null;index" validate:"required"`
	Answers      []Answer           `json:"answers"`
	Scores       *ScoreSet          `json:"scores,omitempty"`
	Reliability  *ReliabilityResult `json:"reliability,omitempty"`
	Metadata     SubmissionMetadata `json:"metadata"`
	CreatedAt    time.Time          `json:"created_at" gorm:"autoCreateTime"`
}
