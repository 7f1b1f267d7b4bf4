package models

import "time"

// Rating defines the overall reliability tiers for a response.
type Rating string

const (
	RatingExcellent    Rating = "excellent"
	RatingGood         Rating = "good"
	RatingQuestionable Rating = "questionable"
	RatingPoor         Rating = "poor"
)

// Reliability check names, in execution order.
const (
	CheckStraightlining    = "straightlining"
	CheckVariability       = "variability"
	CheckExtremeResponding = "extreme_responding"
	CheckCompletionRate    = "completion_rate"
	CheckResponseTime      = "response_time"
)

// ReliabilityCheck is the outcome of one data-quality heuristic
type ReliabilityCheck struct {
	Name    string  `json:"name"`
	Passed  bool    `json:"passed"`
	Score   float64 `json:"score"`
	Message string  `json:"message"`
}

// ReliabilityResult aggregates all checks run against one response. IsUsable
// gates whether the response may be shared or compared externally.
type ReliabilityResult struct {
	Checks    []ReliabilityCheck `json:"checks"`
	Rating    Rating             `json:"overall_rating"`
	IsUsable  bool               `json:"is_usable"`
	Flags     []string           `json:"flags,omitempty"`
	CheckedAt time.Time          `json:"checked_at"`
}
