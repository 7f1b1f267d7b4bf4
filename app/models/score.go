package models

import "time"

// DimensionScore holds one dimension's scores for a single response
type DimensionScore struct {
	DimensionID string  `json:"dimension_id"`
	Name        string  `json:"name"`
	RawScore    float64 `json:"raw_score"`
	Normalized  float64 `json:"normalized_score"`
	Percentile  float64 `json:"percentile"`
}

// ScoreSet is the full scoring result for one response
type ScoreSet struct {
	Dimensions []DimensionScore `json:"dimensions"`
	Overall    float64          `json:"overall_score"`
	ComputedAt time.Time        `json:"computed_at"`
}
