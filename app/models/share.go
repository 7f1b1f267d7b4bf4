package models

// SharedDimension is one dimension's entry in a share payload. Percentile is
// omitted when the caller asks for a percentile-free view.
type SharedDimension struct {
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Percentile  *float64 `json:"percentile,omitempty"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
}

// SharePayload is the privacy-safe external view of one response. It never
// carries raw answers or the original response identifier.
type SharePayload struct {
	ProfileID       string            `json:"profile_id"`
	OverallScore    float64           `json:"overall_score"`
	Dimensions      []SharedDimension `json:"dimensions"`
	ProfileStrength string            `json:"profile_strength"`
	Disclaimer      string            `json:"disclaimer"`
}

// UnusableError is the structured result returned instead of a payload when
// a response's reliability rating disqualifies it from sharing. It is a
// normal caller-visible outcome, not a server failure.
type UnusableError struct {
	Error  string `json:"error"`
	Rating Rating `json:"rating,omitempty"`
}

// DimensionComparison contrasts one dimension across two responses
type DimensionComparison struct {
	DimensionID    string  `json:"dimension_id"`
	Name           string  `json:"name"`
	Difference     float64 `json:"difference"`
	Similarity     float64 `json:"similarity"`
	Category       string  `json:"category"`
	Interpretation string  `json:"interpretation"`
}

// ComparisonSummary names the stand-out dimensions of a comparison
type ComparisonSummary struct {
	SimilarAreas        []string `json:"similar_areas"`
	DifferentAreas      []string `json:"different_areas"`
	StrongestSimilarity string   `json:"strongest_similarity,omitempty"`
	LargestDifference   string   `json:"largest_difference,omitempty"`
}

// ComparePayload is the privacy-safe pairwise comparison of two responses
type ComparePayload struct {
	ComparisonID       string                `json:"comparison_id"`
	OverallSimilarity  float64               `json:"overall_similarity"`
	CompatibilityLevel string                `json:"compatibility_level"`
	Dimensions         []DimensionComparison `json:"dimensions"`
	Summary            ComparisonSummary     `json:"summary"`
}

// ResponseStats backs the dashboard statistics endpoint
type ResponseStats struct {
	TotalResponses  int            `json:"total_responses"`
	UsableResponses int            `json:"usable_responses"`
	Assessments     int            `json:"assessments"`
	RatingCounts    map[string]int `json:"rating_counts"`
}
