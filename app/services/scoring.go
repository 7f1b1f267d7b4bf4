package services

import (
	"math"
	"time"

	"github.com/huehueadi/assessment-backend/app/models"
)

// timeNow stamps computed-at times; overridden in tests.
var timeNow = time.Now

// ScoreAssessment groups answers by dimension, applies reverse scoring and
// weighting, and produces per-dimension and overall scores. It never fails:
// degenerate input (no dimensions, no items, nothing answered) yields zero
// scores rather than an error.
func ScoreAssessment(def *models.Assessment, answers []models.Answer) *models.ScoreSet {
	byItem := answerValues(answers)

	dimensions := make([]models.DimensionScore, 0, len(def.Dimensions))
	for _, dim := range def.Dimensions {
		dimensions = append(dimensions, scoreDimension(def, dim, byItem))
	}

	overall := 0.0
	if len(dimensions) > 0 {
		sum := 0.0
		for _, ds := range dimensions {
			sum += ds.Normalized
		}
		overall = round2(sum / float64(len(dimensions)))
	}

	return &models.ScoreSet{
		Dimensions: dimensions,
		Overall:    overall,
		ComputedAt: timeNow(),
	}
}

// scoreDimension scores one dimension. A dimension with no items, or none of
// them answered, is score-less by definition and comes back all zeros.
func scoreDimension(def *models.Assessment, dim models.Dimension, byItem map[string]float64) models.DimensionScore {
	score := models.DimensionScore{DimensionID: dim.ID, Name: dim.Name}

	var items []models.Item
	for _, item := range def.Items {
		if item.DimensionID == dim.ID {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return score
	}

	raw := 0.0
	answered := 0
	for _, item := range items {
		value, ok := byItem[item.ID]
		if !ok {
			continue
		}
		if item.IsReversed {
			value = Reverse(value, item.MinValue, item.MaxValue)
		}
		raw += value * item.Weight
		answered++
	}
	if answered == 0 {
		return score
	}

	// The possible range spans every item in the dimension, answered or not,
	// so partial completion drags the normalized score down instead of
	// rescaling against only the answered items. The completion-rate
	// reliability check exists because of this coupling.
	minPossible, maxPossible := 0.0, 0.0
	for _, item := range items {
		minPossible += item.MinValue * item.Weight
		maxPossible += item.MaxValue * item.Weight
	}

	normalized := Normalize(raw, minPossible, maxPossible)
	score.RawScore = round2(raw)
	score.Normalized = round2(normalized)
	score.Percentile = math.Round(Percentile(normalized))
	return score
}

// answerValues indexes answered values by item ID, skipping unanswered ones.
func answerValues(answers []models.Answer) map[string]float64 {
	values := make(map[string]float64, len(answers))
	for _, a := range answers {
		if a.Value != nil {
			values[a.ItemID] = *a.Value
		}
	}
	return values
}
