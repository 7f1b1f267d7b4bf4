package services

import (
	"fmt"
	"math"

	"github.com/huehueadi/assessment-backend/app/models"
)

// minSecondsPerItem is the fastest average pace treated as a considered
// response.
const minSecondsPerItem = 2.0

// CheckReliability runs the data-quality heuristics against one submission
// and aggregates them into an overall rating. Four checks always run; the
// response-time check runs only when time-spent metadata was captured.
// Degenerate input fails the affected check with score 0 and a message
// rather than erroring, so even garbage submissions produce a storable result.
func CheckReliability(def *models.Assessment, answers []models.Answer, meta models.SubmissionMetadata) *models.ReliabilityResult {
	var values []float64
	for _, a := range answers {
		if a.Value != nil {
			values = append(values, *a.Value)
		}
	}

	checks := []models.ReliabilityCheck{
		checkStraightlining(values),
		checkVariability(values, def.Items),
		checkExtremeResponding(answers, def),
		checkCompletionRate(len(values), len(def.Items)),
	}
	if meta.TimeSpent > 0 {
		checks = append(checks, checkResponseTime(meta.TimeSpent, len(def.Items)))
	}

	passed := 0
	var flags []string
	for _, c := range checks {
		if c.Passed {
			passed++
		} else {
			flags = append(flags, c.Name)
		}
	}

	rating := ratingFor(float64(passed) / float64(len(checks)))
	return &models.ReliabilityResult{
		Checks:    checks,
		Rating:    rating,
		IsUsable:  rating != models.RatingPoor,
		Flags:     flags,
		CheckedAt: timeNow(),
	}
}

// checkStraightlining flags responses where one value dominates the answer
// set, the signature of a respondent clicking the same option throughout.
func checkStraightlining(values []float64) models.ReliabilityCheck {
	check := models.ReliabilityCheck{Name: models.CheckStraightlining}
	if len(values) == 0 {
		check.Message = "no answered items to evaluate"
		return check
	}

	counts := make(map[float64]int)
	mostFrequent := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > mostFrequent {
			mostFrequent = counts[v]
		}
	}

	sharePercent := float64(mostFrequent) / float64(len(values)) * 100
	check.Passed = sharePercent <= 80
	check.Score = round2(math.Max(0, 100-sharePercent))
	if check.Passed {
		check.Message = fmt.Sprintf("most frequent value covers %.1f%% of answers", sharePercent)
	} else {
		check.Message = fmt.Sprintf("%.1f%% of answers share the same value", sharePercent)
	}
	return check
}

// checkVariability measures the sample standard deviation of answered
// values, normalized by the assessment's scale range, as a continuous
// quality score.
func checkVariability(values []float64, items []models.Item) models.ReliabilityCheck {
	check := models.ReliabilityCheck{Name: models.CheckVariability}
	if len(values) < 3 {
		check.Message = "fewer than 3 answered items, variability cannot be assessed"
		return check
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		sumSq += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(sumSq / float64(len(values)-1))

	// Scale range comes from the first item definition; 1-5 when the
	// assessment defines no items.
	scaleRange := models.DefaultMaxValue - models.DefaultMinValue
	if len(items) > 0 && items[0].MaxValue > items[0].MinValue {
		scaleRange = items[0].MaxValue - items[0].MinValue
	}

	normalizedSD := sd / scaleRange
	check.Passed = normalizedSD >= 0.15
	check.Score = round2(math.Min(100, normalizedSD*400))
	if check.Passed {
		check.Message = fmt.Sprintf("answer variability is healthy (normalized SD %.2f)", normalizedSD)
	} else {
		check.Message = fmt.Sprintf("answers vary too little (normalized SD %.2f)", normalizedSD)
	}
	return check
}

// checkExtremeResponding flags responses dominated by scale endpoints, each
// answer judged against its own item's bounds.
func checkExtremeResponding(answers []models.Answer, def *models.Assessment) models.ReliabilityCheck {
	check := models.ReliabilityCheck{Name: models.CheckExtremeResponding}

	total := 0
	extreme := 0
	for _, a := range answers {
		if a.Value == nil {
			continue
		}
		item := def.ItemByID(a.ItemID)
		if item == nil {
			continue
		}
		total++
		if *a.Value == item.MinValue || *a.Value == item.MaxValue {
			extreme++
		}
	}
	if total == 0 {
		check.Message = "no answered items to evaluate"
		return check
	}

	extremePercent := float64(extreme) / float64(total) * 100
	check.Passed = extremePercent <= 70
	check.Score = round2(math.Max(0, 100-extremePercent))
	if check.Passed {
		check.Message = fmt.Sprintf("%.1f%% of answers sit at scale endpoints", extremePercent)
	} else {
		check.Message = fmt.Sprintf("%.1f%% of answers sit at scale endpoints, above the 70%% threshold", extremePercent)
	}
	return check
}

// checkCompletionRate scores the share of items answered; the raw
// percentage is the score.
func checkCompletionRate(answered, totalItems int) models.ReliabilityCheck {
	check := models.ReliabilityCheck{Name: models.CheckCompletionRate}
	if totalItems == 0 {
		check.Message = "assessment defines no items"
		return check
	}

	percent := float64(answered) / float64(totalItems) * 100
	check.Passed = percent >= 80
	check.Score = round2(percent)
	check.Message = fmt.Sprintf("%d of %d items answered (%.1f%%)", answered, totalItems, percent)
	return check
}

// checkResponseTime flags submissions answered faster than a plausible
// reading pace. Only run when time-spent metadata is present.
func checkResponseTime(timeSpent float64, totalItems int) models.ReliabilityCheck {
	check := models.ReliabilityCheck{Name: models.CheckResponseTime}
	if totalItems == 0 {
		check.Message = "assessment defines no items"
		return check
	}

	avgPerItem := timeSpent / float64(totalItems)
	check.Passed = avgPerItem >= minSecondsPerItem
	check.Score = round2(math.Min(100, avgPerItem/minSecondsPerItem*100))
	if check.Passed {
		check.Message = fmt.Sprintf("average %.1fs per item", avgPerItem)
	} else {
		check.Message = fmt.Sprintf("average %.1fs per item suggests rushed answers", avgPerItem)
	}
	return check
}

// ratingFor maps the fraction of passed checks onto the overall tier.
func ratingFor(passRate float64) models.Rating {
	switch {
	case passRate >= 0.9:
		return models.RatingExcellent
	case passRate >= 0.7:
		return models.RatingGood
	case passRate >= 0.5:
		return models.RatingQuestionable
	default:
		return models.RatingPoor
	}
}
