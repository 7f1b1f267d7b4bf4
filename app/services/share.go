package services

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/huehueadi/assessment-backend/app/models"
)

const shareDisclaimer = "This profile reflects self-reported answers at a single point in time and is not a clinical evaluation."

// anonymizedIDLength is the display length of derived profile and
// comparison identifiers.
const anonymizedIDLength = 12

// GenerateSharePayload builds the privacy-safe external view of one scored
// response. Responses that failed the reliability gate come back as a
// structured UnusableError instead of a profile; unusable data is never
// shared.
func GenerateSharePayload(resp *models.AssessmentResponse, includePercentiles bool) (*models.SharePayload, *models.UnusableError) {
	if resp.Reliability == nil || !resp.Reliability.IsUsable {
		rating := models.RatingPoor
		if resp.Reliability != nil {
			rating = resp.Reliability.Rating
		}
		return nil, &models.UnusableError{
			Error:  "response did not meet the reliability threshold required for sharing",
			Rating: rating,
		}
	}

	dimensions := make([]models.SharedDimension, 0, len(resp.Scores.Dimensions))
	for _, ds := range resp.Scores.Dimensions {
		level := scoreLevel(ds.Normalized)
		shared := models.SharedDimension{
			Name:        ds.Name,
			Score:       ds.Normalized,
			Level:       level,
			Description: levelDescription(ds.Name, level),
		}
		if includePercentiles {
			p := ds.Percentile
			shared.Percentile = &p
		}
		dimensions = append(dimensions, shared)
	}

	return &models.SharePayload{
		ProfileID:       anonymize(resp.ID),
		OverallScore:    resp.Scores.Overall,
		Dimensions:      dimensions,
		ProfileStrength: profileStrength(resp.Scores.Dimensions),
		Disclaimer:      shareDisclaimer,
	}, nil
}

// GenerateComparePayload contrasts two scored responses dimension by
// dimension. Both must be usable; dimensions present in only one response
// are silently skipped.
func GenerateComparePayload(a, b *models.AssessmentResponse) (*models.ComparePayload, *models.UnusableError) {
	if a.Reliability == nil || !a.Reliability.IsUsable {
		return nil, &models.UnusableError{Error: "first response is not usable for comparison"}
	}
	if b.Reliability == nil || !b.Reliability.IsUsable {
		return nil, &models.UnusableError{Error: "second response is not usable for comparison"}
	}

	scoresB := make(map[string]models.DimensionScore, len(b.Scores.Dimensions))
	for _, ds := range b.Scores.Dimensions {
		scoresB[ds.DimensionID] = ds
	}

	var comparisons []models.DimensionComparison
	similaritySum := 0.0
	for _, dsA := range a.Scores.Dimensions {
		dsB, ok := scoresB[dsA.DimensionID]
		if !ok {
			continue
		}
		difference := round2(absFloat(dsA.Normalized - dsB.Normalized))
		similarity := round2(100 - difference)
		comparisons = append(comparisons, models.DimensionComparison{
			DimensionID:    dsA.DimensionID,
			Name:           dsA.Name,
			Difference:     difference,
			Similarity:     similarity,
			Category:       similarityCategory(similarity),
			Interpretation: differenceInterpretation(dsA.Name, difference),
		})
		similaritySum += similarity
	}

	overall := 0.0
	if len(comparisons) > 0 {
		overall = round2(similaritySum / float64(len(comparisons)))
	}

	return &models.ComparePayload{
		ComparisonID:       comparisonID(a.ID, b.ID),
		OverallSimilarity:  overall,
		CompatibilityLevel: compatibilityLevel(overall),
		Dimensions:         comparisons,
		Summary:            summarize(comparisons),
	}, nil
}

// summarize splits matched dimensions into similar/different name lists and
// picks the single strongest similarity and largest difference. Ties keep
// the first-encountered dimension.
func summarize(comparisons []models.DimensionComparison) models.ComparisonSummary {
	summary := models.ComparisonSummary{
		SimilarAreas:   []string{},
		DifferentAreas: []string{},
	}

	bestSimilarity, bestDifference := -1.0, -1.0
	for _, c := range comparisons {
		if c.Similarity >= 75 {
			summary.SimilarAreas = append(summary.SimilarAreas, c.Name)
		} else {
			summary.DifferentAreas = append(summary.DifferentAreas, c.Name)
		}
		if c.Similarity > bestSimilarity {
			bestSimilarity = c.Similarity
			summary.StrongestSimilarity = c.Name
		}
		if c.Difference > bestDifference {
			bestDifference = c.Difference
			summary.LargestDifference = c.Name
		}
	}
	return summary
}

// anonymize derives a stable, one-way display identifier from an internal
// one. sha256 keeps it non-reversible; the truncated base64url form is short
// enough for links.
func anonymize(id string) string {
	sum := sha256.Sum256([]byte(id))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:anonymizedIDLength]
}

// comparisonID is order-independent: the pair is sorted before hashing so
// compare(A,B) and compare(B,A) share an identifier.
func comparisonID(idA, idB string) string {
	ids := []string{idA, idB}
	sort.Strings(ids)
	return anonymize(ids[0] + ":" + ids[1])
}

func scoreLevel(score float64) string {
	switch {
	case score >= 80:
		return "very_high"
	case score >= 60:
		return "high"
	case score >= 40:
		return "moderate"
	case score >= 20:
		return "low"
	default:
		return "very_low"
	}
}

func levelDescription(name, level string) string {
	switch level {
	case "very_high":
		return fmt.Sprintf("Scores well above the typical range on %s.", name)
	case "high":
		return fmt.Sprintf("Scores above the typical range on %s.", name)
	case "moderate":
		return fmt.Sprintf("Scores within the typical range on %s.", name)
	case "low":
		return fmt.Sprintf("Scores below the typical range on %s.", name)
	default:
		return fmt.Sprintf("Scores well below the typical range on %s.", name)
	}
}

// profileStrength labels how far the profile deviates from the midpoint on
// average; flat profiles read as balanced, polarized ones as defined.
func profileStrength(dimensions []models.DimensionScore) string {
	if len(dimensions) == 0 {
		return "balanced"
	}
	deviation := 0.0
	for _, ds := range dimensions {
		deviation += absFloat(ds.Normalized - 50)
	}
	deviation /= float64(len(dimensions))

	switch {
	case deviation >= 25:
		return "very_defined"
	case deviation >= 15:
		return "defined"
	case deviation >= 10:
		return "moderate"
	default:
		return "balanced"
	}
}

func similarityCategory(similarity float64) string {
	switch {
	case similarity >= 90:
		return "very_similar"
	case similarity >= 75:
		return "similar"
	case similarity >= 50:
		return "somewhat_different"
	default:
		return "very_different"
	}
}

func differenceInterpretation(name string, difference float64) string {
	switch {
	case difference < 10:
		return fmt.Sprintf("Very similar levels of %s.", name)
	case difference < 25:
		return fmt.Sprintf("Slight difference in %s.", name)
	case difference < 40:
		return fmt.Sprintf("Moderate difference in %s.", name)
	default:
		return fmt.Sprintf("Significant difference in %s.", name)
	}
}

func compatibilityLevel(overall float64) string {
	switch {
	case overall >= 85:
		return "very_high"
	case overall >= 70:
		return "high"
	case overall >= 50:
		return "moderate"
	case overall >= 30:
		return "low"
	default:
		return "very_low"
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
