package services

import (
	"testing"

	"github.com/huehueadi/assessment-backend/app/models"
)

func usableResponse(id string, normalized ...float64) *models.AssessmentResponse {
	names := []string{"Extraversion", "Conscientiousness", "Openness", "Agreeableness", "Neuroticism"}
	ids := []string{"extraversion", "conscientiousness", "openness", "agreeableness", "neuroticism"}

	scores := &models.ScoreSet{ComputedAt: timeNow()}
	sum := 0.0
	for i, n := range normalized {
		scores.Dimensions = append(scores.Dimensions, models.DimensionScore{
			DimensionID: ids[i],
			Name:        names[i],
			RawScore:    n,
			Normalized:  n,
			Percentile:  Percentile(n),
		})
		sum += n
	}
	if len(normalized) > 0 {
		scores.Overall = round2(sum / float64(len(normalized)))
	}

	return &models.AssessmentResponse{
		ID:           id,
		UserID:       "user-1",
		AssessmentID: "personality-v1",
		Scores:       scores,
		Reliability: &models.ReliabilityResult{
			Rating:    models.RatingGood,
			IsUsable:  true,
			CheckedAt: timeNow(),
		},
	}
}

func TestGenerateSharePayload(t *testing.T) {
	resp := usableResponse("resp-1", 85, 45, 15)

	payload, uerr := GenerateSharePayload(resp, true)
	if uerr != nil {
		t.Fatalf("unexpected unusable error: %+v", uerr)
	}
	if payload.ProfileID == "" || payload.ProfileID == resp.ID {
		t.Errorf("profile ID %q must be derived, not the response ID", payload.ProfileID)
	}
	if len(payload.ProfileID) != anonymizedIDLength {
		t.Errorf("profile ID length = %d, want %d", len(payload.ProfileID), anonymizedIDLength)
	}
	if payload.Disclaimer == "" {
		t.Error("share payload must carry the disclaimer")
	}

	levels := []string{"very_high", "moderate", "very_low"}
	for i, d := range payload.Dimensions {
		if d.Level != levels[i] {
			t.Errorf("dimension %s level = %s, want %s", d.Name, d.Level, levels[i])
		}
		if d.Percentile == nil {
			t.Errorf("dimension %s missing percentile", d.Name)
		}
		if d.Description == "" {
			t.Errorf("dimension %s missing description", d.Name)
		}
	}

	// Deviations from 50: 35, 5, 35 -> mean 25 -> very_defined.
	if payload.ProfileStrength != "very_defined" {
		t.Errorf("profile strength = %s, want very_defined", payload.ProfileStrength)
	}
}

func TestGenerateSharePayloadDeterministicProfileID(t *testing.T) {
	a, _ := GenerateSharePayload(usableResponse("resp-1", 60), true)
	b, _ := GenerateSharePayload(usableResponse("resp-1", 60), true)
	c, _ := GenerateSharePayload(usableResponse("resp-2", 60), true)

	if a.ProfileID != b.ProfileID {
		t.Errorf("same response produced different profile IDs: %s vs %s", a.ProfileID, b.ProfileID)
	}
	if a.ProfileID == c.ProfileID {
		t.Errorf("different responses collided on profile ID %s", a.ProfileID)
	}
}

func TestGenerateSharePayloadWithoutPercentiles(t *testing.T) {
	payload, uerr := GenerateSharePayload(usableResponse("resp-1", 60, 40), false)
	if uerr != nil {
		t.Fatalf("unexpected unusable error: %+v", uerr)
	}
	for _, d := range payload.Dimensions {
		if d.Percentile != nil {
			t.Errorf("dimension %s should omit its percentile", d.Name)
		}
	}
}

func TestGenerateSharePayloadUnusable(t *testing.T) {
	resp := usableResponse("resp-1", 60)
	resp.Reliability.Rating = models.RatingPoor
	resp.Reliability.IsUsable = false

	payload, uerr := GenerateSharePayload(resp, true)
	if payload != nil {
		t.Fatal("unusable response must never yield a profile")
	}
	if uerr == nil || uerr.Error == "" {
		t.Fatal("expected a structured error result")
	}
	if uerr.Rating != models.RatingPoor {
		t.Errorf("error rating = %s, want poor", uerr.Rating)
	}
}

func TestGenerateComparePayloadIdenticalScores(t *testing.T) {
	a := usableResponse("resp-a", 80, 50, 30)
	b := usableResponse("resp-b", 80, 50, 30)

	payload, uerr := GenerateComparePayload(a, b)
	if uerr != nil {
		t.Fatalf("unexpected unusable error: %+v", uerr)
	}
	if payload.OverallSimilarity != 100 {
		t.Errorf("overall similarity = %v, want 100", payload.OverallSimilarity)
	}
	if payload.CompatibilityLevel != "very_high" {
		t.Errorf("compatibility = %s, want very_high", payload.CompatibilityLevel)
	}
	if len(payload.Summary.SimilarAreas) != 3 {
		t.Errorf("similar areas = %v, want all 3 dimensions", payload.Summary.SimilarAreas)
	}
	if len(payload.Summary.DifferentAreas) != 0 {
		t.Errorf("different areas = %v, want none", payload.Summary.DifferentAreas)
	}
}

func TestGenerateComparePayloadDifferences(t *testing.T) {
	a := usableResponse("resp-a", 90, 50, 20)
	b := usableResponse("resp-b", 85, 20, 80)

	payload, uerr := GenerateComparePayload(a, b)
	if uerr != nil {
		t.Fatalf("unexpected unusable error: %+v", uerr)
	}

	// Differences 5, 30, 60 -> similarities 95, 70, 40.
	wantCategories := []string{"very_similar", "somewhat_different", "very_different"}
	for i, c := range payload.Dimensions {
		if c.Category != wantCategories[i] {
			t.Errorf("dimension %s category = %s, want %s", c.Name, c.Category, wantCategories[i])
		}
	}

	// Mean similarity (95+70+40)/3 = 68.33 -> moderate.
	if payload.OverallSimilarity != 68.33 {
		t.Errorf("overall similarity = %v, want 68.33", payload.OverallSimilarity)
	}
	if payload.CompatibilityLevel != "moderate" {
		t.Errorf("compatibility = %s, want moderate", payload.CompatibilityLevel)
	}
	if payload.Summary.StrongestSimilarity != "Extraversion" {
		t.Errorf("strongest similarity = %s, want Extraversion", payload.Summary.StrongestSimilarity)
	}
	if payload.Summary.LargestDifference != "Openness" {
		t.Errorf("largest difference = %s, want Openness", payload.Summary.LargestDifference)
	}
}

func TestGenerateComparePayloadSkipsUnmatchedDimensions(t *testing.T) {
	a := usableResponse("resp-a", 80, 50, 30, 60) // 4 dimensions
	b := usableResponse("resp-b", 80, 50)         // 2 dimensions

	payload, uerr := GenerateComparePayload(a, b)
	if uerr != nil {
		t.Fatalf("unexpected unusable error: %+v", uerr)
	}
	if len(payload.Dimensions) != 2 {
		t.Fatalf("expected 2 matched dimensions, got %d", len(payload.Dimensions))
	}
}

func TestGenerateComparePayloadSymmetricID(t *testing.T) {
	a := usableResponse("resp-a", 80)
	b := usableResponse("resp-b", 70)

	ab, _ := GenerateComparePayload(a, b)
	ba, _ := GenerateComparePayload(b, a)
	if ab.ComparisonID != ba.ComparisonID {
		t.Errorf("comparison ID depends on argument order: %s vs %s", ab.ComparisonID, ba.ComparisonID)
	}
}

func TestGenerateComparePayloadUnusable(t *testing.T) {
	a := usableResponse("resp-a", 80)
	b := usableResponse("resp-b", 70)
	b.Reliability.IsUsable = false

	payload, uerr := GenerateComparePayload(a, b)
	if payload != nil || uerr == nil {
		t.Fatal("comparison with an unusable response must return an error result")
	}
}
