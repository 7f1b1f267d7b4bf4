package database

import "testing"

// The built-in definitions must be internally consistent: every item points
// at a declared dimension, every dimension has at least one item, and scale
// bounds are sane.
func TestBuiltinAssessmentsConsistent(t *testing.T) {
	for _, assessment := range BuiltinAssessments() {
		if assessment.ID == "" || assessment.Name == "" {
			t.Fatalf("assessment missing identity: %+v", assessment)
		}

		dimensions := make(map[string]int)
		for _, d := range assessment.Dimensions {
			dimensions[d.ID] = 0
		}

		for _, item := range assessment.Items {
			if _, ok := dimensions[item.DimensionID]; !ok {
				t.Errorf("%s: item %s references unknown dimension %s", assessment.ID, item.ID, item.DimensionID)
				continue
			}
			dimensions[item.DimensionID]++
			if item.MinValue >= item.MaxValue {
				t.Errorf("%s: item %s has invalid bounds [%v,%v]", assessment.ID, item.ID, item.MinValue, item.MaxValue)
			}
			if item.Weight <= 0 {
				t.Errorf("%s: item %s has non-positive weight %v", assessment.ID, item.ID, item.Weight)
			}
		}

		for id, count := range dimensions {
			if count == 0 {
				t.Errorf("%s: dimension %s has no items", assessment.ID, id)
			}
		}
	}
}

func TestPersonalityV1ReversedItems(t *testing.T) {
	assessments := BuiltinAssessments()
	personality := assessments[0]
	if personality.ID != "personality-v1" {
		t.Fatalf("expected personality-v1 first, got %s", personality.ID)
	}

	reversed := map[string]bool{"q2": true, "q5": true, "q8": true}
	for _, item := range personality.Items {
		if item.IsReversed != reversed[item.ID] {
			t.Errorf("item %s reversed = %v, want %v", item.ID, item.IsReversed, reversed[item.ID])
		}
	}
}
