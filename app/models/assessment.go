package models

import "time"

// Defaults applied to items that omit their scale bounds or weight.
const (
	DefaultMinValue = 1.0
	DefaultMaxValue = 5.0
	DefaultWeight   = 1.0
)

// Dimension is a named trait axis an assessment measures
type Dimension struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Item is a single question with a bounded answer scale, owned by exactly one dimension
type Item struct {
	ID          string  `json:"id" validate:"required"`
	DimensionID string  `json:"dimension_id" validate:"required"`
	Text        string  `json:"text,omitempty"`
	IsReversed  bool    `json:"is_reversed"`
	Weight      float64 `json:"weight"`
	MinValue    float64 `json:"min_value"`
	MaxValue    float64 `json:"max_value"`
}

// Assessment is an immutable scoring template: an ordered set of dimensions
// and the items that feed them
type Assessment struct {
	ID         string      `json:"id" gorm:"primaryKey" validate:"required"`
	Name       string      `json:"name" validate:"required"`
	Dimensions []Dimension `json:"dimensions"`
	Items      []Item      `json:"items"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

// ApplyItemDefaults fills in weight and scale bounds for items that were
// submitted without them. Called once at ingestion; the scoring core assumes
// bounds are already populated.
func (a *Assessment) ApplyItemDefaults() {
	for i := range a.Items {
		item := &a.Items[i]
		if item.Weight == 0 {
			item.Weight = DefaultWeight
		}
		if item.MinValue == 0 && item.MaxValue == 0 {
			item.MinValue = DefaultMinValue
			item.MaxValue = DefaultMaxValue
		}
	}
}

// ItemByID returns the item with the given identifier, or nil.
func (a *Assessment) ItemByID(id string) *Item {
	for i := range a.Items {
		if a.Items[i].ID == id {
			return &a.Items[i]
		}
	}
	return nil
}
