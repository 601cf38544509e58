package models

import "strings"

// OfferedActivity is an add-on a tour offers, with the price increment frozen
// at the time the activity was attached to the tour.
type OfferedActivity struct {
	ActivityTypeID string `json:"activityTypeId"`
	NameSnapshot   string `json:"nameSnapshot"`
	PriceIncrement int64  `json:"priceIncrement"`
}

// Tour is the read-mostly catalog entity. Titles and descriptions carry the
// three site locales directly; BasePrice is in whole currency units.
type Tour struct {
	ID         int64             `json:"id"`
	TitleEN    string            `json:"titleEn"`
	TitleRU    string            `json:"titleRu"`
	TitleKA    string            `json:"titleKa"`
	DescEN     string            `json:"descriptionEn"`
	DescRU     string            `json:"descriptionRu"`
	DescKA     string            `json:"descriptionKa"`
	BasePrice  int64             `json:"basePrice"`
	Duration   string            `json:"duration"`
	Images     []string          `json:"images"`
	Activities []OfferedActivity `json:"offeredActivities"`
	Published  bool              `json:"published"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

// TitleFor returns the localized title with english fallback.
func (t Tour) TitleFor(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "ru":
		if t.TitleRU != "" {
			return t.TitleRU
		}
	case "ka":
		if t.TitleKA != "" {
			return t.TitleKA
		}
	}
	return t.TitleEN
}

// HasActivity reports whether the tour offers the given activity type.
func (t Tour) HasActivity(activityTypeID string) bool {
	for _, a := range t.Activities {
		if a.ActivityTypeID == activityTypeID {
			return true
		}
	}
	return false
}
