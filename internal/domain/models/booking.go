package models

import "time"

// TravelerCounts holds the party composition for a booking.
// Infants never contribute to price.
type TravelerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total counts everyone on board, infants included (vehicle capacity).
func (t TravelerCounts) Total() int {
	return t.Adults + t.Children + t.Infants
}

// Paying counts the heads that pay the base price.
func (t TravelerCounts) Paying() int {
	return t.Adults + t.Children
}

// DefaultTravelers is the initial shared-state party: two adults.
func DefaultTravelers() TravelerCounts {
	return TravelerCounts{Adults: 2}
}

// BookingSelection is the transient shape validated before it becomes a cart
// item. Travelers is a pointer so "not provided" is distinguishable from zero.
type BookingSelection struct {
	SelectedDate *time.Time      `json:"selectedDate,omitempty"`
	Travelers    *TravelerCounts `json:"travelers,omitempty"`
	ActivityIDs  []string        `json:"selectedActivities,omitempty"`
}

// PricingBreakdown itemizes a booking total. Derived, never persisted.
type PricingBreakdown struct {
	BasePrice    int64 `json:"basePrice"`
	CarCost      int64 `json:"carCost"`
	ActivityCost int64 `json:"activityCost"`
	TotalPrice   int64 `json:"totalPrice"`
}
