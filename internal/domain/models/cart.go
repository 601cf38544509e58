package models

import "time"

const (
	CartStatusReady      = "ready"
	CartStatusIncomplete = "incomplete"
)

// CartItem is one tour's booking configuration inside a user's cart.
// Tour title/price/images are denormalized snapshots so the cart renders
// without a catalog round trip.
type CartItem struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	TourID        int64           `json:"tourId"`
	TourTitle     string          `json:"tourTitle"`
	TourBasePrice int64           `json:"tourBasePrice"`
	TourImages    []string        `json:"tourImages,omitempty"`
	SelectedDate  *time.Time      `json:"selectedDate,omitempty"`
	Travelers     TravelerCounts  `json:"travelers"`
	ActivityIDs   []string        `json:"selectedActivities,omitempty"`

	TotalPrice             int64  `json:"totalPrice"`
	ActivityPriceIncrement int64  `json:"activityPriceIncrement"`
	CarCost                int64  `json:"carCost"`
	Status                 string `json:"status"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Selection rebuilds the transient selection shape from the persisted item.
func (c CartItem) Selection() BookingSelection {
	t := c.Travelers
	return BookingSelection{
		SelectedDate: c.SelectedDate,
		Travelers:    &t,
		ActivityIDs:  append([]string(nil), c.ActivityIDs...),
	}
}

// CartSummary is the derived cart header shown next to the cart icon.
type CartSummary struct {
	TotalItems int   `json:"totalItems"`
	TotalPrice int64 `json:"totalPrice"`
}
