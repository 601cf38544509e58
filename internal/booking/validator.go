package booking

import (
	"time"

	"tourbooking/internal/domain/models"
)

// Validation error strings. Every rule has its own message and all applicable
// messages are returned together, so the UI can show the full list at once.
const (
	ErrDateRequired      = "travel date is required"
	ErrDateNotFuture     = "travel date must be in the future"
	ErrTravelersRequired = "traveler information is required"
	ErrMinAdults         = "minimum 2 adults required"
	ErrNegativeCounts    = "traveler counts cannot be negative"
)

// MinAdults is the minimum party size business rule.
const MinAdults = 2

// ValidationResult aggregates every rule violation for a selection.
type ValidationResult struct {
	IsComplete bool     `json:"isComplete"`
	Errors     []string `json:"errors"`
}

// Validate checks a candidate selection against the booking business rules.
// Rules are evaluated independently; activities are never required.
func Validate(sel models.BookingSelection, now time.Time) ValidationResult {
	var errs []string

	switch {
	case sel.SelectedDate == nil:
		errs = append(errs, ErrDateRequired)
	case !sel.SelectedDate.After(now):
		errs = append(errs, ErrDateNotFuture)
	}

	if sel.Travelers == nil {
		errs = append(errs, ErrTravelersRequired)
	} else {
		t := *sel.Travelers
		if t.Adults < MinAdults {
			errs = append(errs, ErrMinAdults)
		}
		if t.Adults < 0 || t.Children < 0 || t.Infants < 0 {
			errs = append(errs, ErrNegativeCounts)
		}
	}

	return ValidationResult{IsComplete: len(errs) == 0, Errors: errs}
}

// StatusFor derives the cart item status from a selection: "ready" when it
// passes full validation, "incomplete" otherwise.
func StatusFor(sel models.BookingSelection, now time.Time) string {
	if Validate(sel, now).IsComplete {
		return models.CartStatusReady
	}
	return models.CartStatusIncomplete
}
