package services

import (
	"strings"
	"time"

	"tourbooking/internal/booking"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// CheckoutService is the strict single-tour booking flow used by the
// dedicated booking page. Unlike the cart buttons it takes an explicit
// selection, so the page can operate independently from the shared state.
type CheckoutService struct {
	Cart CartService
	Now  func() time.Time
}

func (s CheckoutService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// DirectCheckout validates the full selection and only then creates or
// updates the tour's cart entry, returning a navigable checkout URL.
func (s CheckoutService) DirectCheckout(userID int64, tour *models.Tour, sel models.BookingSelection) domain.CheckoutResult {
	if userID <= 0 {
		return domain.CheckoutResult{Success: false, Message: signInMessage}
	}
	if tour == nil {
		return domain.CheckoutResult{Success: false, Message: "tour not found"}
	}
	if res := booking.Validate(sel, s.now()); !res.IsComplete {
		return domain.CheckoutResult{Success: false, Message: strings.Join(res.Errors, "; ")}
	}
	return s.Cart.ProceedToDirectCheckoutWithDetails(userID, tour, sel)
}
