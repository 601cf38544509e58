package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"tourbooking/internal/booking"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/pricing"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"

	"github.com/google/uuid"
)

// SharedStates is the process-wide registry of per-session booking state.
// Services fall back to it when no registry is injected, mirroring how the
// repositories fall back to the shared DB handle.
var SharedStates = booking.NewRegistry()

const signInMessage = "please sign in to manage your cart"

// CartService reconciles the shared booking state against every cart entry
// and owns the add/update/checkout cart mutations.
type CartService struct {
	CartRepo  repositories.CartRepository
	TourRepo  repositories.TourRepository
	States    *booking.Registry
	RequestID string

	// CheckoutBaseURL prefixes generated checkout links.
	CheckoutBaseURL string

	// Now is swappable for tests.
	Now func() time.Time
}

func (s CartService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s CartService) states() *booking.Registry {
	if s.States != nil {
		return s.States
	}
	return SharedStates
}

// Cart loads the user's items plus summary and seeds the shared state from
// the first item on the first non-empty load.
func (s CartService) Cart(userID int64) ([]models.CartItem, models.CartSummary, error) {
	if userID <= 0 {
		return nil, models.CartSummary{}, domain.UnauthorizedError{Msg: signInMessage}
	}
	items, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return nil, models.CartSummary{}, err
	}
	summary, err := s.CartRepo.Summary(userID)
	if err != nil {
		return items, models.CartSummary{}, err
	}
	if len(items) > 0 {
		s.states().For(userID).InitializeFromCart(items[0])
	}
	return items, summary, nil
}

// AddBookingToCart validates the shared-state selection strictly, persists a
// cart entry for the tour and re-synchronizes every other entry afterwards.
func (s CartService) AddBookingToCart(userID int64, tour *models.Tour, activityIDs []string) domain.OpResult {
	if userID <= 0 {
		return domain.Fail(signInMessage)
	}
	if tour == nil {
		return domain.Fail("tour not found")
	}

	sel := s.states().For(userID).Selection(activityIDs)
	if res := booking.Validate(sel, s.now()); !res.IsComplete {
		return domain.Fail(strings.Join(res.Errors, "; "))
	}
	return s.persistSelection(userID, tour, sel)
}

// AddPartialBookingToCart persists whatever is present, allowing an
// incomplete entry (missing date) that checkout will refuse later.
func (s CartService) AddPartialBookingToCart(userID int64, tour *models.Tour, activityIDs []string) domain.OpResult {
	if userID <= 0 {
		return domain.Fail(signInMessage)
	}
	if tour == nil {
		return domain.Fail("tour not found")
	}
	sel := s.states().For(userID).Selection(activityIDs)
	return s.persistSelection(userID, tour, sel)
}

// persistSelection writes the entry (update in place when the tour is already
// carted, so repeated adds never duplicate) and fans the shared state out to
// the remaining entries.
func (s CartService) persistSelection(userID int64, tour *models.Tour, sel models.BookingSelection) domain.OpResult {
	item := s.buildItem(userID, tour, sel)

	existing, found, err := s.CartRepo.GetByTour(userID, tour.ID)
	if err != nil {
		utils.LogEvent(s.RequestID, "cart", "lookup", fmt.Sprintf("tour=%d err=%v", tour.ID, err))
		return domain.Fail("could not read your cart")
	}

	if found {
		if err := s.CartRepo.Update(existing.ID, patchFromItem(item)); err != nil {
			utils.LogEvent(s.RequestID, "cart", "update", fmt.Sprintf("item=%d err=%v", existing.ID, err))
			return domain.Fail("could not update your cart")
		}
		s.syncOthers(userID, existing.ID)
		return domain.OpResult{Success: true, Message: "cart updated"}
	}

	id, err := s.CartRepo.Insert(item)
	if err != nil {
		utils.LogEvent(s.RequestID, "cart", "add", fmt.Sprintf("tour=%d err=%v", tour.ID, err))
		return domain.Fail("could not add the tour to your cart")
	}
	s.syncOthers(userID, id)
	return domain.OpResult{Success: true, Message: "added to cart"}
}

// ProceedToDirectCheckout uses the shared-state selection for a single-tour
// "book now" flow: update the existing entry or create a partial one, then
// hand back the checkout link.
func (s CartService) ProceedToDirectCheckout(userID int64, tour *models.Tour, activityIDs []string) domain.CheckoutResult {
	if userID <= 0 {
		return domain.CheckoutResult{Success: false, Message: signInMessage}
	}
	if tour == nil {
		return domain.CheckoutResult{Success: false, Message: "tour not found"}
	}
	sel := s.states().For(userID).Selection(activityIDs)
	return s.ProceedToDirectCheckoutWithDetails(userID, tour, sel)
}

// ProceedToDirectCheckoutWithDetails is the explicit-selection variant used
// by the dedicated booking page, independent from the shared state.
func (s CartService) ProceedToDirectCheckoutWithDetails(userID int64, tour *models.Tour, sel models.BookingSelection) domain.CheckoutResult {
	if userID <= 0 {
		return domain.CheckoutResult{Success: false, Message: signInMessage}
	}
	if tour == nil {
		return domain.CheckoutResult{Success: false, Message: "tour not found"}
	}

	if res := s.persistSelection(userID, tour, sel); !res.Success {
		return domain.CheckoutResult{Success: false, Message: res.Message}
	}
	return domain.CheckoutResult{
		Success:     true,
		CheckoutURL: s.checkoutURL(tour.ID),
	}
}

// UpdateItemFromSelection persists an explicit selection onto an existing
// entry (the "update cart" button path).
func (s CartService) UpdateItemFromSelection(userID, itemID int64, sel models.BookingSelection) domain.OpResult {
	if userID <= 0 {
		return domain.Fail(signInMessage)
	}
	item, err := s.CartRepo.GetByID(itemID)
	if err != nil || item.UserID != userID {
		return domain.Fail("cart item not found")
	}

	patch, err := s.selectionPatch(sel, item)
	if err != nil {
		utils.LogEvent(s.RequestID, "cart", "reprice", fmt.Sprintf("item=%d err=%v", itemID, err))
		return domain.Fail("could not update your cart")
	}
	if err := s.CartRepo.Update(itemID, patch); err != nil {
		utils.LogEvent(s.RequestID, "cart", "update", fmt.Sprintf("item=%d err=%v", itemID, err))
		return domain.Fail("could not update your cart")
	}
	return domain.OpResult{Success: true, Message: "cart updated"}
}

// RemoveFromCart deletes the entry; removing the last item resets the shared
// state so the next cart starts from defaults.
func (s CartService) RemoveFromCart(userID, itemID int64) domain.OpResult {
	if userID <= 0 {
		return domain.Fail(signInMessage)
	}
	if err := s.CartRepo.Delete(userID, itemID); err != nil {
		return domain.Fail("cart item not found")
	}
	if summary, err := s.CartRepo.Summary(userID); err == nil && summary.TotalItems == 0 {
		s.states().For(userID).Reset()
	}
	return domain.OpResult{Success: true, Message: "removed from cart"}
}

// syncOthers pushes the current shared state into every cart entry except the
// one just written. Best effort: each update runs in parallel and a failure
// is logged, never surfaced, so a secondary consistency step cannot sink the
// primary action.
func (s CartService) syncOthers(userID, exceptItemID int64) {
	items, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		utils.LogEvent(s.RequestID, "cart", "sync", fmt.Sprintf("list failed: %v", err))
		return
	}

	state := s.states().For(userID).Snapshot()
	now := s.now()

	var wg sync.WaitGroup
	for _, item := range items {
		if item.ID == exceptItemID {
			continue
		}
		if !booking.SelectionChanged(item, models.BookingSelection{
			SelectedDate: state.SelectedDate,
			Travelers:    &state.Travelers,
			ActivityIDs:  item.ActivityIDs,
		}) {
			continue
		}

		wg.Add(1)
		go func(item models.CartItem) {
			defer wg.Done()
			patch := statePatch(state, item, now)
			if err := s.CartRepo.Update(item.ID, patch); err != nil {
				utils.LogEvent(s.RequestID, "cart", "sync", fmt.Sprintf("item=%d err=%v", item.ID, err))
			}
		}(item)
	}
	wg.Wait()
}

// buildItem snapshots the tour and prices the selection into a cart entry.
func (s CartService) buildItem(userID int64, tour *models.Tour, sel models.BookingSelection) models.CartItem {
	travelers := models.DefaultTravelers()
	if sel.Travelers != nil {
		travelers = *sel.Travelers
	}
	bd := pricing.Breakdown(tour, travelers, sel.ActivityIDs)
	return models.CartItem{
		UserID:                 userID,
		TourID:                 tour.ID,
		TourTitle:              tour.TitleEN,
		TourBasePrice:          tour.BasePrice,
		TourImages:             tour.Images,
		SelectedDate:           sel.SelectedDate,
		Travelers:              travelers,
		ActivityIDs:            append([]string(nil), sel.ActivityIDs...),
		TotalPrice:             bd.TotalPrice,
		ActivityPriceIncrement: bd.ActivityCost,
		CarCost:                bd.CarCost,
		Status:                 booking.StatusFor(sel, s.now()),
	}
}

func (s CartService) checkoutURL(tourID int64) string {
	base := strings.TrimRight(s.CheckoutBaseURL, "/")
	if base == "" {
		base = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/checkout?tour=%d&session=%s", base, tourID, uuid.NewString())
}

// patchFromItem turns a freshly built item into a full-overwrite patch.
func patchFromItem(item models.CartItem) repositories.CartItemPatch {
	travelers := item.Travelers
	acts := append([]string(nil), item.ActivityIDs...)
	total := item.TotalPrice
	inc := item.ActivityPriceIncrement
	car := item.CarCost
	status := item.Status
	return repositories.CartItemPatch{
		SelectedDate:           item.SelectedDate,
		DateSet:                true,
		Travelers:              &travelers,
		ActivityIDs:            &acts,
		TotalPrice:             &total,
		ActivityPriceIncrement: &inc,
		CarCost:                &car,
		Status:                 &status,
	}
}

// selectionPatch applies an explicit selection to an existing entry. A changed
// activity set is repriced against the tour's current offers; the headcount
// parts always come from the stored snapshot.
func (s CartService) selectionPatch(sel models.BookingSelection, item models.CartItem) (repositories.CartItemPatch, error) {
	travelers := item.Travelers
	if sel.Travelers != nil {
		travelers = *sel.Travelers
	}
	acts := item.ActivityIDs
	inc := item.ActivityPriceIncrement
	if sel.ActivityIDs != nil {
		acts = append([]string(nil), sel.ActivityIDs...)
		tour, err := s.TourRepo.GetByID(item.TourID)
		if err != nil {
			return repositories.CartItemPatch{}, err
		}
		inc = pricing.ActivityPriceIncrement(&tour, acts)
	}

	car := pricing.CarCost(travelers.Total())
	total := int64(0)
	if item.TourBasePrice > 0 {
		total = item.TourBasePrice + car + inc
	}
	status := models.CartStatusIncomplete
	if v := booking.Validate(models.BookingSelection{
		SelectedDate: sel.SelectedDate,
		Travelers:    &travelers,
		ActivityIDs:  acts,
	}, s.now()); v.IsComplete {
		status = models.CartStatusReady
	}
	return repositories.CartItemPatch{
		SelectedDate:           sel.SelectedDate,
		DateSet:                true,
		Travelers:              &travelers,
		ActivityIDs:            &acts,
		TotalPrice:             &total,
		ActivityPriceIncrement: &inc,
		CarCost:                &car,
		Status:                 &status,
	}, nil
}

// statePatch rewrites one entry's date/travelers to the shared state,
// repricing the headcount-dependent parts from the stored snapshot.
func statePatch(state booking.SharedState, item models.CartItem, now time.Time) repositories.CartItemPatch {
	travelers := state.Travelers
	car := pricing.CarCost(travelers.Total())
	total := int64(0)
	if item.TourBasePrice > 0 {
		total = item.TourBasePrice + car + item.ActivityPriceIncrement
	}
	status := models.CartStatusIncomplete
	if v := booking.Validate(models.BookingSelection{
		SelectedDate: state.SelectedDate,
		Travelers:    &travelers,
	}, now); v.IsComplete {
		status = models.CartStatusReady
	}
	return repositories.CartItemPatch{
		SelectedDate: state.SelectedDate,
		DateSet:      true,
		Travelers:    &travelers,
		TotalPrice:   &total,
		CarCost:      &car,
		Status:       &status,
	}
}
