package services

import (
	"tourbooking/internal/booking"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
)

// ResolvedAction is what a booking button needs to render itself.
type ResolvedAction struct {
	Action     string `json:"action"`
	CartItemID int64  `json:"cartItemId,omitempty"`
	CartSize   int    `json:"cartSize"`
}

// ResolveAction answers, for one tour and one declared intent, which action
// the button should take right now: diff the tour's existing entry (if any)
// against the live selection and apply the priority rules.
func (s CartService) ResolveAction(userID, tourID int64, intent booking.Intent, detectChanges bool, activityIDs []string) (ResolvedAction, error) {
	if userID <= 0 {
		return ResolvedAction{}, domain.UnauthorizedError{Msg: signInMessage}
	}

	items, err := s.CartRepo.ListByUser(userID)
	if err != nil {
		return ResolvedAction{}, err
	}

	var existing *models.CartItem
	for i := range items {
		if items[i].TourID == tourID {
			existing = &items[i]
			break
		}
	}

	sel := s.states().For(userID).Selection(activityIDs)
	action := booking.Resolve(booking.ResolveInput{
		Existing:      existing,
		DetectChanges: detectChanges,
		Selection:     sel,
		Intent:        intent,
		CartSize:      len(items),
	})

	out := ResolvedAction{Action: action.String(), CartSize: len(items)}
	if existing != nil {
		out.CartItemID = existing.ID
	}
	return out, nil
}
