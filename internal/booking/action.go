package booking

import (
	"time"

	"tourbooking/internal/domain/models"
)

// Intent is the caller-declared hint biasing which action a multi-purpose
// booking button resolves to.
type Intent int

const (
	IntentPrimary Intent = iota
	IntentSecondary
)

func ParseIntent(s string) Intent {
	if s == "secondary" {
		return IntentSecondary
	}
	return IntentPrimary
}

// Action is the resolved per-tour button behavior.
type Action int

const (
	// ActionNone suppresses the button entirely (secondary button for a tour
	// already in the cart with no pending changes).
	ActionNone Action = iota
	ActionBookNow
	ActionAddToCart
	ActionUpdateCart
	ActionViewInCart
)

func (a Action) String() string {
	switch a {
	case ActionBookNow:
		return "book-now"
	case ActionAddToCart:
		return "add-to-cart"
	case ActionUpdateCart:
		return "update-cart"
	case ActionViewInCart:
		return "view-in-cart"
	default:
		return "none"
	}
}

// ResolveInput gathers everything the action decision depends on.
type ResolveInput struct {
	// Existing is this tour's cart entry, nil when the tour is not in the cart.
	Existing *models.CartItem
	// DetectChanges enables diffing Selection against Existing. Buttons that
	// do not track live selection leave it off and never resolve to update.
	DetectChanges bool
	// Selection is the live selection state for the diff.
	Selection models.BookingSelection
	Intent    Intent
	// CartSize is the number of items currently in the cart.
	CartSize int
}

// Resolve is the total transition function of the per-tour button state
// machine, evaluated in strict priority order.
func Resolve(in ResolveInput) Action {
	if in.Existing != nil {
		if in.DetectChanges && SelectionChanged(*in.Existing, in.Selection) {
			return ActionUpdateCart
		}
		if in.Intent == IntentSecondary {
			return ActionNone
		}
		return ActionViewInCart
	}
	if in.Intent == IntentSecondary && in.CartSize > 0 {
		return ActionAddToCart
	}
	return ActionBookNow
}

// SelectionChanged reports whether the live selection differs from the
// persisted cart entry: date by timestamp, traveler counts field by field,
// activities as an order-independent set.
func SelectionChanged(item models.CartItem, sel models.BookingSelection) bool {
	if !datesEqual(item.SelectedDate, sel.SelectedDate) {
		return true
	}
	if sel.Travelers != nil && *sel.Travelers != item.Travelers {
		return true
	}
	if !sameActivitySet(item.ActivityIDs, sel.ActivityIDs) {
		return true
	}
	return false
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func sameActivitySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	have := make(map[string]bool, len(a))
	for _, id := range a {
		have[id] = true
	}
	for _, id := range b {
		if !have[id] {
			return false
		}
	}
	return true
}
