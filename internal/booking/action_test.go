package booking

import (
	"testing"
	"time"

	"tourbooking/internal/domain/models"
)

func cartEntry(date *time.Time, trav models.TravelerCounts, acts ...string) *models.CartItem {
	return &models.CartItem{
		ID:           11,
		TourID:       7,
		SelectedDate: date,
		Travelers:    trav,
		ActivityIDs:  acts,
	}
}

func TestResolveEmptyCartSecondaryFallsBackToBookNow(t *testing.T) {
	got := Resolve(ResolveInput{Intent: IntentSecondary, CartSize: 0})
	if got != ActionBookNow {
		t.Fatalf("Resolve = %v, want book-now", got)
	}
}

func TestResolvePrimaryNoEntryIsBookNow(t *testing.T) {
	got := Resolve(ResolveInput{Intent: IntentPrimary, CartSize: 3})
	if got != ActionBookNow {
		t.Fatalf("Resolve = %v, want book-now", got)
	}
}

func TestResolveSecondaryWithNonEmptyCartIsAddToCart(t *testing.T) {
	got := Resolve(ResolveInput{Intent: IntentSecondary, CartSize: 1})
	if got != ActionAddToCart {
		t.Fatalf("Resolve = %v, want add-to-cart", got)
	}
}

func TestResolveEntryWithChangesIsUpdateCart(t *testing.T) {
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	entry := cartEntry(&d, models.TravelerCounts{Adults: 2})
	sel := models.BookingSelection{
		SelectedDate: &d,
		Travelers:    &models.TravelerCounts{Adults: 3},
	}
	got := Resolve(ResolveInput{Existing: entry, DetectChanges: true, Selection: sel, Intent: IntentPrimary, CartSize: 1})
	if got != ActionUpdateCart {
		t.Fatalf("Resolve = %v, want update-cart", got)
	}
}

func TestResolveEntryNoChangesPrimaryIsViewInCart(t *testing.T) {
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	entry := cartEntry(&d, models.TravelerCounts{Adults: 2}, "horse-riding")
	sel := entry.Selection()
	got := Resolve(ResolveInput{Existing: entry, DetectChanges: true, Selection: sel, Intent: IntentPrimary, CartSize: 1})
	if got != ActionViewInCart {
		t.Fatalf("Resolve = %v, want view-in-cart", got)
	}
}

func TestResolveEntryNoChangesSecondaryIsSuppressed(t *testing.T) {
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	entry := cartEntry(&d, models.TravelerCounts{Adults: 2})
	got := Resolve(ResolveInput{Existing: entry, DetectChanges: true, Selection: entry.Selection(), Intent: IntentSecondary, CartSize: 2})
	if got != ActionNone {
		t.Fatalf("Resolve = %v, want none", got)
	}
}

func TestResolveChangeDetectionDisabledNeverUpdates(t *testing.T) {
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	entry := cartEntry(&d, models.TravelerCounts{Adults: 2})
	sel := models.BookingSelection{Travelers: &models.TravelerCounts{Adults: 5}}
	got := Resolve(ResolveInput{Existing: entry, DetectChanges: false, Selection: sel, Intent: IntentPrimary, CartSize: 1})
	if got != ActionViewInCart {
		t.Fatalf("Resolve = %v, want view-in-cart when detection is off", got)
	}
}

func TestSelectionChangedDateByTimestamp(t *testing.T) {
	utc := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	other := utc.In(time.FixedZone("plus4", 4*3600))
	entry := cartEntry(&utc, models.TravelerCounts{Adults: 2})

	sel := models.BookingSelection{SelectedDate: &other, Travelers: &models.TravelerCounts{Adults: 2}}
	if SelectionChanged(*entry, sel) {
		t.Fatalf("same instant in another zone must not count as a change")
	}

	later := utc.Add(24 * time.Hour)
	sel.SelectedDate = &later
	if !SelectionChanged(*entry, sel) {
		t.Fatalf("different date must count as a change")
	}
}

func TestSelectionChangedActivitySetOrderIndependent(t *testing.T) {
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	entry := cartEntry(&d, models.TravelerCounts{Adults: 2}, "a", "b")

	same := models.BookingSelection{
		SelectedDate: &d,
		Travelers:    &models.TravelerCounts{Adults: 2},
		ActivityIDs:  []string{"b", "a"},
	}
	if SelectionChanged(*entry, same) {
		t.Fatalf("reordered activities must not count as a change")
	}

	different := same
	different.ActivityIDs = []string{"a", "c"}
	if !SelectionChanged(*entry, different) {
		t.Fatalf("swapped activity must count as a change")
	}

	fewer := same
	fewer.ActivityIDs = []string{"a"}
	if !SelectionChanged(*entry, fewer) {
		t.Fatalf("removed activity must count as a change")
	}
}

func TestSelectionChangedNilDateHandling(t *testing.T) {
	entry := cartEntry(nil, models.TravelerCounts{Adults: 2})
	sel := models.BookingSelection{Travelers: &models.TravelerCounts{Adults: 2}}
	if SelectionChanged(*entry, sel) {
		t.Fatalf("both dates nil is not a change")
	}
	d := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	sel.SelectedDate = &d
	if !SelectionChanged(*entry, sel) {
		t.Fatalf("nil -> set date is a change")
	}
}

func TestParseIntent(t *testing.T) {
	if ParseIntent("secondary") != IntentSecondary {
		t.Fatalf("secondary not parsed")
	}
	if ParseIntent("primary") != IntentPrimary || ParseIntent("") != IntentPrimary {
		t.Fatalf("primary should be the default")
	}
}
