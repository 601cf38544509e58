package pricing

import (
	"testing"

	"tourbooking/internal/domain/models"
)

func sampleTour() *models.Tour {
	return &models.Tour{
		ID:        7,
		TitleEN:   "Kazbegi Day Trip",
		BasePrice: 450,
		Activities: []models.OfferedActivity{
			{ActivityTypeID: "horse-riding", NameSnapshot: "Horse riding", PriceIncrement: 60},
			{ActivityTypeID: "wine-tasting", NameSnapshot: "Wine tasting", PriceIncrement: 35},
		},
	}
}

func TestCarCostBrackets(t *testing.T) {
	for people := 1; people <= 6; people++ {
		if got := CarCost(people); got != 0 {
			t.Fatalf("CarCost(%d) = %d, want 0", people, got)
		}
	}
	for people := 7; people <= 12; people++ {
		if got := CarCost(people); got != 200 {
			t.Fatalf("CarCost(%d) = %d, want 200", people, got)
		}
	}
	for people := 13; people <= 18; people++ {
		if got := CarCost(people); got != 400 {
			t.Fatalf("CarCost(%d) = %d, want 400", people, got)
		}
	}
}

func TestCarCostZeroAndNegative(t *testing.T) {
	if got := CarCost(0); got != 0 {
		t.Fatalf("CarCost(0) = %d, want 0", got)
	}
	if got := CarCost(-3); got != 0 {
		t.Fatalf("CarCost(-3) = %d, want 0", got)
	}
}

func TestActivityIncrementOrderIndependent(t *testing.T) {
	tour := sampleTour()
	a := ActivityPriceIncrement(tour, []string{"horse-riding", "wine-tasting"})
	b := ActivityPriceIncrement(tour, []string{"wine-tasting", "horse-riding"})
	if a != b || a != 95 {
		t.Fatalf("increment mismatch: %d vs %d, want 95", a, b)
	}
}

func TestActivityIncrementIgnoresUnknownIDs(t *testing.T) {
	tour := sampleTour()
	if got := ActivityPriceIncrement(tour, []string{"paragliding"}); got != 0 {
		t.Fatalf("unknown activity priced %d, want 0", got)
	}
	if got := ActivityPriceIncrement(tour, []string{"paragliding", "horse-riding"}); got != 60 {
		t.Fatalf("mixed known/unknown priced %d, want 60", got)
	}
	if got := ActivityPriceIncrement(nil, []string{"horse-riding"}); got != 0 {
		t.Fatalf("nil tour priced %d, want 0", got)
	}
}

func TestTotalPriceIncludesCarAndActivities(t *testing.T) {
	tour := sampleTour()
	travelers := models.TravelerCounts{Adults: 5, Children: 2} // 7 people -> one extra car
	got := TotalPrice(tour, travelers, []string{"wine-tasting"})
	want := int64(450 + 200 + 35)
	if got != want {
		t.Fatalf("TotalPrice = %d, want %d", got, want)
	}
}

func TestTotalPriceInfantsCountForVehicleOnly(t *testing.T) {
	tour := sampleTour()
	// 6 paying, 1 infant: infant pushes the party into a second vehicle but
	// never pays the base price.
	travelers := models.TravelerCounts{Adults: 4, Children: 2, Infants: 1}
	if travelers.Paying() != 6 {
		t.Fatalf("Paying() = %d, want 6", travelers.Paying())
	}
	got := TotalPrice(tour, travelers, nil)
	if got != 450+200 {
		t.Fatalf("TotalPrice = %d, want %d", got, 450+200)
	}
}

func TestZeroBasePriceMeansZeroEverything(t *testing.T) {
	tour := sampleTour()
	tour.BasePrice = 0
	travelers := models.TravelerCounts{Adults: 8}

	if got := TotalPrice(tour, travelers, []string{"horse-riding"}); got != 0 {
		t.Fatalf("TotalPrice = %d, want 0", got)
	}
	bd := Breakdown(tour, travelers, []string{"horse-riding"})
	if bd != (models.PricingBreakdown{}) {
		t.Fatalf("Breakdown not all-zero: %+v", bd)
	}
}

func TestBreakdownComponentsAddUp(t *testing.T) {
	tour := sampleTour()
	travelers := models.TravelerCounts{Adults: 10, Children: 2, Infants: 1} // 13 -> 400
	bd := Breakdown(tour, travelers, []string{"horse-riding", "wine-tasting"})
	if bd.BasePrice != 450 || bd.CarCost != 400 || bd.ActivityCost != 95 {
		t.Fatalf("unexpected components: %+v", bd)
	}
	if bd.TotalPrice != bd.BasePrice+bd.CarCost+bd.ActivityCost {
		t.Fatalf("total %d does not add up: %+v", bd.TotalPrice, bd)
	}
}
