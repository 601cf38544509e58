package pricing

import "tourbooking/internal/domain/models"

const (
	// VehicleCapacity is how many people one vehicle carries before another
	// one has to be arranged.
	VehicleCapacity = 6

	// ExtraVehicleCost is the flat surcharge per additional vehicle.
	ExtraVehicleCost int64 = 200
)

// ActivityPriceIncrement sums the increments of the tour-offered activities
// whose type id is selected. Unknown ids contribute nothing; a nil tour or a
// tour without activities prices to 0.
func ActivityPriceIncrement(tour *models.Tour, activityIDs []string) int64 {
	if tour == nil || len(tour.Activities) == 0 || len(activityIDs) == 0 {
		return 0
	}
	selected := make(map[string]bool, len(activityIDs))
	for _, id := range activityIDs {
		selected[id] = true
	}
	var sum int64
	for _, a := range tour.Activities {
		if selected[a.ActivityTypeID] {
			sum += a.PriceIncrement
		}
	}
	return sum
}

// CarCost is the additional-vehicle surcharge. The base price covers one
// vehicle (up to VehicleCapacity people); every further full or partial group
// costs ExtraVehicleCost.
func CarCost(totalPeople int) int64 {
	if totalPeople <= 1 {
		return 0
	}
	return int64((totalPeople-1)/VehicleCapacity) * ExtraVehicleCost
}

// TotalPrice computes base + car surcharge + activity increments.
// A tour without a positive base price totals 0.
func TotalPrice(tour *models.Tour, travelers models.TravelerCounts, activityIDs []string) int64 {
	if tour == nil || tour.BasePrice <= 0 {
		return 0
	}
	return tour.BasePrice + CarCost(travelers.Total()) + ActivityPriceIncrement(tour, activityIDs)
}

// Breakdown itemizes the components of TotalPrice. All-zero when the tour is
// absent or has no usable base price.
func Breakdown(tour *models.Tour, travelers models.TravelerCounts, activityIDs []string) models.PricingBreakdown {
	if tour == nil || tour.BasePrice <= 0 {
		return models.PricingBreakdown{}
	}
	car := CarCost(travelers.Total())
	act := ActivityPriceIncrement(tour, activityIDs)
	return models.PricingBreakdown{
		BasePrice:    tour.BasePrice,
		CarCost:      car,
		ActivityCost: act,
		TotalPrice:   tour.BasePrice + car + act,
	}
}
