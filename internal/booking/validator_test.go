package booking

import (
	"testing"
	"time"

	"tourbooking/internal/domain/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func futureDate() *time.Time {
	d := testNow.AddDate(0, 0, 14)
	return &d
}

func pastDate() *time.Time {
	d := testNow.AddDate(0, 0, -1)
	return &d
}

func travelers(a, c, i int) *models.TravelerCounts {
	return &models.TravelerCounts{Adults: a, Children: c, Infants: i}
}

func TestValidateCompleteSelection(t *testing.T) {
	res := Validate(models.BookingSelection{
		SelectedDate: futureDate(),
		Travelers:    travelers(2, 1, 0),
		ActivityIDs:  nil, // activities are optional
	}, testNow)
	if !res.IsComplete || len(res.Errors) != 0 {
		t.Fatalf("expected complete, got %+v", res)
	}
}

func TestValidateMissingDate(t *testing.T) {
	res := Validate(models.BookingSelection{Travelers: travelers(2, 0, 0)}, testNow)
	if res.IsComplete {
		t.Fatalf("expected incomplete")
	}
	if len(res.Errors) != 1 || res.Errors[0] != ErrDateRequired {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestValidateMinAdultsAlwaysReported(t *testing.T) {
	for _, sel := range []models.BookingSelection{
		{Travelers: travelers(1, 0, 0)},
		{SelectedDate: futureDate(), Travelers: travelers(1, 5, 0)},
		{SelectedDate: pastDate(), Travelers: travelers(1, 0, 2)},
	} {
		res := Validate(sel, testNow)
		if !contains(res.Errors, ErrMinAdults) {
			t.Fatalf("minimum adults error missing for %+v: %v", sel, res.Errors)
		}
	}
}

func TestValidatePastDateAndOneAdultIsTwoErrors(t *testing.T) {
	res := Validate(models.BookingSelection{
		SelectedDate: pastDate(),
		Travelers:    travelers(1, 0, 0),
	}, testNow)
	if len(res.Errors) != 2 {
		t.Fatalf("expected exactly 2 errors, got %v", res.Errors)
	}
	if !contains(res.Errors, ErrDateNotFuture) || !contains(res.Errors, ErrMinAdults) {
		t.Fatalf("unexpected error set: %v", res.Errors)
	}
}

func TestValidateDateExactlyNowIsNotFuture(t *testing.T) {
	now := testNow
	res := Validate(models.BookingSelection{
		SelectedDate: &now,
		Travelers:    travelers(2, 0, 0),
	}, testNow)
	if !contains(res.Errors, ErrDateNotFuture) {
		t.Fatalf("date equal to now should not validate: %v", res.Errors)
	}
}

func TestValidateMissingTravelers(t *testing.T) {
	res := Validate(models.BookingSelection{SelectedDate: futureDate()}, testNow)
	if len(res.Errors) != 1 || res.Errors[0] != ErrTravelersRequired {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestValidateNegativeCounts(t *testing.T) {
	res := Validate(models.BookingSelection{
		SelectedDate: futureDate(),
		Travelers:    travelers(2, -1, 0),
	}, testNow)
	if !contains(res.Errors, ErrNegativeCounts) {
		t.Fatalf("negative counts not reported: %v", res.Errors)
	}
	if res.IsComplete {
		t.Fatalf("expected incomplete")
	}
}

func TestStatusFor(t *testing.T) {
	ready := models.BookingSelection{SelectedDate: futureDate(), Travelers: travelers(2, 0, 0)}
	if got := StatusFor(ready, testNow); got != models.CartStatusReady {
		t.Fatalf("StatusFor ready = %q", got)
	}
	if got := StatusFor(models.BookingSelection{Travelers: travelers(2, 0, 0)}, testNow); got != models.CartStatusIncomplete {
		t.Fatalf("StatusFor incomplete = %q", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
