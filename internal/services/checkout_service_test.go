package services

import (
	"strings"
	"testing"
	"time"

	"tourbooking/internal/booking"
	"tourbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDirectCheckoutRejectsIncompleteSelection(t *testing.T) {
	svc := CheckoutService{
		Cart: CartService{States: booking.NewRegistry(), Now: fixedNow},
		Now:  fixedNow,
	}

	past := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sel := models.BookingSelection{
		SelectedDate: &past,
		Travelers:    &models.TravelerCounts{Adults: 1},
	}

	res := svc.DirectCheckout(1, testTour(9), sel)
	if res.Success {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(res.Message, booking.ErrDateNotFuture) {
		t.Fatalf("expected past-date error, got %q", res.Message)
	}
	if !strings.Contains(res.Message, booking.ErrMinAdults) {
		t.Fatalf("expected min-adults error, got %q", res.Message)
	}
}

func TestDirectCheckoutPersistsExplicitSelection(t *testing.T) {
	cart, mock, done := newCartService(t)
	defer done()
	svc := CheckoutService{Cart: cart, Now: fixedNow}

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	sel := models.BookingSelection{
		SelectedDate: &date,
		Travelers:    &models.TravelerCounts{Adults: 2},
		ActivityIDs:  []string{"quad"},
	}

	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? AND tour_id=\?`).
		WillReturnRows(sqlmock.NewRows(cartTestColumns))
	mock.ExpectExec("INSERT INTO cart_items").
		WillReturnResult(sqlmock.NewResult(8, 1))
	only := sqlmock.NewRows(cartTestColumns)
	only = cartRow(only, 8, 9, date, 2, 0, `["quad"]`, 350, 50, 0, models.CartStatusReady)
	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? ORDER BY id ASC`).
		WillReturnRows(only)

	res := svc.DirectCheckout(1, testTour(9), sel)
	if !res.Success {
		t.Fatalf("checkout failed: %s", res.Message)
	}
	if !strings.HasPrefix(res.CheckoutURL, "http://shop.test/checkout?tour=9&session=") {
		t.Fatalf("unexpected checkout url: %q", res.CheckoutURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
