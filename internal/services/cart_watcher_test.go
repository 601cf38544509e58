package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSubscribeDeliversAcrossPolls(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	moved := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	first := sqlmock.NewRows(cartTestColumns)
	first = cartRow(first, 1, 9, date, 2, 0, "", 300, 0, 0, models.CartStatusReady)
	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? ORDER BY id ASC`).
		WillReturnRows(first)
	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(total_price\),0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(1, 300))

	second := sqlmock.NewRows(cartTestColumns)
	second = cartRow(second, 1, 9, moved, 2, 0, "", 300, 0, 0, models.CartStatusReady)
	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? ORDER BY id ASC`).
		WillReturnRows(second)
	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(total_price\),0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(1, 300))

	deliveries := make(chan []models.CartItem, 4)
	unsubscribe := svc.Subscribe(context.Background(), 1, 10*time.Millisecond,
		func(items []models.CartItem, _ models.CartSummary) { deliveries <- items },
		func(error) {},
	)
	defer unsubscribe()

	for i := 0; i < 2; i++ {
		select {
		case items := <-deliveries:
			if len(items) != 1 {
				t.Fatalf("delivery %d: expected 1 item, got %d", i+1, len(items))
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("delivery %d not received", i+1)
		}
	}
}

func TestSubscribeSkipsUnchangedCart(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		rows := sqlmock.NewRows(cartTestColumns)
		rows = cartRow(rows, 1, 9, date, 2, 0, "", 300, 0, 0, models.CartStatusReady)
		mock.ExpectQuery(`FROM cart_items WHERE user_id=\? ORDER BY id ASC`).
			WillReturnRows(rows)
		mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(total_price\),0\)`).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(1, 300))
	}

	deliveries := make(chan []models.CartItem, 4)
	unsubscribe := svc.Subscribe(context.Background(), 1, 10*time.Millisecond,
		func(items []models.CartItem, _ models.CartSummary) { deliveries <- items },
		func(error) {},
	)
	defer unsubscribe()

	select {
	case <-deliveries:
	case <-time.After(2 * time.Second):
		t.Fatal("initial delivery not received")
	}

	select {
	case <-deliveries:
		t.Fatal("unchanged cart must not be redelivered")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeSafeUnderConcurrentCalls(t *testing.T) {
	svc, _, done := newCartService(t)
	defer done()

	unsubscribe := svc.Subscribe(context.Background(), 1, time.Hour,
		func([]models.CartItem, models.CartSummary) {}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe()
		}()
	}
	wg.Wait()
}
