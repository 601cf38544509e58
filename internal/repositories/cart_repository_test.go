package repositories

import (
	"testing"
	"time"

	"tourbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var cartTestColumns = []string{
	"id", "user_id", "tour_id", "tour_title", "tour_base_price",
	"tour_images", "selected_date", "adults", "children", "infants",
	"activity_ids", "total_price", "activity_price_increment", "car_cost",
	"status", "created_at", "updated_at",
}

func TestCartRepositoryListByUserScansItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(cartTestColumns).
		AddRow(1, 1, 9, "Kazbegi day trip", 300, `["a.jpg"]`, date, 2, 1, 1,
			`["quad","wine"]`, 440, 140, 0, "ready", created, created).
		AddRow(2, 1, 5, "Svaneti trek", 500, "", nil, 2, 0, 0,
			"", 500, 0, 0, "incomplete", created, created)
	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? ORDER BY id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	repo := CartRepository{DB: db}
	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.SelectedDate == nil || !first.SelectedDate.Equal(date) {
		t.Fatalf("unexpected date: %v", first.SelectedDate)
	}
	if first.Travelers != (models.TravelerCounts{Adults: 2, Children: 1, Infants: 1}) {
		t.Fatalf("unexpected travelers: %+v", first.Travelers)
	}
	if len(first.ActivityIDs) != 2 || first.ActivityIDs[0] != "quad" {
		t.Fatalf("unexpected activities: %v", first.ActivityIDs)
	}
	if len(first.TourImages) != 1 || first.TourImages[0] != "a.jpg" {
		t.Fatalf("unexpected images: %v", first.TourImages)
	}
	if first.CreatedAt != "2026-09-01 08:30:00" {
		t.Fatalf("unexpected created_at: %q", first.CreatedAt)
	}

	second := items[1]
	if second.SelectedDate != nil {
		t.Fatalf("expected nil date, got %v", second.SelectedDate)
	}
	if second.ActivityIDs != nil {
		t.Fatalf("expected no activities, got %v", second.ActivityIDs)
	}
}

func TestCartRepositoryGetByTourMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM cart_items WHERE user_id=\? AND tour_id=\?`).
		WithArgs(int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows(cartTestColumns))

	repo := CartRepository{DB: db}
	_, found, err := repo.GetByTour(1, 9)
	if err != nil {
		t.Fatalf("expected no error for missing entry, got %v", err)
	}
	if found {
		t.Fatal("expected found=false")
	}
}

func TestCartRepositoryUpdateBuildsPartialSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE cart_items SET selected_date=\?,adults=\?,children=\?,infants=\?,status=\? WHERE id=\?`).
		WithArgs("2026-09-10", 2, 1, 0, "ready", int64(5)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	travelers := models.TravelerCounts{Adults: 2, Children: 1}
	status := models.CartStatusReady

	repo := CartRepository{DB: db}
	err = repo.Update(5, CartItemPatch{
		SelectedDate: &date,
		DateSet:      true,
		Travelers:    &travelers,
		Status:       &status,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCartRepositoryUpdateClearsDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE cart_items SET selected_date=\? WHERE id=\?`).
		WithArgs(nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := CartRepository{DB: db}
	if err := repo.Update(5, CartItemPatch{DateSet: true}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCartRepositorySummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(total_price\),0\)`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, 1250))

	repo := CartRepository{DB: db}
	summary, err := repo.Summary(1)
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if summary.TotalItems != 3 || summary.TotalPrice != 1250 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
