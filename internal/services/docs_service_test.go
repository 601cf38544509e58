package services

import (
	"strings"
	"testing"
	"time"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateCartInvoice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(cartTestColumns).
		AddRow(4, 1, 9, "Kazbegi day trip", 300, "", date, 2, 1, 0,
			`["quad"]`, 350, 50, 0, models.CartStatusReady, fixedNow(), fixedNow())
	mock.ExpectQuery(`FROM cart_items WHERE id=\?`).
		WillReturnRows(rows)

	svc := DocsService{CartRepo: repositories.CartRepository{DB: db}}
	pdf, filename, err := svc.GenerateCartInvoice(1, 4)
	if err != nil {
		t.Fatalf("GenerateCartInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("GenerateCartInvoice returned empty data")
	}
	if !strings.HasPrefix(filename, "INVOICE_4_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestGenerateCartInvoiceRejectsIncompleteItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(cartTestColumns).
		AddRow(4, 1, 9, "Kazbegi day trip", 300, "", nil, 2, 0, 0,
			"", 300, 0, 0, models.CartStatusIncomplete, fixedNow(), fixedNow())
	mock.ExpectQuery(`FROM cart_items WHERE id=\?`).
		WillReturnRows(rows)

	svc := DocsService{CartRepo: repositories.CartRepository{DB: db}}
	if _, _, err := svc.GenerateCartInvoice(1, 4); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateCartInvoiceDeniesForeignItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(cartTestColumns).
		AddRow(4, 2, 9, "Kazbegi day trip", 300, "", nil, 2, 0, 0,
			"", 300, 0, 0, models.CartStatusReady, fixedNow(), fixedNow())
	mock.ExpectQuery(`FROM cart_items WHERE id=\?`).
		WillReturnRows(rows)

	svc := DocsService{CartRepo: repositories.CartRepository{DB: db}}
	if _, _, err := svc.GenerateCartInvoice(1, 4); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
