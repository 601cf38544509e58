package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking invoices as PDFs.
type DocsService struct {
	CartRepo  repositories.CartRepository
	RequestID string
}

// GenerateCartInvoice builds the invoice PDF for one of the user's cart
// items. Only ready items can be invoiced.
func (s DocsService) GenerateCartInvoice(userID, itemID int64) ([]byte, string, error) {
	item, err := s.CartRepo.GetByID(itemID)
	if err != nil || item.UserID != userID {
		return nil, "", domain.NotFoundError{Resource: "cart item", Err: err}
	}
	if item.Status != models.CartStatusReady {
		return nil, "", domain.ValidationError{Field: "status", Msg: "booking is incomplete"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("item=%d", itemID))
	return buildInvoicePDF(item)
}

func buildInvoicePDF(item models.CartItem) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%d", item.ID, item.TourID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().UTC().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	date := "-"
	if item.SelectedDate != nil {
		date = utils.FormatDate(*item.SelectedDate)
	}
	desc := fmt.Sprintf("%s, %s, %d adults / %d children / %d infants",
		safe(item.TourTitle, "-"), date,
		item.Travelers.Adults, item.Travelers.Children, item.Travelers.Infants,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	lines := []string{
		"Base price        : " + utils.FormatAmount(item.TourBasePrice),
		"Vehicle surcharge : " + utils.FormatAmount(item.CarCost),
		"Activities        : " + utils.FormatAmount(item.ActivityPriceIncrement),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(item.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Infants travel free of charge. The vehicle surcharge covers every additional car beyond the first six travelers.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", item.ID, safeFilenamePart(item.TourTitle))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
