package handlers

import (
	"net/http"

	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"
	"tourbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/cart/items/:id/invoice — booking invoice as PDF.
func GetCartInvoice(c *gin.Context) {
	itemID, ok := PathID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		CartRepo:  repositories.CartRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateCartInvoice(middleware.CurrentUserID(c), itemID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
