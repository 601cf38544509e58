package handlers

import (
	"net/http"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/services"
	"tourbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type directCheckoutRequest struct {
	TourID      int64    `json:"tourId"`
	ActivityIDs []string `json:"activityIds"`
}

// POST /api/checkout/direct — book-now using the shared booking state.
func DirectCheckout(c *gin.Context) {
	var req directCheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tour, ok := loadTour(c, req.TourID)
	if !ok {
		return
	}

	svc := cartService(c)
	res := svc.ProceedToDirectCheckout(middleware.CurrentUserID(c), tour, req.ActivityIDs)
	respondCheckoutResult(c, res)
}

type tourCheckoutRequest struct {
	SelectedDate string                 `json:"selectedDate"`
	Travelers    *models.TravelerCounts `json:"travelers"`
	ActivityIDs  []string               `json:"activityIds"`
}

// POST /api/checkout/tour/:id — explicit-selection booking from the tour page.
func TourCheckout(c *gin.Context) {
	tourID, ok := PathID(c)
	if !ok {
		return
	}
	var req tourCheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tour, ok := loadTour(c, tourID)
	if !ok {
		return
	}

	sel := models.BookingSelection{
		Travelers:   req.Travelers,
		ActivityIDs: req.ActivityIDs,
	}
	if req.SelectedDate != "" {
		d, err := utils.ParseDate(req.SelectedDate)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "selectedDate", Msg: "expected YYYY-MM-DD"})
			return
		}
		sel.SelectedDate = &d
	}

	svc := services.CheckoutService{Cart: cartService(c)}
	res := svc.DirectCheckout(middleware.CurrentUserID(c), tour, sel)
	respondCheckoutResult(c, res)
}

func respondCheckoutResult(c *gin.Context, res domain.CheckoutResult) {
	if !res.Success {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "checkoutUrl": res.CheckoutURL})
}
