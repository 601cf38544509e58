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

// GET /api/booking-state
func GetBookingState(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	state := services.SharedStates.For(userID).Snapshot()
	c.JSON(http.StatusOK, gin.H{"state": state})
}

type bookingStateRequest struct {
	SelectedDate *string                `json:"selectedDate"`
	ClearDate    bool                   `json:"clearDate"`
	Travelers    *models.TravelerCounts `json:"travelers"`
}

// PUT /api/booking-state
func UpdateBookingState(c *gin.Context) {
	var req bookingStateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	store := services.SharedStates.For(middleware.CurrentUserID(c))
	switch {
	case req.ClearDate:
		store.UpdateDate(nil)
	case req.SelectedDate != nil:
		d, err := utils.ParseDate(*req.SelectedDate)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "selectedDate", Msg: "expected YYYY-MM-DD"})
			return
		}
		store.UpdateDate(&d)
	}
	if req.Travelers != nil {
		if req.Travelers.Adults < 0 || req.Travelers.Children < 0 || req.Travelers.Infants < 0 {
			RespondDomainError(c, domain.ValidationError{Field: "travelers", Msg: "traveler counts cannot be negative"})
			return
		}
		store.UpdateTravelers(*req.Travelers)
	}

	c.JSON(http.StatusOK, gin.H{"state": store.Snapshot()})
}

// DELETE /api/booking-state
func ResetBookingState(c *gin.Context) {
	store := services.SharedStates.For(middleware.CurrentUserID(c))
	store.Reset()
	c.JSON(http.StatusOK, gin.H{"state": store.Snapshot()})
}
