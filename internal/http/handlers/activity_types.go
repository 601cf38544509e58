package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/activity-types
func GetActivityTypes(c *gin.Context) {
	repo := repositories.ActivityTypeRepository{}
	types, err := repo.List()
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activityTypes": types})
}

// PUT /api/admin/activity-types/:id
func UpsertActivityType(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "id is required"})
		return
	}
	var at models.ActivityType
	if !BindJSONOrError(c, &at) {
		return
	}
	at.ID = id
	if at.NameEN == "" {
		RespondDomainError(c, domain.ValidationError{Field: "nameEn", Msg: "name is required"})
		return
	}
	if at.PriceIncrement < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "priceIncrement", Msg: "price increment cannot be negative"})
		return
	}

	repo := repositories.ActivityTypeRepository{}
	if err := repo.Upsert(at); err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity type saved", "activityType": at})
}

// DELETE /api/admin/activity-types/:id
func DeleteActivityType(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "id is required"})
		return
	}
	repo := repositories.ActivityTypeRepository{}
	if err := repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "activity type"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity type deleted", "id": id})
}
