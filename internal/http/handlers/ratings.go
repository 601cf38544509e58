package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/tours/:id/ratings
func GetTourRatings(c *gin.Context) {
	tourID, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.RatingRepository{}
	ratings, err := repo.ListByTour(tourID)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	avg, count, err := repo.AverageByTour(tourID)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"average": avg,
		"count":   count,
	})
}

type ratingRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

// POST /api/tours/:id/ratings
func CreateTourRating(c *gin.Context) {
	tourID, ok := PathID(c)
	if !ok {
		return
	}
	var req ratingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Stars < 1 || req.Stars > 5 {
		RespondDomainError(c, domain.ValidationError{Field: "stars", Msg: "stars must be between 1 and 5"})
		return
	}

	if _, err := (repositories.TourRepository{}).GetByID(tourID); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "tour"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}

	repo := repositories.RatingRepository{}
	id, err := repo.Insert(models.Rating{
		TourID:  tourID,
		UserID:  middleware.CurrentUserID(c),
		Stars:   req.Stars,
		Comment: strings.TrimSpace(req.Comment),
	})
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "rating saved", "id": id})
}

// DELETE /api/admin/ratings/:id
func DeleteRating(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.RatingRepository{}
	if err := repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "rating"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating deleted", "id": id})
}
