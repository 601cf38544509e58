package handlers

import (
	"database/sql"
	"net/http"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"
	"tourbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/tours?locale=en|ru|ka
func GetTours(c *gin.Context) {
	repo := repositories.TourRepository{}
	publishedOnly := middleware.CurrentUserRole(c) != models.RoleAdmin

	tours, err := repo.List(publishedOnly)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	locale := c.DefaultQuery("locale", "en")
	out := make([]gin.H, 0, len(tours))
	for _, t := range tours {
		out = append(out, tourPayload(t, locale))
	}
	c.JSON(http.StatusOK, gin.H{"tours": out, "locale": locale})
}

// GET /api/tours/:id
func GetTourByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	repo := repositories.TourRepository{}
	tour, err := repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "tour"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	if !tour.Published && middleware.CurrentUserRole(c) != models.RoleAdmin {
		RespondDomainError(c, domain.NotFoundError{Resource: "tour"})
		return
	}

	payload := tourPayload(tour, c.DefaultQuery("locale", "en"))
	if avg, count, err := (repositories.RatingRepository{}).AverageByTour(id); err == nil {
		payload["ratingAverage"] = avg
		payload["ratingCount"] = count
	}
	c.JSON(http.StatusOK, gin.H{"tour": payload})
}

func tourPayload(t models.Tour, locale string) gin.H {
	return gin.H{
		"id":                t.ID,
		"title":             t.TitleFor(locale),
		"titleEn":           t.TitleEN,
		"titleRu":           t.TitleRU,
		"titleKa":           t.TitleKA,
		"descriptionEn":     t.DescEN,
		"descriptionRu":     t.DescRU,
		"descriptionKa":     t.DescKA,
		"basePrice":         t.BasePrice,
		"duration":          t.Duration,
		"images":            t.Images,
		"offeredActivities": t.Activities,
		"published":         t.Published,
	}
}

// POST /api/admin/tours
func CreateTour(c *gin.Context) {
	var tour models.Tour
	if !BindJSONOrError(c, &tour) {
		return
	}

	svc := services.TourService{RequestID: middleware.GetRequestID(c)}
	id, err := svc.Save(0, tour)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "tour created", "id": id})
}

// PUT /api/admin/tours/:id
func UpdateTour(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var tour models.Tour
	if !BindJSONOrError(c, &tour) {
		return
	}

	svc := services.TourService{RequestID: middleware.GetRequestID(c)}
	if _, err := svc.Save(id, tour); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour updated", "id": id})
}

// DELETE /api/admin/tours/:id
func DeleteTour(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.TourRepository{}
	if err := repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "tour"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted", "id": id})
}
