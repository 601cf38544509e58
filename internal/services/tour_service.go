package services

import (
	"strings"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"
)

// TourService validates admin tour writes and keeps offered-activity
// snapshots consistent with the activity-type catalog.
type TourService struct {
	TourRepo     repositories.TourRepository
	ActivityRepo repositories.ActivityTypeRepository
	RequestID    string
}

// Save creates (id 0) or updates a tour. Activity references are resolved
// against the catalog so the stored snapshot always has a name and a price.
func (s TourService) Save(id int64, t models.Tour) (int64, error) {
	t.TitleEN = utils.NormalizeSpace(t.TitleEN)
	t.TitleRU = utils.NormalizeSpace(t.TitleRU)
	t.TitleKA = utils.NormalizeSpace(t.TitleKA)
	if t.TitleEN == "" {
		return 0, domain.ValidationError{Field: "titleEn", Msg: "title is required"}
	}
	if t.BasePrice < 0 {
		return 0, domain.ValidationError{Field: "basePrice", Msg: "price cannot be negative"}
	}

	resolved := make([]models.OfferedActivity, 0, len(t.Activities))
	seen := map[string]bool{}
	for _, a := range t.Activities {
		typeID := strings.TrimSpace(a.ActivityTypeID)
		if typeID == "" || seen[typeID] {
			continue
		}
		seen[typeID] = true

		at, err := s.ActivityRepo.GetByID(typeID)
		if err != nil {
			return 0, domain.ValidationError{Field: "offeredActivities", Msg: "unknown activity type " + typeID}
		}
		name := a.NameSnapshot
		if strings.TrimSpace(name) == "" {
			name = at.NameEN
		}
		inc := a.PriceIncrement
		if inc == 0 {
			inc = at.PriceIncrement
		}
		resolved = append(resolved, models.OfferedActivity{
			ActivityTypeID: typeID,
			NameSnapshot:   name,
			PriceIncrement: inc,
		})
	}
	t.Activities = resolved

	if id <= 0 {
		newID, err := s.TourRepo.Insert(t)
		if err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return newID, nil
	}
	if err := s.TourRepo.Update(id, t); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}
