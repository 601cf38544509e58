package repositories

import (
	"database/sql"
	"fmt"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

type RatingRepository struct {
	DB *sql.DB
}

func (r RatingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RatingRepository) ListByTour(tourID int64) ([]models.Rating, error) {
	if tourID <= 0 {
		return nil, fmt.Errorf("invalid tour id")
	}
	rows, err := r.db().Query(`
		SELECT r.id, r.tour_id, r.user_id, COALESCE(u.name,''), r.stars, COALESCE(r.comment,''), r.created_at
		FROM ratings r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.tour_id=?
		ORDER BY r.id DESC`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Rating{}
	for rows.Next() {
		var rec models.Rating
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.TourID, &rec.UserID, &rec.UserName, &rec.Stars, &rec.Comment, &createdAt); err != nil {
			return out, err
		}
		if createdAt.Valid {
			rec.CreatedAt = utils.FormatDateTime(createdAt.Time)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r RatingRepository) Insert(rec models.Rating) (int64, error) {
	if rec.TourID <= 0 || rec.UserID <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	res, err := r.db().Exec(`
		INSERT INTO ratings (tour_id, user_id, stars, comment)
		VALUES (?,?,?,?)`,
		rec.TourID, rec.UserID, rec.Stars, rec.Comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RatingRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}
	res, err := r.db().Exec(`DELETE FROM ratings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AverageByTour returns the mean stars and count for a tour (0,0 when unrated).
func (r RatingRepository) AverageByTour(tourID int64) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := r.db().QueryRow(`
		SELECT AVG(stars), COUNT(*) FROM ratings WHERE tour_id=?`, tourID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}
