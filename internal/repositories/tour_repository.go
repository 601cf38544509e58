package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
)

type TourRepository struct {
	DB *sql.DB
}

func (r TourRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tourColumns = `id, COALESCE(title_en,''), COALESCE(title_ru,''), COALESCE(title_ka,''),
	COALESCE(desc_en,''), COALESCE(desc_ru,''), COALESCE(desc_ka,''),
	COALESCE(base_price,0), COALESCE(duration,''), COALESCE(images,''), COALESCE(published,0)`

// List returns tours, optionally only published ones, activities included.
func (r TourRepository) List(publishedOnly bool) ([]models.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	if publishedOnly {
		query += ` WHERE published=1`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Tour{}
	index := map[int64]int{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return out, err
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out))
	args := make([]any, 0, len(out))
	for _, t := range out {
		ids = append(ids, "?")
		args = append(args, t.ID)
	}
	actRows, err := r.db().Query(`
		SELECT tour_id, activity_type_id, COALESCE(name_snapshot,''), COALESCE(price_increment,0)
		FROM tour_activities WHERE tour_id IN (`+strings.Join(ids, ",")+`) ORDER BY id ASC`, args...)
	if err != nil {
		return out, err
	}
	defer actRows.Close()
	for actRows.Next() {
		var tourID int64
		var a models.OfferedActivity
		if err := actRows.Scan(&tourID, &a.ActivityTypeID, &a.NameSnapshot, &a.PriceIncrement); err != nil {
			return out, err
		}
		if i, ok := index[tourID]; ok {
			out[i].Activities = append(out[i].Activities, a)
		}
	}
	return out, actRows.Err()
}

func (r TourRepository) GetByID(id int64) (models.Tour, error) {
	if id <= 0 {
		return models.Tour{}, fmt.Errorf("invalid id")
	}
	row := r.db().QueryRow(`SELECT `+tourColumns+` FROM tours WHERE id=? LIMIT 1`, id)
	t, err := scanTour(row)
	if err != nil {
		return models.Tour{}, err
	}

	actRows, err := r.db().Query(`
		SELECT activity_type_id, COALESCE(name_snapshot,''), COALESCE(price_increment,0)
		FROM tour_activities WHERE tour_id=? ORDER BY id ASC`, id)
	if err != nil {
		return t, err
	}
	defer actRows.Close()
	for actRows.Next() {
		var a models.OfferedActivity
		if err := actRows.Scan(&a.ActivityTypeID, &a.NameSnapshot, &a.PriceIncrement); err != nil {
			return t, err
		}
		t.Activities = append(t.Activities, a)
	}
	return t, actRows.Err()
}

func (r TourRepository) Insert(t models.Tour) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO tours (title_en, title_ru, title_ka, desc_en, desc_ru, desc_ka,
			base_price, duration, images, published)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		t.TitleEN, t.TitleRU, t.TitleKA, t.DescEN, t.DescRU, t.DescKA,
		t.BasePrice, t.Duration, marshalStrings(t.Images), t.Published,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, r.ReplaceActivities(id, t.Activities)
}

func (r TourRepository) Update(id int64, t models.Tour) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}
	_, err := r.db().Exec(`
		UPDATE tours SET title_en=?, title_ru=?, title_ka=?, desc_en=?, desc_ru=?, desc_ka=?,
			base_price=?, duration=?, images=?, published=?, updated_at=NOW()
		WHERE id=?`,
		t.TitleEN, t.TitleRU, t.TitleKA, t.DescEN, t.DescRU, t.DescKA,
		t.BasePrice, t.Duration, marshalStrings(t.Images), t.Published, id,
	)
	if err != nil {
		return err
	}
	return r.ReplaceActivities(id, t.Activities)
}

func (r TourRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}
	if _, err := r.db().Exec(`DELETE FROM tour_activities WHERE tour_id=?`, id); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM tours WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceActivities rewrites the tour's offered activities with fresh
// name/price snapshots.
func (r TourRepository) ReplaceActivities(tourID int64, activities []models.OfferedActivity) error {
	if _, err := r.db().Exec(`DELETE FROM tour_activities WHERE tour_id=?`, tourID); err != nil {
		return err
	}
	for _, a := range activities {
		if strings.TrimSpace(a.ActivityTypeID) == "" {
			continue
		}
		if _, err := r.db().Exec(`
			INSERT INTO tour_activities (tour_id, activity_type_id, name_snapshot, price_increment)
			VALUES (?,?,?,?)`,
			tourID, a.ActivityTypeID, a.NameSnapshot, a.PriceIncrement,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanTour(row rowScanner) (models.Tour, error) {
	var t models.Tour
	var images string
	var published int
	if err := row.Scan(
		&t.ID, &t.TitleEN, &t.TitleRU, &t.TitleKA,
		&t.DescEN, &t.DescRU, &t.DescKA,
		&t.BasePrice, &t.Duration, &images, &published,
	); err != nil {
		return models.Tour{}, err
	}
	t.Images = unmarshalStrings(images)
	t.Published = published != 0
	return t, nil
}
