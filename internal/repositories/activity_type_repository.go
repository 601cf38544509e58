package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
)

type ActivityTypeRepository struct {
	DB *sql.DB
}

func (r ActivityTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ActivityTypeRepository) List() ([]models.ActivityType, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name_en,''), COALESCE(name_ru,''), COALESCE(name_ka,''), COALESCE(price_increment,0)
		FROM activity_types ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ActivityType{}
	for rows.Next() {
		var a models.ActivityType
		if err := rows.Scan(&a.ID, &a.NameEN, &a.NameRU, &a.NameKA, &a.PriceIncrement); err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ActivityTypeRepository) GetByID(id string) (models.ActivityType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.ActivityType{}, fmt.Errorf("invalid id")
	}
	var a models.ActivityType
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name_en,''), COALESCE(name_ru,''), COALESCE(name_ka,''), COALESCE(price_increment,0)
		FROM activity_types WHERE id=? LIMIT 1`, id).Scan(
		&a.ID, &a.NameEN, &a.NameRU, &a.NameKA, &a.PriceIncrement,
	)
	return a, err
}

func (r ActivityTypeRepository) Upsert(a models.ActivityType) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("invalid id")
	}
	_, err := r.db().Exec(`
		INSERT INTO activity_types (id, name_en, name_ru, name_ka, price_increment)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE name_en=VALUES(name_en), name_ru=VALUES(name_ru),
			name_ka=VALUES(name_ka), price_increment=VALUES(price_increment)`,
		a.ID, a.NameEN, a.NameRU, a.NameKA, a.PriceIncrement,
	)
	return err
}

func (r ActivityTypeRepository) Delete(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("invalid id")
	}
	res, err := r.db().Exec(`DELETE FROM activity_types WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
