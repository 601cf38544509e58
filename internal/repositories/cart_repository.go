package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	intconfig "tourbooking/internal/config"
	intdb "tourbooking/internal/db"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// CartRepository persists cart items. One row per (user, tour); the service
// layer decides whether an operation inserts or updates.
type CartRepository struct {
	DB *sql.DB
}

func (r CartRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the cart_items table when missing. Called once at startup.
func (r CartRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, "cart_items") {
		// pre-pricing deployments miss the breakdown columns
		if !intdb.HasColumn(db, "cart_items", "activity_price_increment") {
			_, err := db.Exec(`ALTER TABLE cart_items
				ADD COLUMN activity_price_increment BIGINT NOT NULL DEFAULT 0,
				ADD COLUMN car_cost BIGINT NOT NULL DEFAULT 0`)
			return err
		}
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS cart_items (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	tour_id BIGINT NOT NULL,
	tour_title VARCHAR(255) NOT NULL DEFAULT '',
	tour_base_price BIGINT NOT NULL DEFAULT 0,
	tour_images TEXT,
	selected_date DATE NULL,
	adults INT NOT NULL DEFAULT 0,
	children INT NOT NULL DEFAULT 0,
	infants INT NOT NULL DEFAULT 0,
	activity_ids TEXT,
	total_price BIGINT NOT NULL DEFAULT 0,
	activity_price_increment BIGINT NOT NULL DEFAULT 0,
	car_cost BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'incomplete',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_user_tour (user_id, tour_id),
	KEY idx_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

const cartColumns = `id, user_id, tour_id, tour_title, tour_base_price,
	COALESCE(tour_images,''), selected_date, adults, children, infants,
	COALESCE(activity_ids,''), total_price, activity_price_increment, car_cost,
	status, created_at, updated_at`

// ListByUser returns the user's cart ordered by insertion.
func (r CartRepository) ListByUser(userID int64) ([]models.CartItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	rows, err := r.db().Query(`SELECT `+cartColumns+` FROM cart_items WHERE user_id=? ORDER BY id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r CartRepository) GetByID(id int64) (models.CartItem, error) {
	if id <= 0 {
		return models.CartItem{}, fmt.Errorf("invalid id")
	}
	row := r.db().QueryRow(`SELECT `+cartColumns+` FROM cart_items WHERE id=? LIMIT 1`, id)
	return scanCartItem(row)
}

// GetByTour finds the user's cart entry for a tour, reporting existence
// separately so "no entry" is not an error.
func (r CartRepository) GetByTour(userID, tourID int64) (models.CartItem, bool, error) {
	if userID <= 0 || tourID <= 0 {
		return models.CartItem{}, false, fmt.Errorf("invalid id")
	}
	row := r.db().QueryRow(`SELECT `+cartColumns+` FROM cart_items WHERE user_id=? AND tour_id=? LIMIT 1`, userID, tourID)
	item, err := scanCartItem(row)
	if err == sql.ErrNoRows {
		return models.CartItem{}, false, nil
	}
	if err != nil {
		return models.CartItem{}, false, err
	}
	return item, true, nil
}

func (r CartRepository) Insert(item models.CartItem) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO cart_items
			(user_id, tour_id, tour_title, tour_base_price, tour_images,
			 selected_date, adults, children, infants, activity_ids,
			 total_price, activity_price_increment, car_cost, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		item.UserID, item.TourID, item.TourTitle, item.TourBasePrice, intdb.NullIfEmpty(marshalStrings(item.TourImages)),
		dateArg(item.SelectedDate), item.Travelers.Adults, item.Travelers.Children, item.Travelers.Infants,
		intdb.NullIfEmpty(marshalStrings(item.ActivityIDs)),
		item.TotalPrice, item.ActivityPriceIncrement, item.CarCost, item.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CartItemPatch updates only the fields that are set. DateSet distinguishes
// "clear the date" from "leave it alone".
type CartItemPatch struct {
	SelectedDate *time.Time
	DateSet      bool
	Travelers    *models.TravelerCounts
	ActivityIDs  *[]string

	TotalPrice             *int64
	ActivityPriceIncrement *int64
	CarCost                *int64
	Status                 *string
}

func (r CartRepository) Update(id int64, patch CartItemPatch) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}

	sets := []string{}
	args := []any{}
	if patch.DateSet {
		sets = append(sets, "selected_date=?")
		args = append(args, dateArg(patch.SelectedDate))
	}
	if patch.Travelers != nil {
		sets = append(sets, "adults=?", "children=?", "infants=?")
		args = append(args, patch.Travelers.Adults, patch.Travelers.Children, patch.Travelers.Infants)
	}
	if patch.ActivityIDs != nil {
		sets = append(sets, "activity_ids=?")
		args = append(args, marshalStrings(*patch.ActivityIDs))
	}
	if patch.TotalPrice != nil {
		sets = append(sets, "total_price=?")
		args = append(args, *patch.TotalPrice)
	}
	if patch.ActivityPriceIncrement != nil {
		sets = append(sets, "activity_price_increment=?")
		args = append(args, *patch.ActivityPriceIncrement)
	}
	if patch.CarCost != nil {
		sets = append(sets, "car_cost=?")
		args = append(args, *patch.CarCost)
	}
	if patch.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE cart_items SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r CartRepository) Delete(userID, id int64) error {
	if userID <= 0 || id <= 0 {
		return fmt.Errorf("invalid id")
	}
	res, err := r.db().Exec(`DELETE FROM cart_items WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Summary aggregates the cart header straight from storage.
func (r CartRepository) Summary(userID int64) (models.CartSummary, error) {
	var s models.CartSummary
	err := r.db().QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(total_price),0)
		FROM cart_items WHERE user_id=?`, userID).Scan(&s.TotalItems, &s.TotalPrice)
	return s, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCartItem(row rowScanner) (models.CartItem, error) {
	var (
		item         models.CartItem
		images, acts string
		date         sql.NullTime
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)
	if err := row.Scan(
		&item.ID, &item.UserID, &item.TourID, &item.TourTitle, &item.TourBasePrice,
		&images, &date, &item.Travelers.Adults, &item.Travelers.Children, &item.Travelers.Infants,
		&acts, &item.TotalPrice, &item.ActivityPriceIncrement, &item.CarCost,
		&item.Status, &createdAt, &updatedAt,
	); err != nil {
		return models.CartItem{}, err
	}
	item.TourImages = unmarshalStrings(images)
	item.ActivityIDs = unmarshalStrings(acts)
	if createdAt.Valid {
		item.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		item.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	if date.Valid {
		d := date.Time.UTC()
		item.SelectedDate = &d
	}
	return item, nil
}

func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return utils.FormatDate(*t)
}

func marshalStrings(list []string) string {
	if len(list) == 0 {
		return ""
	}
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalStrings(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
