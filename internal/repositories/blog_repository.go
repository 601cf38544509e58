package repositories

import (
	"database/sql"
	"fmt"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
)

type BlogRepository struct {
	DB *sql.DB
}

func (r BlogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const blogColumns = `id, COALESCE(title_en,''), COALESCE(title_ru,''), COALESCE(title_ka,''),
	COALESCE(body_en,''), COALESCE(body_ru,''), COALESCE(body_ka,''),
	COALESCE(images,''), COALESCE(published,0)`

func (r BlogRepository) List(publishedOnly bool) ([]models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	if publishedOnly {
		query += ` WHERE published=1`
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BlogRepository) GetByID(id int64) (models.Blog, error) {
	if id <= 0 {
		return models.Blog{}, fmt.Errorf("invalid id")
	}
	row := r.db().QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id=? LIMIT 1`, id)
	return scanBlog(row)
}

func (r BlogRepository) Insert(b models.Blog) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO blogs (title_en, title_ru, title_ka, body_en, body_ru, body_ka, images, published)
		VALUES (?,?,?,?,?,?,?,?)`,
		b.TitleEN, b.TitleRU, b.TitleKA, b.BodyEN, b.BodyRU, b.BodyKA,
		marshalStrings(b.Images), b.Published,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BlogRepository) Update(id int64, b models.Blog) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}
	_, err := r.db().Exec(`
		UPDATE blogs SET title_en=?, title_ru=?, title_ka=?, body_en=?, body_ru=?, body_ka=?,
			images=?, published=?, updated_at=NOW()
		WHERE id=?`,
		b.TitleEN, b.TitleRU, b.TitleKA, b.BodyEN, b.BodyRU, b.BodyKA,
		marshalStrings(b.Images), b.Published, id,
	)
	return err
}

func (r BlogRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid id")
	}
	res, err := r.db().Exec(`DELETE FROM blogs WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var b models.Blog
	var images string
	var published int
	if err := row.Scan(
		&b.ID, &b.TitleEN, &b.TitleRU, &b.TitleKA,
		&b.BodyEN, &b.BodyRU, &b.BodyKA,
		&images, &published,
	); err != nil {
		return models.Blog{}, err
	}
	b.Images = unmarshalStrings(images)
	b.Published = published != 0
	return b, nil
}
