package repositories

import (
	"database/sql"
	"fmt"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin looks a user up by email or username and returns the stored
// password hash alongside.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash, &u.Role, &u.Status,
	)
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, fmt.Errorf("invalid id")
	}
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, role, status
		FROM users WHERE id=? LIMIT 1`, id).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status,
	)
	return u, err
}

func (r UserRepository) ExistsByLogin(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`,
		email, username).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Insert(name, username, email, phone, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'user', 'active', NOW(), NOW())`,
		name, username, email, phone, passwordHash,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
