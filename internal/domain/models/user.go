package models

// User mirrors the users table minus the password hash.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
