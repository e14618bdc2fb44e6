package domain

// User is an account that owns mailing lists, templates and mailings.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Email          string `json:"email"`
	IsActive       bool   `json:"is_active"`
	IsAdmin        bool   `json:"is_admin"`
}
