package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository implements auth.UserRepository on the users table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPasswordForEmail(email string) (string, string, bool, error) {
	var (
		passwordHash string
		userID       string
		isActive     bool
	)

	query := `SELECT id, password_hash, is_active FROM users WHERE email = ?`
	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", false, fmt.Errorf("user not found")
		}
		return "", "", false, err
	}
	return passwordHash, userID, isActive, nil
}
