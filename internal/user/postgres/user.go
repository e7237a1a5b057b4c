package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*user.User, error) {
	var users []*user.User
	err := r.db.Order("email ASC").Find(&users).Error
	return users, err
}

func (r *Repository) GetByID(id string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.Create(u).Error
}

func (r *Repository) Update(u *user.User) error {
	return r.db.Save(u).Error
}
