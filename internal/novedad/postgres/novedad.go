package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/novedad"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*novedad.Novedad, error) {
	var novedades []*novedad.Novedad
	err := r.db.Order("fecha_ingresada DESC").Find(&novedades).Error
	return novedades, err
}

func (r *Repository) GetByID(id string) (*novedad.Novedad, error) {
	var n novedad.Novedad
	if err := r.db.Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Create(n *novedad.Novedad) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.Create(n).Error
}

func (r *Repository) Update(n *novedad.Novedad) error {
	return r.db.Save(n).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&novedad.Novedad{}).Error
}
