package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/direccion"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*direccion.Direccion, error) {
	var direcciones []*direccion.Direccion
	err := r.db.Order("calle ASC").Find(&direcciones).Error
	return direcciones, err
}

func (r *Repository) GetByID(id string) (*direccion.Direccion, error) {
	var d direccion.Direccion
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(d *direccion.Direccion) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return r.db.Create(d).Error
}

func (r *Repository) Update(d *direccion.Direccion) error {
	return r.db.Save(d).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&direccion.Direccion{}).Error
}
