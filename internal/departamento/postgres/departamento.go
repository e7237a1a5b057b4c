package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/departamento"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*departamento.Departamento, error) {
	var departamentos []*departamento.Departamento
	err := r.db.Order("nombre ASC").Find(&departamentos).Error
	return departamentos, err
}

func (r *Repository) GetByID(id string) (*departamento.Departamento, error) {
	var d departamento.Departamento
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(d *departamento.Departamento) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return r.db.Create(d).Error
}

func (r *Repository) Update(d *departamento.Departamento) error {
	return r.db.Save(d).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&departamento.Departamento{}).Error
}
