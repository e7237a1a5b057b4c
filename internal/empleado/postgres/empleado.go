package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/empleado"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*empleado.Empleado, error) {
	var empleados []*empleado.Empleado
	err := r.db.Order("fecha_ingreso DESC").Find(&empleados).Error
	return empleados, err
}

func (r *Repository) GetByID(id string) (*empleado.Empleado, error) {
	var e empleado.Empleado
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetByPersona(personaID string) (*empleado.Empleado, error) {
	var e empleado.Empleado
	err := r.db.Where("persona_id = ?", personaID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(e *empleado.Empleado) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.Create(e).Error
}

func (r *Repository) Update(e *empleado.Empleado) error {
	return r.db.Save(e).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&empleado.Empleado{}).Error
}
