package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/nomina"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*nomina.Nomina, error) {
	var nominas []*nomina.Nomina
	err := r.db.Order("periodo DESC, created_at DESC").Find(&nominas).Error
	return nominas, err
}

func (r *Repository) GetByID(id string) (*nomina.Nomina, error) {
	var n nomina.Nomina
	if err := r.db.Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) GetByEmpleado(empleadoID string) ([]*nomina.Nomina, error) {
	var nominas []*nomina.Nomina
	err := r.db.Where("empleado_id = ?", empleadoID).
		Order("periodo DESC").
		Find(&nominas).Error
	return nominas, err
}

func (r *Repository) GetByPeriodo(periodo string) ([]*nomina.Nomina, error) {
	var nominas []*nomina.Nomina
	err := r.db.Where("periodo = ?", periodo).
		Order("created_at DESC").
		Find(&nominas).Error
	return nominas, err
}

func (r *Repository) Create(n *nomina.Nomina) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.Create(n).Error
}

func (r *Repository) Update(n *nomina.Nomina) error {
	return r.db.Save(n).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&nomina.Nomina{}).Error
}
