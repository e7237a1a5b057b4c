package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/provision"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*provision.Provision, error) {
	var provisiones []*provision.Provision
	err := r.db.Order("periodo DESC, tipo_provision ASC").Find(&provisiones).Error
	return provisiones, err
}

func (r *Repository) GetByID(id string) (*provision.Provision, error) {
	var p provision.Provision
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByEmpleado(empleadoID string) ([]*provision.Provision, error) {
	var provisiones []*provision.Provision
	err := r.db.Where("empleado_id = ?", empleadoID).
		Order("periodo DESC").
		Find(&provisiones).Error
	return provisiones, err
}

func (r *Repository) Create(p *provision.Provision) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *Repository) Update(p *provision.Provision) error {
	return r.db.Save(p).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&provision.Provision{}).Error
}
