package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/parametro"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*parametro.Parametro, error) {
	var parametros []*parametro.Parametro
	err := r.db.Order("tipo ASC").Find(&parametros).Error
	return parametros, err
}

func (r *Repository) GetByID(id string) (*parametro.Parametro, error) {
	var p parametro.Parametro
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(p *parametro.Parametro) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *Repository) Update(p *parametro.Parametro) error {
	return r.db.Save(p).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&parametro.Parametro{}).Error
}
