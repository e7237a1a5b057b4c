package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/persona"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*persona.Persona, error) {
	var personas []*persona.Persona
	err := r.db.Order("apellido_paterno ASC, primer_nombre ASC").Find(&personas).Error
	return personas, err
}

func (r *Repository) GetByID(id string) (*persona.Persona, error) {
	var p persona.Persona
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByDNI(dni string) (*persona.Persona, error) {
	var p persona.Persona
	err := r.db.Where("dni = ?", dni).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(p *persona.Persona) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *Repository) Update(p *persona.Persona) error {
	return r.db.Save(p).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&persona.Persona{}).Error
}
