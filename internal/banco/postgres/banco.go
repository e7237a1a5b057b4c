package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/banco"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*banco.Banco, error) {
	var bancos []*banco.Banco
	err := r.db.Order("bank_name ASC").Find(&bancos).Error
	return bancos, err
}

func (r *Repository) GetByID(id string) (*banco.Banco, error) {
	var b banco.Banco
	if err := r.db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) GetByIDs(ids []string) ([]*banco.Banco, error) {
	if len(ids) == 0 {
		return []*banco.Banco{}, nil
	}
	var bancos []*banco.Banco
	err := r.db.Where("id IN ?", ids).Find(&bancos).Error
	return bancos, err
}

func (r *Repository) Create(b *banco.Banco) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.Create(b).Error
}

func (r *Repository) Update(b *banco.Banco) error {
	return r.db.Save(b).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&banco.Banco{}).Error
}
