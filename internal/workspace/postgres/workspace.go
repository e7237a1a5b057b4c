package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nominahr/payroll-management/internal/workspace"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*workspace.Workspace, error) {
	var workspaces []*workspace.Workspace
	err := r.db.Order("periodo DESC").Find(&workspaces).Error
	return workspaces, err
}

func (r *Repository) GetByID(id string) (*workspace.Workspace, error) {
	var w workspace.Workspace
	if err := r.db.Where("id = ?", id).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByPeriodo(periodo string) (*workspace.Workspace, error) {
	var w workspace.Workspace
	err := r.db.Where("periodo = ?", periodo).First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(w *workspace.Workspace) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return r.db.Create(w).Error
}

func (r *Repository) Update(w *workspace.Workspace) error {
	return r.db.Save(w).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&workspace.Workspace{}).Error
}
