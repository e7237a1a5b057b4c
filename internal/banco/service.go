package banco

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Banco, error)
	GetByID(id string) (*Banco, error)
	GetByIDs(ids []string) ([]*Banco, error)
	Create(b *Banco) error
	Update(b *Banco) error
	Delete(id string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Banco, error) {
	bancos, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list bancos", "error", err)
		return nil, err
	}
	return bancos, nil
}

func (s *Service) GetByID(id string) (*Banco, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// GetByIDs resolves a batch of account references. Unknown ids are an
// error so an empleado can never point at a dangling account.
func (s *Service) GetByIDs(ids []string) ([]*Banco, error) {
	bancos, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(bancos) != len(ids) {
		return nil, ErrNotFound
	}
	return bancos, nil
}

func (s *Service) Create(dto BancoDTO) (*Banco, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	b := &Banco{
		BankName:      dto.BankName,
		AccountNumber: dto.AccountNumber,
		AccountType:   dto.AccountType,
		SwiftCode:     dto.SwiftCode,
		Pais:          dto.Pais,
		Sucursal:      dto.Sucursal,
	}
	if err := s.repo.Create(b); err != nil {
		s.logger.Error("failed to create banco", "error", err, "bank_name", dto.BankName)
		return nil, err
	}

	s.logger.Info("banco created", "banco_id", b.ID, "bank_name", b.BankName)
	return b, nil
}

func (s *Service) Update(id string, dto BancoDTO) (*Banco, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	b.BankName = dto.BankName
	b.AccountNumber = dto.AccountNumber
	b.AccountType = dto.AccountType
	b.SwiftCode = dto.SwiftCode
	b.Pais = dto.Pais
	b.Sucursal = dto.Sucursal
	if err := s.repo.Update(b); err != nil {
		s.logger.Error("failed to update banco", "error", err, "banco_id", id)
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
